package cli

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"

	"github.com/dl/mlgrep/internal/input"
	"github.com/dl/mlgrep/internal/output"
	"github.com/dl/mlgrep/internal/pattern"
	"github.com/dl/mlgrep/internal/scheduler"
	"github.com/dl/mlgrep/internal/search"
	"github.com/dl/mlgrep/internal/walker"
	"github.com/dl/mlgrep/internal/watch"
)

// Run executes the search with the given config.
// Exit codes: 0 = match found, 1 = no match, 2 = error.
func Run(cfg Config) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	reader := input.NewAdaptiveReader(cfg.MmapThreshold)

	frags, code := loadPattern(cfg, reader, logger)
	if code != 0 {
		return code
	}
	defer pattern.CloseAll(frags)

	fragLens := make([]int, len(frags))
	for i, f := range frags {
		fragLens[i] = f.Len()
	}

	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = output.StdoutIsTerminal()
	}

	w := output.NewWriter()
	var formatter output.Formatter
	if cfg.JSONOutput {
		formatter = output.NewJSONFormatter()
	} else {
		styles := output.NoStyles()
		if useColor {
			styles = output.NewStyles()
		}
		formatter = output.NewTextFormatter(styles, cfg.LineNumbers, cfg.CountOnly, cfg.FilesOnly, cfg.ShowBlocks, useColor)
	}

	r := &runner{
		cfg:       cfg,
		logger:    logger,
		reader:    reader,
		fragments: frags,
		fragLens:  fragLens,
		formatter: formatter,
		writer:    w,
	}

	if cfg.WatchMode {
		return r.runWatch()
	}
	if len(cfg.Paths) == 0 {
		return r.runStdin()
	}
	if cfg.Recursive {
		return r.runRecursive()
	}
	return r.runFiles()
}

// loadPattern reads and compiles the pattern file. Returns exit code 2
// on any pattern problem.
func loadPattern(cfg Config, reader input.Reader, logger *log.Logger) ([]*pattern.Fragment, int) {
	res, err := reader.Read(cfg.PatternFile)
	if err != nil {
		logger.Error("cannot read pattern file", "path", cfg.PatternFile, "err", err)
		return nil, 2
	}
	lines := input.Lines(res.Data)
	if res.Closer != nil {
		res.Closer()
	}
	if len(lines) == 0 {
		logger.Error("invalid pattern", "path", cfg.PatternFile, "err", search.ErrInvalidPattern)
		return nil, 2
	}

	backend := pattern.BackendBytes
	if cfg.PCRE {
		backend = pattern.BackendPCRE
	}
	frags, err := pattern.Compile(lines, backend)
	if err != nil {
		logger.Error("invalid pattern", "path", cfg.PatternFile, "err", err)
		return nil, 2
	}
	return frags, 0
}

type runner struct {
	cfg       Config
	logger    *log.Logger
	reader    input.Reader
	fragments []*pattern.Fragment
	fragLens  []int
	formatter output.Formatter
	writer    *output.Writer
}

// searchLines runs one full session over the given landscape lines.
func (r *runner) searchLines(lines []string) ([]search.Match, error) {
	sess := search.New()
	if err := sess.LoadFragments(r.fragments); err != nil {
		return nil, err
	}
	if err := sess.ScanLandscape(lines); err != nil {
		return nil, err
	}
	if err := sess.DetectMatches(); err != nil {
		return nil, err
	}
	return sess.Matches(), nil
}

func (r *runner) runStdin() int {
	res, err := input.NewStdinReader().Read("")
	if err != nil {
		r.logger.Error("cannot read stdin", "err", err)
		return 2
	}
	lines := input.Lines(res.Data)

	matches, err := r.searchLines(lines)
	if err != nil {
		r.logger.Error("search failed", "err", err)
		return 2
	}

	result := output.Result{Lines: lines, FragLens: r.fragLens, Matches: matches}
	var buf []byte
	buf = r.formatter.Format(buf, result, false)
	if err := r.writer.Write(buf); err != nil {
		r.logger.Error("write failed", "err", err)
		return 2
	}

	if result.HasMatch() {
		return 0
	}
	return 1
}

func (r *runner) runFiles() int {
	multiFile := len(r.cfg.Paths) > 1
	hasMatch := false
	var buf []byte

	for _, path := range r.cfg.Paths {
		result := r.searchFile(path)
		if result.Err != nil {
			r.logger.Warn("error", "path", path, "err", result.Err)
			continue
		}
		if result.HasMatch() {
			hasMatch = true
		}
		buf = r.formatter.Format(buf[:0], result, multiFile)
		if err := r.writer.Write(buf); err != nil {
			r.logger.Error("write failed", "err", err)
			return 2
		}
	}

	if hasMatch {
		return 0
	}
	return 1
}

func (r *runner) searchFile(path string) output.Result {
	result := output.Result{FilePath: path, FragLens: r.fragLens}

	res, err := r.reader.Read(path)
	if err != nil {
		result.Err = err
		return result
	}
	defer func() {
		if res.Closer != nil {
			res.Closer()
		}
	}()

	if walker.IsBinary(res.Data) {
		return result
	}

	// An empty file surfaces as ErrInvalidLandscape from the session.
	lines := input.Lines(res.Data)
	matches, err := r.searchLines(lines)
	if err != nil {
		result.Err = err
		return result
	}
	result.Lines = lines
	result.Matches = matches
	return result
}

func (r *runner) runRecursive() int {
	fileCh, errCh := walker.Walk(r.cfg.Paths, walker.Options{
		NoIgnore: r.cfg.NoIgnore,
		Hidden:   r.cfg.Hidden,
		Globs:    r.cfg.Globs,
	})

	go func() {
		for err := range errCh {
			r.logger.Warn("walk error", "err", err)
		}
	}()

	sched := scheduler.New(r.cfg.Workers, r.fragments, r.reader)
	resultCh := sched.Run(fileCh)

	hasMatch := false
	ow := output.NewOrderedWriter(r.writer, r.formatter, true)
	err := ow.WriteOrdered(resultCh, func() {
		hasMatch = true
	})
	if err != nil {
		r.logger.Error("write failed", "err", err)
		return 2
	}

	if hasMatch {
		return 0
	}
	return 1
}

func (r *runner) runWatch() int {
	watcher, err := watch.New()
	if err != nil {
		r.logger.Error("failed to create watcher", "err", err)
		return 2
	}
	defer watcher.Close()

	for _, path := range r.cfg.Paths {
		if err := watcher.Add(path); err != nil {
			r.logger.Error("failed to watch", "path", path, "err", err)
			return 2
		}
	}

	hasMatch := false
	var buf []byte

	for evt := range watcher.Events() {
		if evt.Err != nil {
			r.logger.Warn("watch error", "err", evt.Err)
			continue
		}

		switch evt.Type {
		case watch.EventModified, watch.EventCreated:
			if evt.Type == watch.EventCreated {
				if err := watcher.Add(evt.Path); err != nil {
					r.logger.Warn("failed to watch new file", "path", evt.Path, "err", err)
				}
			}
			// Multiline matches are position-sensitive: re-run the
			// whole search on the current file content.
			result := r.searchFile(evt.Path)
			if result.Err != nil {
				if !errors.Is(result.Err, search.ErrInvalidLandscape) {
					r.logger.Warn("read error", "path", evt.Path, "err", result.Err)
				}
				continue
			}
			if !result.HasMatch() {
				continue
			}
			hasMatch = true
			buf = r.formatter.Format(buf[:0], result, true)
			if err := r.writer.Write(buf); err != nil {
				r.logger.Error("write failed", "err", err)
				return 2
			}

		case watch.EventDeleted:
			r.logger.Warn("watched file removed", "path", evt.Path)
		}
	}

	if hasMatch {
		return 0
	}
	return 1
}
