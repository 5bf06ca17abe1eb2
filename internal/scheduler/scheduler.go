// Package scheduler runs multiline pattern searches over many landscape
// files with a worker pool. The compiled pattern is shared read-only;
// every file gets its own search session, so occurrence lists and the
// exclusion set are never touched concurrently.
package scheduler

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dl/mlgrep/internal/input"
	"github.com/dl/mlgrep/internal/output"
	"github.com/dl/mlgrep/internal/pattern"
	"github.com/dl/mlgrep/internal/search"
	"github.com/dl/mlgrep/internal/walker"
)

// Scheduler fans landscape files out to workers.
type Scheduler struct {
	workers   int
	fragments []*pattern.Fragment
	fragLens  []int
	reader    input.Reader
}

// New creates a Scheduler. workers <= 0 defaults to NumCPU * 2.
func New(workers int, fragments []*pattern.Fragment, reader input.Reader) *Scheduler {
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	fragLens := make([]int, len(fragments))
	for i, f := range fragments {
		fragLens[i] = f.Len()
	}
	return &Scheduler{
		workers:   workers,
		fragments: fragments,
		fragLens:  fragLens,
		reader:    reader,
	}
}

// Run consumes files and emits one Result per file, tagged with a
// sequence number for ordered output.
func (s *Scheduler) Run(files <-chan walker.FileEntry) <-chan output.Result {
	resultCh := make(chan output.Result, s.workers*2)
	var seq atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range files {
				// Sequence numbers follow dispatch order, not completion
				// order, so the ordered writer can drain deterministically.
				seqNum := int(seq.Add(1))
				result := s.processFile(entry)
				result.SeqNum = seqNum
				resultCh <- result
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	return resultCh
}

func (s *Scheduler) processFile(entry walker.FileEntry) output.Result {
	result := output.Result{FilePath: entry.Path, FragLens: s.fragLens}

	if walker.IsBinaryExtension(entry.Path) {
		return result
	}

	readResult, err := s.reader.Read(entry.Path)
	if err != nil {
		result.Err = err
		return result
	}
	defer func() {
		if readResult.Closer != nil {
			readResult.Closer()
		}
	}()

	if readResult.Data == nil || walker.IsBinary(readResult.Data) {
		return result
	}

	lines := input.Lines(readResult.Data)
	sess := search.New()
	if err := sess.LoadFragments(s.fragments); err != nil {
		result.Err = err
		return result
	}
	if err := sess.ScanLandscape(lines); err != nil {
		// An empty landscape is a no-match in multi-file mode, not
		// a per-file failure worth reporting.
		if !errors.Is(err, search.ErrInvalidLandscape) {
			result.Err = err
		}
		return result
	}
	if err := sess.DetectMatches(); err != nil {
		result.Err = err
		return result
	}

	result.Lines = lines
	result.Matches = sess.Matches()
	return result
}
