// Package walker discovers landscape files under directory roots,
// honoring nested .gitignore files and skipping hidden and binary
// entries.
package walker

import (
	"os"
	"path/filepath"
)

// FileEntry is a file discovered during traversal.
type FileEntry struct {
	Path string
}

// Options configures traversal behavior.
type Options struct {
	NoIgnore bool     // skip .gitignore processing
	Hidden   bool     // include hidden files and directories
	Globs    []string // if set, only base names matching one glob are emitted
}

// Walk traverses the given roots depth-first and sends discovered files
// on the returned channel. Entries are visited in name order, so the
// stream is deterministic. Non-directory roots are emitted as-is,
// without ignore or glob filtering.
func Walk(roots []string, opts Options) (<-chan FileEntry, <-chan error) {
	fileCh := make(chan FileEntry, 256)
	errCh := make(chan error, 16)

	go func() {
		defer close(fileCh)
		defer close(errCh)

		w := &walker{fileCh: fileCh, errCh: errCh, opts: opts}
		for _, root := range roots {
			info, err := os.Stat(root)
			if err != nil {
				errCh <- &WalkError{Path: root, Err: err}
				continue
			}
			if !info.IsDir() {
				fileCh <- FileEntry{Path: root}
				continue
			}
			stack := newIgnoreStack()
			w.walkDir(root, stack)
		}
	}()

	return fileCh, errCh
}

type walker struct {
	fileCh chan<- FileEntry
	errCh  chan<- error
	opts   Options
}

func (w *walker) walkDir(dir string, stack *ignoreStack) {
	if !w.opts.NoIgnore {
		stack.push(dir)
		defer stack.pop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.errCh <- &WalkError{Path: dir, Err: err}
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)

		if entry.IsDir() {
			if skipDir(name, w.opts.Hidden) {
				continue
			}
			if !w.opts.NoIgnore && stack.isIgnored(full, true) {
				continue
			}
			w.walkDir(full, stack)
			continue
		}

		// Resolve symlinks; broken ones are silently skipped.
		if entry.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(full)
			if err != nil {
				continue
			}
			if info.IsDir() {
				if !skipDir(name, w.opts.Hidden) && (w.opts.NoIgnore || !stack.isIgnored(full, true)) {
					w.walkDir(full, stack)
				}
				continue
			}
		} else if !entry.Type().IsRegular() {
			continue
		}

		if !w.opts.Hidden && name[0] == '.' {
			continue
		}
		if !w.opts.NoIgnore && stack.isIgnored(full, false) {
			continue
		}
		if !matchGlobs(w.opts.Globs, name) {
			continue
		}
		w.fileCh <- FileEntry{Path: full}
	}
}

// skipDir reports directories that are never descended into: VCS
// metadata always, other hidden directories unless hidden is set.
func skipDir(name string, hidden bool) bool {
	switch name {
	case ".git", ".svn", ".hg":
		return true
	}
	return !hidden && name[0] == '.'
}

// WalkError wraps an error encountered while traversing a path.
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return "walk " + e.Path + ": " + e.Err.Error()
}

func (e *WalkError) Unwrap() error {
	return e.Err
}
