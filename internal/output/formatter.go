// Package output renders search results as text or JSON Lines and
// writes them to stdout.
package output

import "github.com/dl/mlgrep/internal/search"

// Result aggregates the matches found in a single landscape.
type Result struct {
	FilePath string
	SeqNum   int
	// Lines holds the landscape lines, for rendering matched blocks.
	Lines []string
	// FragLens holds the byte width of each pattern fragment, indexed
	// like Occurrence.Fragment, for highlighting matched spans.
	FragLens []int
	Matches  []search.Match
	Err      error
}

// Count returns the number of matches in this result.
func (r *Result) Count() int { return len(r.Matches) }

// HasMatch reports whether this result has at least one match.
func (r *Result) HasMatch() bool { return len(r.Matches) > 0 }

// Formatter formats a Result into bytes for output. Implementations
// append to buf and return it, so callers can pass buf[:0] to reuse the
// backing array.
type Formatter interface {
	Format(buf []byte, result Result, multiFile bool) []byte
}
