// Package search implements the two-phase multiline pattern search: scan
// every landscape line for fragment occurrences, then assemble chains of
// occurrences into complete matches under character-exclusivity
// constraints.
//
// A Search is one session, from pattern load to final report. Sessions
// are single-threaded: exclusion-set bookkeeping depends on matches
// being committed sequentially before later candidates are evaluated.
package search

import (
	"fmt"

	"github.com/dl/mlgrep/internal/pattern"
)

type phase int

const (
	phaseNew phase = iota
	phaseLoaded
	phaseScanned
	phaseDetected
)

// Search holds one session's state: the ordered fragment list, the
// occurrences recorded during scanning, the exclusion set, and the
// accumulated matches.
type Search struct {
	backend   pattern.Backend
	fragments []*pattern.Fragment
	occs      [][]Occurrence
	excl      *ExclusionSet
	matches   []Match
	phase     phase
}

// Option configures a Search.
type Option func(*Search)

// WithBackend selects the fragment scanner backend used by LoadPattern.
func WithBackend(b pattern.Backend) Option {
	return func(s *Search) { s.backend = b }
}

// New creates an empty session. LoadPattern or LoadFragments must be
// called before ScanLandscape.
func New(opts ...Option) *Search {
	s := &Search{excl: NewExclusionSet()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadPattern compiles one fragment per pattern line. Trailing whitespace
// is stripped per line; leading spaces stay significant.
func (s *Search) LoadPattern(lines []string) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	frags, err := pattern.Compile(lines, s.backend)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return s.LoadFragments(frags)
}

// LoadFragments installs an already-compiled pattern. Callers searching
// many landscapes share one compiled pattern across sessions this way;
// all mutable state stays inside the session.
func (s *Search) LoadFragments(frags []*pattern.Fragment) error {
	if len(frags) == 0 {
		return fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	s.fragments = frags
	s.occs = make([][]Occurrence, len(frags))
	s.phase = phaseLoaded
	return nil
}

// ScanLandscape records, for every landscape line, every column at which
// each fragment matches. Lines are 1-based and taken verbatim.
func (s *Search) ScanLandscape(lines []string) error {
	if s.phase < phaseLoaded {
		return fmt.Errorf("%w: ScanLandscape before LoadPattern", ErrPatternNotSet)
	}
	if len(lines) == 0 {
		return fmt.Errorf("%w: empty landscape", ErrInvalidLandscape)
	}
	for i, line := range lines {
		lineNum := i + 1
		for fi, frag := range s.fragments {
			for _, col := range frag.FindColumns(line) {
				s.occs[fi] = append(s.occs[fi], Occurrence{
					Line:     lineNum,
					Column:   col,
					Fragment: fi,
				})
			}
		}
	}
	s.phase = phaseScanned
	return nil
}

// DetectMatches assembles the recorded occurrences into complete
// matches. Because scanning proceeds top-to-bottom and left-to-right and
// assembly is first-match-wins, the result is deterministic for a given
// pattern and landscape.
func (s *Search) DetectMatches() error {
	if s.phase < phaseScanned {
		return fmt.Errorf("%w: DetectMatches before ScanLandscape", ErrPatternNotSet)
	}
	a := &assembler{fragments: s.fragments, occs: s.occs, excl: s.excl}
	s.matches = append(s.matches, a.run()...)
	s.phase = phaseDetected
	return nil
}

// Count returns the number of complete matches found.
func (s *Search) Count() int { return len(s.matches) }

// Matches returns the completed matches in detection order. The returned
// slice is owned by the session and is read-only to callers.
func (s *Search) Matches() []Match { return s.matches }

// Occurrences returns the raw occurrences recorded for fragment i during
// scanning, in discovery order.
func (s *Search) Occurrences(i int) []Occurrence { return s.occs[i] }

// Fragments returns the session's compiled pattern.
func (s *Search) Fragments() []*pattern.Fragment { return s.fragments }
