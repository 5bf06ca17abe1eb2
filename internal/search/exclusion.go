package search

// ExclusionSet records which landscape character positions have been
// consumed by finalized matches, keyed by line then column. The set only
// grows for the duration of a session: committed matches are never
// retracted, and nothing is marked speculatively during assembly.
// Marking is idempotent, so footprints overlapping in column space
// within one match are harmless.
type ExclusionSet struct {
	consumed map[int]map[int]struct{}
}

// NewExclusionSet creates an empty set.
func NewExclusionSet() *ExclusionSet {
	return &ExclusionSet{consumed: make(map[int]map[int]struct{})}
}

// Mark consumes column+off on line for every offset in footprint.
func (s *ExclusionSet) Mark(line, column int, footprint []int) {
	cols := s.consumed[line]
	if cols == nil {
		cols = make(map[int]struct{}, len(footprint))
		s.consumed[line] = cols
	}
	for _, off := range footprint {
		cols[column+off] = struct{}{}
	}
}

// Blocked reports whether any footprint position of a candidate starting
// at (line, column) has already been consumed.
func (s *ExclusionSet) Blocked(line, column int, footprint []int) bool {
	cols := s.consumed[line]
	if cols == nil {
		return false
	}
	for _, off := range footprint {
		if _, ok := cols[column+off]; ok {
			return true
		}
	}
	return false
}
