package search

// Occurrence is one located match of a single fragment: 1-based line and
// start column in the landscape, plus the index of the fragment that
// produced it. Occurrences are created during scanning and never mutated.
type Occurrence struct {
	Line     int
	Column   int
	Fragment int
}

// Follows reports whether o is a valid continuation of prev: same start
// column, immediately following line.
func (o Occurrence) Follows(prev Occurrence) bool {
	return o.Line == prev.Line+1 && o.Column == prev.Column
}

// Match is a completed chain: exactly one occurrence per fragment, in
// fragment order, with Follows holding between every consecutive pair.
type Match struct {
	Occurrences []Occurrence
}

// Anchor returns the first fragment's occurrence, the natural position
// to report for the whole match.
func (m Match) Anchor() Occurrence { return m.Occurrences[0] }
