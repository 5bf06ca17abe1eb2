package search

import "testing"

func TestExclusionSet_MarkAndBlocked(t *testing.T) {
	s := NewExclusionSet()
	footprint := []int{0, 2} // significant bytes at offsets 0 and 2

	if s.Blocked(3, 5, footprint) {
		t.Fatal("fresh set should not block anything")
	}

	s.Mark(3, 5, footprint) // consumes (3,5) and (3,7)

	tests := []struct {
		name      string
		line, col int
		footprint []int
		want      bool
	}{
		{name: "same placement", line: 3, col: 5, footprint: footprint, want: true},
		{name: "overlap on shifted column", line: 3, col: 7, footprint: []int{0}, want: true},
		{name: "wildcard slot is free", line: 3, col: 6, footprint: []int{0}, want: false},
		{name: "other line untouched", line: 4, col: 5, footprint: footprint, want: false},
		{name: "offset reaches consumed column", line: 3, col: 3, footprint: []int{2}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Blocked(tt.line, tt.col, tt.footprint); got != tt.want {
				t.Errorf("Blocked(%d, %d, %v) = %v, want %v", tt.line, tt.col, tt.footprint, got, tt.want)
			}
		})
	}
}

func TestExclusionSet_MarkIsIdempotent(t *testing.T) {
	s := NewExclusionSet()
	s.Mark(1, 1, []int{0, 1})
	s.Mark(1, 1, []int{0, 1}) // double-marking must be harmless
	s.Mark(1, 2, []int{0})    // overlapping footprint from another fragment

	if !s.Blocked(1, 1, []int{0}) || !s.Blocked(1, 2, []int{0}) {
		t.Error("marked positions must stay consumed")
	}
	if s.Blocked(1, 3, []int{0}) {
		t.Error("unmarked position must stay free")
	}
}

func TestExclusionSet_EmptyFootprint(t *testing.T) {
	s := NewExclusionSet()
	s.Mark(1, 1, nil)
	if s.Blocked(1, 1, nil) {
		t.Error("an empty footprint consumes nothing and is never blocked")
	}
}
