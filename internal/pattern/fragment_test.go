package pattern

import (
	"reflect"
	"testing"
)

func TestFootprint(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{name: "no wildcards", text: "abc", want: []int{0, 1, 2}},
		{name: "interior wildcard", text: "a c", want: []int{0, 2}},
		{name: "leading wildcards", text: "  ##", want: []int{2, 3}},
		{name: "all wildcards", text: "   ", want: nil},
		{name: "empty", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFragment(tt.text, BackendBytes)
			if err != nil {
				t.Fatalf("NewFragment() error: %v", err)
			}
			if got := f.Footprint(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Footprint() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFragment_FindColumns(t *testing.T) {
	tests := []struct {
		name string
		frag string
		line string
		want []int
	}{
		{
			name: "single hit",
			frag: "ab",
			line: "xaby",
			want: []int{2},
		},
		{
			name: "overlapping hits",
			frag: "aa",
			line: "aaa",
			want: []int{1, 2},
		},
		{
			name: "overlapping long run",
			frag: "aa",
			line: "aaaa",
			want: []int{1, 2, 3},
		},
		{
			name: "wildcard matches any byte",
			frag: "a c",
			line: "abc axc a c",
			want: []int{1, 5, 9},
		},
		{
			name: "leading wildcard is positional",
			frag: " b",
			line: "ab",
			want: []int{1},
		},
		{
			name: "no hit",
			frag: "zz",
			line: "aaa",
			want: nil,
		},
		{
			name: "fragment wider than line",
			frag: "abcdef",
			line: "abc",
			want: nil,
		},
		{
			name: "empty fragment never matches",
			frag: "",
			line: "abc",
			want: nil,
		},
		{
			name: "all-wildcard fragment matches every start",
			frag: "  ",
			line: "abc",
			want: []int{1, 2},
		},
		{
			name: "empty line",
			frag: "a",
			line: "",
			want: nil,
		},
		{
			name: "case sensitive",
			frag: "A",
			line: "a A a",
			want: []int{3},
		},
		{
			name: "exact width hit at end",
			frag: "cd",
			line: "abcd",
			want: []int{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFragment(tt.frag, BackendBytes)
			if err != nil {
				t.Fatalf("NewFragment() error: %v", err)
			}
			if got := f.FindColumns(tt.line); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindColumns(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestCompile_StripsTrailingWhitespace(t *testing.T) {
	frags, err := Compile([]string{"ab  ", "\tcd\t "}, BackendBytes)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if got := frags[0].Text(); got != "ab" {
		t.Errorf("frags[0].Text() = %q, want %q", got, "ab")
	}
	if got := frags[1].Text(); got != "\tcd" {
		t.Errorf("frags[1].Text() = %q, want %q", got, "\tcd")
	}
}

func TestCompile_KeepsLeadingSpaces(t *testing.T) {
	frags, err := Compile([]string{"  ##"}, BackendBytes)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	f := frags[0]
	if f.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", f.Len())
	}
	// The leading wildcards shift the match start two columns left of
	// the first significant byte.
	if got := f.FindColumns("ab##"); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("FindColumns() = %v, want [1]", got)
	}
}
