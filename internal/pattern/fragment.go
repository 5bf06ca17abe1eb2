// Package pattern compiles the lines of a multiline pattern into fragment
// matchers and scans landscape lines for occurrences.
//
// A fragment is one line of the pattern. Space characters in a fragment are
// wildcards that match any single byte; every other byte must match exactly,
// case-sensitively. The non-space positions form the fragment's footprint:
// the landscape positions a finalized match reserves against reuse.
package pattern

import "strings"

// Fragment is one compiled pattern line. Immutable after construction and
// safe to share across concurrent search sessions.
type Fragment struct {
	text      string
	footprint []int
	scanner   Scanner
}

// NewFragment compiles a single pattern line. The caller must already have
// stripped the line terminator and trailing whitespace; leading spaces are
// significant wildcard content, not indentation.
func NewFragment(text string, backend Backend) (*Fragment, error) {
	f := &Fragment{text: text, footprint: footprintOf(text)}
	if len(text) == 0 {
		// An empty fragment never matches, so it gets no scanner.
		return f, nil
	}
	switch backend {
	case BackendPCRE:
		s, err := newPCREScanner(text)
		if err != nil {
			return nil, err
		}
		f.scanner = s
	default:
		f.scanner = newByteScanner(text, f.footprint)
	}
	return f, nil
}

// Compile builds one Fragment per pattern line, stripping trailing
// whitespace from each line (leading spaces are kept).
func Compile(lines []string, backend Backend) ([]*Fragment, error) {
	frags := make([]*Fragment, 0, len(lines))
	for _, line := range lines {
		f, err := NewFragment(strings.TrimRight(line, " \t"), backend)
		if err != nil {
			return nil, err
		}
		frags = append(frags, f)
	}
	return frags, nil
}

// Text returns the raw fragment text.
func (f *Fragment) Text() string { return f.text }

// Len returns the fragment width in bytes.
func (f *Fragment) Len() int { return len(f.text) }

// Empty reports whether the fragment has zero width.
func (f *Fragment) Empty() bool { return len(f.text) == 0 }

// Footprint returns the offsets of the significant (non-wildcard) bytes
// within the fragment, in ascending order.
func (f *Fragment) Footprint() []int { return f.footprint }

// FindColumns returns every 1-based column in line where the fragment
// matches, including overlapping starts. A fragment wider than the line,
// or an empty fragment, yields nothing.
func (f *Fragment) FindColumns(line string) []int {
	if f.scanner == nil {
		return nil
	}
	return f.scanner.Columns(line)
}

// Close releases scanner resources for backends that hold any.
func (f *Fragment) Close() {
	if c, ok := f.scanner.(interface{ Close() }); ok {
		c.Close()
	}
}

// CloseAll closes every fragment in frags.
func CloseAll(frags []*Fragment) {
	for _, f := range frags {
		f.Close()
	}
}

func footprintOf(text string) []int {
	var fp []int
	for i := 0; i < len(text); i++ {
		if text[i] != ' ' {
			fp = append(fp, i)
		}
	}
	return fp
}
