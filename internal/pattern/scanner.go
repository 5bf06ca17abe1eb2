package pattern

import "strings"

// Scanner finds every 1-based start column where a fragment matches a
// line, including overlapping starts. Non-overlapping scan semantics are
// not enough here: fragment "aa" on line "aaa" must yield columns 1 and 2.
type Scanner interface {
	Columns(line string) []int
}

// Backend selects the scanner implementation.
type Backend int

const (
	// BackendBytes scans with direct byte comparison of footprint
	// positions, re-testing from start+1 after every hit.
	BackendBytes Backend = iota
	// BackendPCRE compiles the fragment to a PCRE2 regex and re-scans
	// from each hit plus one to surface overlapping starts.
	BackendPCRE
)

// byteScanner matches a fragment against a line by comparing only the
// footprint positions, so wildcard bytes cost nothing. The first
// significant byte is used as an anchor to skip candidate positions via
// IndexByte.
type byteScanner struct {
	text      string
	footprint []int
	anchor    byte
	anchorOff int
	anchored  bool
}

func newByteScanner(text string, footprint []int) *byteScanner {
	s := &byteScanner{text: text, footprint: footprint}
	if len(footprint) > 0 {
		s.anchorOff = footprint[0]
		s.anchor = text[s.anchorOff]
		s.anchored = true
	}
	return s
}

func (s *byteScanner) Columns(line string) []int {
	n := len(line)
	m := len(s.text)
	if m == 0 || m > n {
		return nil
	}

	var cols []int
	for start := 0; start <= n-m; start++ {
		if s.anchored {
			// Candidate starts put the anchor byte in
			// [start+anchorOff, n-m+anchorOff]; jump straight to it.
			idx := strings.IndexByte(line[start+s.anchorOff:n-m+s.anchorOff+1], s.anchor)
			if idx < 0 {
				break
			}
			start += idx
		}
		if s.matchAt(line, start) {
			cols = append(cols, start+1)
		}
	}
	return cols
}

func (s *byteScanner) matchAt(line string, start int) bool {
	for _, off := range s.footprint {
		if line[start+off] != s.text[off] {
			return false
		}
	}
	return true
}
