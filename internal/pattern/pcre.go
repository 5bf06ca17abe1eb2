package pattern

import (
	"regexp"
	"strings"

	"go.elara.ws/pcre"
)

// pcreScanner matches a fragment with a compiled PCRE2 regex: fragment
// "ab c" compiles to ab.c. FindAll resumes after a match's end and so
// skips overlapping starts (and drops zero-width hits outright), so
// Columns drives FindIndex itself and re-scans from each hit plus one,
// the same walk the byte scanner does.
type pcreScanner struct {
	re *pcre.Regexp
}

func newPCREScanner(text string) (*pcreScanner, error) {
	quoted := regexp.QuoteMeta(text)
	// QuoteMeta leaves spaces alone, so the wildcard rewrite is a plain
	// replacement. Dot does not match a newline, but lines carry none.
	re, err := pcre.Compile(strings.ReplaceAll(quoted, " ", "."))
	if err != nil {
		return nil, err
	}
	return &pcreScanner{re: re}, nil
}

func (s *pcreScanner) Columns(line string) []int {
	data := []byte(line)
	var cols []int
	for start := 0; start <= len(data); {
		loc := s.re.FindIndex(data[start:])
		if loc == nil {
			break
		}
		cols = append(cols, start+loc[0]+1)
		start += loc[0] + 1
	}
	return cols
}

// Close releases the compiled PCRE regex resources.
func (s *pcreScanner) Close() {
	if s.re != nil {
		s.re.Close()
	}
}
