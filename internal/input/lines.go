package input

import "strings"

// Lines splits data into lines, stripping LF and CRLF terminators.
// A trailing newline does not produce a final empty line; content is
// otherwise kept verbatim, trailing spaces included.
func Lines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
