package output

import (
	"strconv"

	"github.com/dl/mlgrep/internal/search"
)

// TextFormatter renders results as human-readable text.
//
// Default mode prints one anchor line per match ("path:line:col", the
// first fragment's position). With showBlock, the matched landscape
// lines follow, with each fragment's span highlighted. Count and
// files-only modes mirror grep -c and grep -l.
type TextFormatter struct {
	styles      Styles
	lineNumbers bool
	countOnly   bool
	filesOnly   bool
	showBlock   bool
	useColor    bool
}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter(styles Styles, lineNumbers, countOnly, filesOnly, showBlock, useColor bool) *TextFormatter {
	return &TextFormatter{
		styles:      styles,
		lineNumbers: lineNumbers,
		countOnly:   countOnly,
		filesOnly:   filesOnly,
		showBlock:   showBlock,
		useColor:    useColor,
	}
}

func (f *TextFormatter) Format(buf []byte, result Result, multiFile bool) []byte {
	if f.filesOnly {
		if result.HasMatch() {
			buf = append(buf, f.styles.Path.Render(result.FilePath)...)
			buf = append(buf, '\n')
		}
		return buf
	}

	if f.countOnly {
		if multiFile {
			buf = append(buf, f.styles.Path.Render(result.FilePath)...)
			buf = append(buf, f.styles.Separator.Render(":")...)
		}
		buf = append(buf, f.styles.Count.Render(strconv.Itoa(result.Count()))...)
		buf = append(buf, '\n')
		return buf
	}

	for i, m := range result.Matches {
		if f.showBlock && i > 0 {
			buf = append(buf, f.styles.Separator.Render("--")...)
			buf = append(buf, '\n')
		}
		buf = f.formatAnchor(buf, result.FilePath, m, multiFile)
		if f.showBlock {
			buf = f.formatBlock(buf, result, m)
		}
	}
	return buf
}

func (f *TextFormatter) formatAnchor(buf []byte, filePath string, m search.Match, multiFile bool) []byte {
	sep := f.styles.Separator.Render(":")
	anchor := m.Anchor()
	if multiFile {
		buf = append(buf, f.styles.Path.Render(filePath)...)
		buf = append(buf, sep...)
	}
	buf = append(buf, f.styles.LineNum.Render(strconv.Itoa(anchor.Line))...)
	buf = append(buf, sep...)
	buf = append(buf, f.styles.LineNum.Render(strconv.Itoa(anchor.Column))...)
	buf = append(buf, '\n')
	return buf
}

func (f *TextFormatter) formatBlock(buf []byte, result Result, m search.Match) []byte {
	sep := f.styles.Separator.Render(":")
	for _, occ := range m.Occurrences {
		if occ.Line < 1 || occ.Line > len(result.Lines) {
			continue
		}
		line := result.Lines[occ.Line-1]
		if f.lineNumbers {
			buf = append(buf, f.styles.LineNum.Render(strconv.Itoa(occ.Line))...)
			buf = append(buf, sep...)
		}
		width := 0
		if occ.Fragment < len(result.FragLens) {
			width = result.FragLens[occ.Fragment]
		}
		buf = f.highlightSpan(buf, line, occ.Column-1, width)
		buf = append(buf, '\n')
	}
	return buf
}

// highlightSpan appends line with [start, start+width) styled. Spans are
// clipped to the line; with color disabled the line passes through as-is.
func (f *TextFormatter) highlightSpan(buf []byte, line string, start, width int) []byte {
	end := start + width
	if !f.useColor || width <= 0 || start < 0 || start >= len(line) {
		return append(buf, line...)
	}
	if end > len(line) {
		end = len(line)
	}
	buf = append(buf, line[:start]...)
	buf = append(buf, f.styles.Span.Render(line[start:end])...)
	buf = append(buf, line[end:]...)
	return buf
}

var _ Formatter = (*TextFormatter)(nil)
