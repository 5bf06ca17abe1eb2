package output

import "encoding/json"

// JSONFormatter renders results as JSON Lines: one object per match,
// then one summary object per landscape.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonMatch struct {
	Type      string         `json:"type"`
	File      string         `json:"file,omitempty"`
	Fragments []jsonFragment `json:"fragments"`
}

type jsonFragment struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Width  int `json:"width,omitempty"`
}

type jsonSummary struct {
	Type  string `json:"type"`
	File  string `json:"file,omitempty"`
	Count int    `json:"count"`
}

func (f *JSONFormatter) Format(buf []byte, result Result, multiFile bool) []byte {
	for _, m := range result.Matches {
		jm := jsonMatch{
			Type:      "match",
			File:      result.FilePath,
			Fragments: make([]jsonFragment, len(m.Occurrences)),
		}
		for i, occ := range m.Occurrences {
			width := 0
			if occ.Fragment < len(result.FragLens) {
				width = result.FragLens[occ.Fragment]
			}
			jm.Fragments[i] = jsonFragment{Line: occ.Line, Column: occ.Column, Width: width}
		}
		data, _ := json.Marshal(jm)
		buf = append(buf, data...)
		buf = append(buf, '\n')
	}

	summary, _ := json.Marshal(jsonSummary{Type: "summary", File: result.FilePath, Count: result.Count()})
	buf = append(buf, summary...)
	buf = append(buf, '\n')
	return buf
}

var _ Formatter = (*JSONFormatter)(nil)
