package input

import (
	"io"
	"os"
)

// StdinReader reads all of stdin, ignoring the path argument.
type StdinReader struct{}

// NewStdinReader creates a StdinReader.
func NewStdinReader() *StdinReader {
	return &StdinReader{}
}

func (r *StdinReader) Read(_ string) (ReadResult, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return ReadResult{}, err
	}
	return ReadResult{Data: data, Closer: noopCloser}, nil
}
