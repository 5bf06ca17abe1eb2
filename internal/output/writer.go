package output

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes formatted output to stdout using writev.
type Writer struct {
	fd int
}

// NewWriter creates a Writer on stdout.
func NewWriter() *Writer {
	return &Writer{fd: int(os.Stdout.Fd())}
}

// Write writes data fully, retrying on short writes.
func (w *Writer) Write(data []byte) error {
	for len(data) > 0 {
		n, err := unix.Writev(w.fd, [][]byte{data})
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// OrderedWriter consumes results from a channel and writes them in
// sequence-number order, so parallel workers produce deterministic
// output.
type OrderedWriter struct {
	writer    *Writer
	formatter Formatter
	multiFile bool
}

// NewOrderedWriter creates an OrderedWriter.
func NewOrderedWriter(w *Writer, f Formatter, multiFile bool) *OrderedWriter {
	return &OrderedWriter{writer: w, formatter: f, multiFile: multiFile}
}

// WriteOrdered drains results, buffering out-of-order ones until their
// turn. onMatch runs once per result that has at least one match. On a
// write error it stops writing but keeps draining the channel so the
// workers feeding it can finish, and returns the first error.
func (ow *OrderedWriter) WriteOrdered(results <-chan Result, onMatch func()) error {
	nextSeq := 1
	pending := make(map[int]Result)
	var buf []byte
	var werr error

	for r := range results {
		if r.Err == nil && r.HasMatch() && onMatch != nil {
			onMatch()
		}
		if werr != nil {
			continue
		}
		if r.SeqNum != nextSeq {
			pending[r.SeqNum] = r
			continue
		}
		buf, werr = ow.writeResult(buf, r)
		nextSeq++
		for werr == nil {
			p, ok := pending[nextSeq]
			if !ok {
				break
			}
			buf, werr = ow.writeResult(buf, p)
			delete(pending, nextSeq)
			nextSeq++
		}
	}
	return werr
}

func (ow *OrderedWriter) writeResult(buf []byte, r Result) ([]byte, error) {
	if r.Err != nil {
		return buf, nil
	}
	buf = ow.formatter.Format(buf[:0], r, ow.multiFile)
	if err := ow.writer.Write(buf); err != nil {
		return buf, err
	}
	return buf, nil
}
