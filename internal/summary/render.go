package summary

import (
	"io"
)

// LineWriter is the sink the rendered summary is written to.
type LineWriter interface {
	WriteLine(line string) error
}

type lineWriter struct {
	dst  io.Writer
	echo io.Writer
}

// NewLineWriter returns a LineWriter appending lines to dst. When echo is not
// nil every line is also written to it.
func NewLineWriter(dst, echo io.Writer) LineWriter {
	return &lineWriter{dst: dst, echo: echo}
}

func (w *lineWriter) WriteLine(line string) error {
	if _, err := io.WriteString(w.dst, line+"\n"); err != nil {
		return err
	}
	if w.echo != nil {
		if _, err := io.WriteString(w.echo, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Render sorts entries and writes the header followed by one line per entry.
func Render(w LineWriter, entries []Entry) error {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	SortEntries(sorted)

	if err := w.WriteLine(Header); err != nil {
		return err
	}
	for _, e := range sorted {
		if err := w.WriteLine(e.Line()); err != nil {
			return err
		}
	}
	return nil
}
