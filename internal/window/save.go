package window

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// LineSource supplies line content by line number.
type LineSource interface {
	LineBytes(n int) ([]byte, error)
}

// ConsistencyError reports a visible line that its source does not have.
// It means the window and the source were not built from the same file.
type ConsistencyError struct {
	Line int
	Err  error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("visible line %d has no source record: %v", e.Line, e.Err)
}

func (e *ConsistencyError) Unwrap() error {
	return e.Err
}

// WriteTo writes every visible line, in order, each followed by the
// platform line terminator. It returns the number of lines written.
func (w *Window) WriteTo(out io.Writer, src LineSource) (int, error) {
	bw := bufio.NewWriterSize(out, 64*1024)
	written := 0
	for _, n := range w.lines {
		content, err := src.LineBytes(n)
		if err != nil {
			_ = bw.Flush()
			return written, &ConsistencyError{Line: n, Err: err}
		}
		if _, err := bw.Write(content); err != nil {
			return written, err
		}
		if _, err := bw.WriteString(lineTerminator); err != nil {
			return written, err
		}
		written++
	}
	return written, bw.Flush()
}

// Save writes the visible lines to a newly created file. A failure part
// way through leaves the partial file in place.
func (w *Window) Save(filename string, src LineSource) (int, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, fmt.Errorf("save %s: %w", filename, err)
	}

	written, err := w.WriteTo(f, src)
	closeErr := f.Close()
	if err != nil {
		return written, fmt.Errorf("save %s: %w", filename, err)
	}
	if closeErr != nil {
		return written, fmt.Errorf("save %s: %w", filename, closeErr)
	}
	return written, nil
}
