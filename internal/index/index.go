// Package index splits a read-only file buffer into lines on demand.
//
// Lines are discovered lazily: a request for line n scans only as far as
// line n, resuming where the previous scan stopped, so every byte of the
// buffer is examined at most once per session. Line content is exposed as
// views into the shared buffer and is never copied.
package index

import (
	"bytes"

	"github.com/kk-code-lab/fewer/internal/lineset"
)

// NoNext marks the final line of a buffer that does not end in a newline.
const NoNext = -1

// Line describes one line of the buffer. Begin..End excludes the trailing
// line terminator; Next is where scanning of the following line resumes.
type Line struct {
	Begin  int
	End    int
	Next   int
	Number int
}

// Len returns the length of the line content in bytes.
func (l Line) Len() int {
	return l.End - l.Begin
}

// Index owns the buffer of one file and the line records discovered so far.
type Index struct {
	path      string
	buf       []byte
	lines     []Line // lines[0] is a sentinel so lines[n] is line n
	parsedAll bool
	release   func() error
}

// New indexes an in-memory buffer. The buffer must not be modified while
// the index is in use.
func New(data []byte) *Index {
	x := &Index{
		buf:   data,
		lines: make([]Line, 1, 1024),
	}
	if len(data) == 0 {
		x.parsedAll = true
	}
	return x
}

// Open maps path read-only and returns an index over it.
func Open(path string) (*Index, error) {
	buf, release, err := mapFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	x := New(buf)
	x.path = path
	x.release = release
	return x, nil
}

// Close releases the mapping. Line content obtained earlier must not be
// used afterwards.
func (x *Index) Close() error {
	if x == nil || x.release == nil {
		return nil
	}
	release := x.release
	x.release = nil
	x.buf = nil
	return release()
}

func (x *Index) Path() string {
	return x.path
}

// Size returns the buffer size in bytes.
func (x *Index) Size() int {
	return len(x.buf)
}

// LineCount returns the number of lines discovered so far. It equals the
// number of lines in the file only once ParsedAll reports true.
func (x *Index) LineCount() int {
	return len(x.lines) - 1
}

// ParsedAll reports whether the whole buffer has been scanned.
func (x *Index) ParsedAll() bool {
	return x.parsedAll
}

// ParseThrough makes sure lines 1..n are indexed, or stops at the end of the
// buffer. It reports whether line n exists.
func (x *Index) ParseThrough(n int) bool {
	if n <= 0 {
		return false
	}
	if n <= x.LineCount() {
		return true
	}
	if x.parsedAll {
		return false
	}

	pos := 0
	if last := x.lines[len(x.lines)-1]; last.Number > 0 {
		pos = last.Next
	}

	for x.LineCount() < n {
		if pos < 0 || pos >= len(x.buf) {
			x.parsedAll = true
			break
		}
		rel := bytes.IndexByte(x.buf[pos:], '\n')
		if rel < 0 {
			x.push(pos, len(x.buf), NoNext)
			x.parsedAll = true
			break
		}
		end := pos + rel
		x.push(pos, end, end+1)
		pos = end + 1
	}
	if pos >= len(x.buf) {
		x.parsedAll = true
	}
	return n <= x.LineCount()
}

// ParseAll scans the rest of the buffer.
func (x *Index) ParseAll() {
	for !x.parsedAll {
		x.ParseThrough(x.LineCount() + 4096)
	}
}

func (x *Index) push(begin, end, next int) {
	for end > begin && (x.buf[end-1] == '\n' || x.buf[end-1] == '\r') {
		end--
	}
	x.lines = append(x.lines, Line{
		Begin:  begin,
		End:    end,
		Next:   next,
		Number: len(x.lines),
	})
}

// Line returns the record of line n, indexing further into the buffer if
// needed. It fails with a *RangeError when the file has fewer than n lines.
func (x *Index) Line(n int) (Line, error) {
	if n <= 0 || (n > x.LineCount() && !x.ParseThrough(n)) {
		return Line{}, &RangeError{Index: n, Lines: x.LineCount()}
	}
	return x.lines[n], nil
}

// Bytes returns the content of l as a view into the buffer. The capacity is
// clipped so appending to the result never writes into the buffer.
func (x *Index) Bytes(l Line) []byte {
	return x.buf[l.Begin:l.End:l.End]
}

// Head returns up to n bytes from the start of the buffer.
func (x *Index) Head(n int) []byte {
	if n > len(x.buf) {
		n = len(x.buf)
	}
	return x.buf[:n:n]
}

// LineBytes returns the content of line n.
func (x *Index) LineBytes(n int) ([]byte, error) {
	l, err := x.Line(n)
	if err != nil {
		return nil, err
	}
	return x.Bytes(l), nil
}

// Universe scans the whole buffer and returns every line number.
func (x *Index) Universe() lineset.Set {
	x.ParseAll()
	return lineset.Universe(x.LineCount())
}

// Each scans the whole buffer and calls fn for every line in order.
func (x *Index) Each(fn func(l Line, content []byte)) {
	x.ParseAll()
	for _, l := range x.lines[1:] {
		fn(l, x.Bytes(l))
	}
}
