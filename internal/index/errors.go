package index

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *RangeError.
var ErrOutOfRange = errors.New("line index out of range")

// RangeError reports a request for a line the file does not have.
type RangeError struct {
	Index int
	Lines int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("line(%d): index too large, file only contains %d lines", e.Index, e.Lines)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// OpenError reports a file that could not be opened or mapped.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("could not open or map %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
