// Package window keeps a two-cursor view over a sorted set of visible line
// numbers.
//
// top is the first line on screen; bottom walks from top while a frame is
// drawn and ends on the last line drawn. Both are positions in the visible
// sequence, with len(lines) standing for "none".
package window

import (
	"fmt"

	"github.com/kk-code-lab/fewer/internal/lineset"
)

type Window struct {
	lines  lineset.Set
	top    int
	bottom int
}

func New() *Window {
	return &Window{lines: lineset.Set{}}
}

func (w *Window) end() int {
	return len(w.lines)
}

// Len returns the number of visible lines.
func (w *Window) Len() int {
	return len(w.lines)
}

// Lines returns the visible sequence. It must not be modified.
func (w *Window) Lines() lineset.Set {
	return w.lines
}

// Assign replaces the visible lines and keeps the top line as close as
// possible to where it was: on the same line number if still visible,
// otherwise on the nearest visible line before it.
func (w *Window) Assign(lines lineset.Set) {
	prev := w.TopLineNumber()
	w.lines = lines
	if w.lines == nil {
		w.lines = lineset.Set{}
	}
	w.GotoApprox(prev)
	w.bottom = w.top
}

// Start begins a walk at the top line. It reports whether anything is
// visible.
func (w *Window) Start() bool {
	w.bottom = w.top
	return w.bottom < w.end()
}

// Current returns the line number under the walk cursor, or 0.
func (w *Window) Current() int {
	return w.BottomLineNumber()
}

// Next advances the walk cursor. It reports false, without moving, on the
// last visible line.
func (w *Window) Next() bool {
	if w.IsLastDisplayed() {
		return false
	}
	w.bottom++
	return true
}

// Prev moves the walk cursor back. It reports false, without moving, on the
// first visible line.
func (w *Window) Prev() bool {
	if w.bottom <= 0 || w.bottom > w.end() {
		return false
	}
	w.bottom--
	return true
}

// IsFirstDisplayed reports whether the top line is the first visible line.
func (w *Window) IsFirstDisplayed() bool {
	return w.top == 0
}

// IsLastDisplayed reports whether the walk cursor is on the last visible
// line.
func (w *Window) IsLastDisplayed() bool {
	return w.bottom >= w.end()-1
}

// ScrollDown moves the top line one line forward.
func (w *Window) ScrollDown() {
	if w.top+1 < w.end() {
		w.top++
	}
}

// ScrollUp moves the top line one line back.
func (w *Window) ScrollUp() {
	if w.top > 0 {
		w.top--
	}
}

// TopReset moves the top line to the first visible line.
func (w *Window) TopReset() {
	w.top = 0
}

// PageDown makes the line the last walk ended on the new top line.
func (w *Window) PageDown() {
	if w.bottom < w.end() {
		w.top = w.bottom
	}
}

// GotoExact positions both cursors on lineNum. It reports false, leaving
// the window unchanged, when lineNum is not visible.
func (w *Window) GotoExact(lineNum int) bool {
	for i, n := range w.lines {
		if n == lineNum {
			w.top = i
			w.bottom = i
			return true
		}
	}
	return false
}

// GotoApprox moves the top line to lineNum, or to the closest visible line
// before it. Requests before the first visible line land on the first one
// and requests past the end on the last one.
func (w *Window) GotoApprox(lineNum int) {
	if lineNum == 0 || len(w.lines) == 0 {
		w.TopReset()
		return
	}
	pos := w.lines.Search(lineNum)
	switch {
	case pos == 0:
	case pos == len(w.lines):
		pos--
	case w.lines[pos] == lineNum:
	default:
		pos--
	}
	w.top = pos
}

// GotoPercent moves the top line p percent into the visible line numbers.
func (w *Window) GotoPercent(p int) {
	if p <= 0 {
		w.TopReset()
		return
	}
	if p > 100 {
		p = 100
	}
	target := uint64(w.LastLineNumber()) * uint64(p) / 100
	w.GotoApprox(int(target))
}

// LastLineNumber returns the highest visible line number, or 0.
func (w *Window) LastLineNumber() int {
	return w.lines.Last()
}

// TopLineNumber returns the line number of the top line, or 0.
func (w *Window) TopLineNumber() int {
	if w.top < 0 || w.top >= w.end() {
		return 0
	}
	return w.lines[w.top]
}

// BottomLineNumber returns the line number under the walk cursor, or 0.
func (w *Window) BottomLineNumber() int {
	if w.bottom < 0 || w.bottom >= w.end() {
		return 0
	}
	return w.lines[w.bottom]
}

func (w *Window) String() string {
	return fmt.Sprintf("top #%d bottom #%d", w.TopLineNumber(), w.BottomLineNumber())
}
