package state

import (
	"github.com/kk-code-lab/fewer/internal/filter"
	"github.com/kk-code-lab/fewer/internal/index"
	"github.com/kk-code-lab/fewer/internal/textutil"
	"github.com/kk-code-lab/fewer/internal/window"
)

// PromptKind says what a submitted prompt line is used for.
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptFilter
	PromptDisplayFilter
	PromptGotoLine
	PromptPercent
	PromptSave
)

// Label is the text drawn in front of the prompt input.
func (k PromptKind) Label() string {
	switch k {
	case PromptFilter:
		return "filter: "
	case PromptDisplayFilter:
		return "display filter: "
	case PromptGotoLine:
		return "line: "
	case PromptPercent:
		return "percent: "
	case PromptSave:
		return "save to: "
	default:
		return ""
	}
}

type Prompt struct {
	Kind  PromptKind
	Input []rune
}

// Active reports whether a prompt is open.
func (p Prompt) Active() bool {
	return p.Kind != PromptNone
}

// Session is the single source of truth for one open file.
type Session struct {
	Name    string
	Index   *index.Index
	Chain   *filter.Chain
	Window  *window.Window
	Display filter.DisplaySet

	TabWidth        int
	ShowLineNumbers bool

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	Prompt      Prompt
	HelpVisible bool

	// Status line
	Status    string
	LastError error
}

// NewSession builds a session over idx showing every line.
func NewSession(name string, idx *index.Index) *Session {
	s := &Session{
		Name:     name,
		Index:    idx,
		Chain:    filter.NewChain(idx),
		Window:   window.New(),
		TabWidth: textutil.DefaultTabWidth,
	}
	s.Refilter()
	return s
}

// Refilter recomputes the visible lines from the chain and hands them to
// the window, which keeps the top line as close as it can.
func (s *Session) Refilter() {
	s.Window.Assign(s.Chain.Visible())
}

// ContentRows is the number of screen rows available for file lines.
func (s *Session) ContentRows() int {
	rows := s.ScreenHeight - 1
	if rows < 1 {
		return 1
	}
	return rows
}

// Frame walks the window from the top line and returns the line numbers
// that fit on screen. The window's walk cursor is left on the last one,
// which is what PageDown continues from.
func (s *Session) Frame() []int {
	rows := s.ContentRows()
	frame := make([]int, 0, rows)
	if !s.Window.Start() {
		return frame
	}
	for {
		frame = append(frame, s.Window.Current())
		if len(frame) == rows || !s.Window.Next() {
			return frame
		}
	}
}

// DisplayLine returns the text of line n the way it is drawn: display
// filters applied, decoded, sanitized and tab-expanded.
func (s *Session) DisplayLine(n int) (string, filter.AttrStyle, bool, error) {
	raw, err := s.Index.LineBytes(n)
	if err != nil {
		return "", filter.AttrStyle{}, false, err
	}
	content, style, styled := s.Display.Apply(raw)
	text := textutil.SanitizeLine(textutil.Decode(content))
	return textutil.ExpandTabs(text, s.TabWidth), style, styled, nil
}

// LineNumberWidth is the column width needed for the largest visible line
// number.
func (s *Session) LineNumberWidth() int {
	width := 1
	for n := s.Window.LastLineNumber(); n >= 10; n /= 10 {
		width++
	}
	return width
}

func (s *Session) setError(err error) {
	s.LastError = err
	if err != nil {
		s.Status = err.Error()
	}
}

func (s *Session) setStatus(msg string) {
	s.LastError = nil
	s.Status = msg
}
