package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/fewer/internal/state"
	"github.com/kk-code-lab/fewer/internal/textutil"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

func (r *Renderer) SetTheme(theme ColorTheme) {
	r.theme = theme
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.Session) {
	r.screen.Clear()
	r.screen.HideCursor()

	w, h := r.screen.Size()
	if state.HelpVisible {
		r.drawHelpOverlay(w, h)
		r.screen.Show()
		return
	}

	r.drawLines(state, w, h)
	r.drawStatusLine(state, w, h)
	r.screen.Show()
}

// drawLines fills the content rows from the window's top line. Rows past
// the last visible line get a '~' marker.
func (r *Renderer) drawLines(state *statepkg.Session, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	numberStyle := baseStyle.Foreground(r.theme.LineNumberFg)
	fillerStyle := baseStyle.Foreground(r.theme.FillerFg)

	rows := h - 1
	if rows < 1 {
		rows = 1
	}
	frame := state.Frame()
	numberWidth := state.LineNumberWidth()

	for y := 0; y < rows && y < h; y++ {
		if y >= len(frame) {
			r.screen.SetContent(0, y, '~', nil, fillerStyle)
			continue
		}
		n := frame[y]
		x := 0
		if state.ShowLineNumbers {
			x = r.drawTextLine(0, y, w, fmt.Sprintf("%*d ", numberWidth, n), numberStyle)
		}

		text, attr, styled, err := state.DisplayLine(n)
		if err != nil {
			r.drawTextLine(x, y, w-x, err.Error(), baseStyle.Foreground(r.theme.ErrorBg))
			continue
		}
		style := baseStyle
		if styled {
			style = applyAttrStyle(baseStyle, attr)
		}
		end := r.drawTextLine(x, y, w-x, textutil.Truncate(text, w-x), style)
		if styled && attr.HasColors() {
			r.fillRow(end, y, w, style)
		}
	}
}

// drawStatusLine renders the bottom row: the open prompt, or the position
// summary followed by the last status message.
func (r *Renderer) drawStatusLine(state *statepkg.Session, w, h int) {
	y := h - 1
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.StatusBg).Foreground(r.theme.StatusFg)

	if state.Prompt.Active() {
		text := formatPrompt(state.Prompt)
		x := r.drawTextLine(0, y, w, r.truncateTextToWidth(text, w), style)
		r.fillRow(x, y, w, style)
		if x < w {
			r.screen.ShowCursor(x, y)
		}
		return
	}

	summary := formatStatusSummary(state)
	x := r.drawTextLine(0, y, w, r.truncateTextToWidth(summary, w), style)
	if msg := formatStatusMessage(state); msg != "" && x+2 < w {
		msgStyle := style
		if state.LastError != nil {
			msgStyle = tcell.StyleDefault.Background(r.theme.ErrorBg).Foreground(r.theme.ErrorFg)
		}
		x = r.drawTextLine(x, y, w-x, "  ", style)
		x = r.drawTextLine(x, y, w-x, r.truncateTextToWidth(msg, w-x), msgStyle)
	}
	r.fillRow(x, y, w, style)
}
