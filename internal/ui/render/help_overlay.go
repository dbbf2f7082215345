package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fewer/internal/textutil"
)

const helpKeyColumn = 14

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

var helpSections = []helpOverlaySection{
	{
		title: "Movement",
		entries: []helpOverlayEntry{
			{keys: "j ↓ Enter", desc: "Scroll down one line"},
			{keys: "k ↑", desc: "Scroll up one line"},
			{keys: "Space PgDn", desc: "Next page"},
			{keys: "b PgUp", desc: "Previous page"},
			{keys: "g Home", desc: "First line"},
			{keys: "G End", desc: "Last page"},
			{keys: ":", desc: "Go to line number"},
			{keys: "%", desc: "Go to percentage"},
		},
	},
	{
		title: "Filters",
		entries: []helpOverlayEntry{
			{keys: "/", desc: "Add filter: PATTERN, !PATTERN, /PATTERN/i!"},
			{keys: "&", desc: "Add display filter: |PATTERN|bold,red on black or /PATTERN/REPLACEMENT/"},
			{keys: "-", desc: "Remove last filter"},
			{keys: "=", desc: "Remove all filters"},
		},
	},
	{
		title: "Other",
		entries: []helpOverlayEntry{
			{keys: "s", desc: "Save visible lines to a file"},
			{keys: "#", desc: "Toggle line numbers"},
			{keys: "Ctrl+Z", desc: "Suspend"},
			{keys: "q Ctrl+C", desc: "Quit"},
			{keys: "? h", desc: "Close this help"},
		},
	},
}

func buildHelpOverlayLines() []string {
	lines := make([]string, 0, 32)
	for i, section := range helpSections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			pad := helpKeyColumn - textutil.DisplayWidth(entry.keys)
			if pad < 1 {
				pad = 1
			}
			lines = append(lines, "  "+entry.keys+strings.Repeat(" ", pad)+entry.desc)
		}
	}
	return lines
}

func (r *Renderer) drawHelpOverlay(w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	headerStyle := tcell.StyleDefault.Background(r.theme.StatusBg).Foreground(r.theme.StatusFg).Bold(true)

	title := " Help "
	titleStart := 0
	if titleWidth := r.measureTextWidth(title); w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	for _, line := range buildHelpOverlayLines() {
		if row >= h-1 {
			break
		}
		text := r.truncateTextToWidth(strings.TrimRight(line, " "), w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	if h > 1 {
		x := r.drawTextLine(0, h-1, w, r.truncateTextToWidth("? toggle · Esc/q close", w), headerStyle)
		r.fillRow(x, h-1, w, headerStyle)
	}
}
