package render

import (
	"fmt"
	"strings"

	statepkg "github.com/kk-code-lab/fewer/internal/state"
	textutil "github.com/kk-code-lab/fewer/internal/textutil"
)

func formatStatusSummary(state *statepkg.Session) string {
	var b strings.Builder
	b.WriteString(textutil.SanitizeTerminalText(state.Name))
	// Filter counts precede the position; truncation cuts from the right.
	if n := state.Chain.Len(); n > 0 {
		fmt.Fprintf(&b, "  filters %d", n)
	}
	if n := len(state.Display); n > 0 {
		fmt.Fprintf(&b, "  display %d", n)
	}
	fmt.Fprintf(&b, "  lines %d/%d", state.Window.Len(), state.Index.LineCount())
	if state.Window.Len() == 0 {
		b.WriteString("  (no lines)")
	} else {
		fmt.Fprintf(&b, "  top %d  last %d", state.Window.TopLineNumber(), state.Window.LastLineNumber())
	}
	return b.String()
}

func formatStatusMessage(state *statepkg.Session) string {
	return textutil.SanitizeTerminalText(state.Status)
}

func formatPrompt(p statepkg.Prompt) string {
	return p.Kind.Label() + textutil.SanitizeTerminalText(string(p.Input))
}
