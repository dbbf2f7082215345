package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeLineLeavesSafeInput(t *testing.T) {
	input := "plain\tline"
	if got := SanitizeLine(input); got != input {
		t.Fatalf("expected %q to remain untouched, got %q", input, got)
	}
}

func TestSanitizeLineUsesCaretNotation(t *testing.T) {
	got := SanitizeLine("bad\x1b[31m\x7fend\x00")
	if got != "bad^[[31m^?end^@" {
		t.Fatalf("SanitizeLine = %q", got)
	}
	if containsControl(got) {
		t.Fatalf("sanitized text should not contain control characters: %q", got)
	}
}

func TestSanitizeTerminalTextReplacesControlSequences(t *testing.T) {
	got := SanitizeTerminalText("bad\x1b[31m\npath\tx")
	if got != "bad?[31m path x" {
		t.Fatalf("expected sanitized string \"bad?[31m path x\", got %q", got)
	}
}

func TestSanitizeLabelsFormattingRunes(t *testing.T) {
	input := "a" + string(rune(0x202E)) + "b" + string(rune(0x200B)) + "c"
	for _, got := range []string{SanitizeLine(input), SanitizeTerminalText(input)} {
		if strings.ContainsRune(got, 0x202E) || strings.ContainsRune(got, 0x200B) {
			t.Fatalf("sanitize left formatting runes in output: %q", got)
		}
		if !strings.Contains(got, "⟪RLO⟫") || !strings.Contains(got, "⟪ZWSP⟫") {
			t.Fatalf("expected formatting runes to be labeled, got %q", got)
		}
	}
}

func containsControl(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}
