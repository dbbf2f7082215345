package textutil

import "strings"

var formattingRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// SanitizeLine prepares decoded file content for the screen. C0 controls
// and DEL are shown in caret notation, bidi and zero-width formatting
// characters get a visible label and tabs are left for ExpandTabs.
func SanitizeLine(text string) string {
	for _, r := range text {
		if needsSanitizing(r) {
			return sanitize(text, true)
		}
	}
	return text
}

// SanitizeTerminalText is the single-line variant for prompts and status
// messages: line breaks and tabs become spaces and other controls '?'.
func SanitizeTerminalText(text string) string {
	for _, r := range text {
		if needsSanitizing(r) || r == '\t' {
			return sanitize(text, false)
		}
	}
	return text
}

func needsSanitizing(r rune) bool {
	if r == '\t' {
		return false
	}
	if _, ok := formattingRuneLabels[r]; ok {
		return true
	}
	return (r >= 0 && r < 0x20) || r == 0x7f
}

func sanitize(text string, caret bool) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		if label, ok := formattingRuneLabels[r]; ok {
			b.WriteString(label)
			continue
		}
		switch {
		case caret && r == '\t':
			b.WriteRune(r)
		case caret && (r < 0x20 || r == 0x7f):
			b.WriteByte('^')
			b.WriteByte(byte(r) ^ 0x40)
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
