package textutil

import (
	"strings"

	"github.com/rivo/uniseg"
)

const DefaultTabWidth = 8

// ExpandTabs replaces tab characters with spaces up to the next tab stop.
// Columns are counted in grapheme clusters so wide and combined characters
// move the stop the way a terminal would.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text) + tabWidth)
	column := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		builder.WriteString(cluster)
		column += width
	}
	return builder.String()
}

// DisplayWidth reports the number of terminal cells text occupies.
func DisplayWidth(text string) int {
	return uniseg.StringWidth(text)
}

// Truncate cuts text to at most width cells without splitting a cluster.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	used := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width {
			return text[:len(text)-len(rest)-len(cluster)]
		}
		used += w
	}
	return text
}
