package textutil

import "testing"

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"no tabs", "abc", 8, "abc"},
		{"leading tab", "\tx", 8, "        x"},
		{"mid tab", "ab\tc", 4, "ab  c"},
		{"tab on stop", "abcd\te", 4, "abcd    e"},
		{"wide rune counts two", "日\tx", 4, "日  x"},
		{"disabled", "a\tb", 0, "a\tb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandTabs(tt.text, tt.width); got != tt.want {
				t.Fatalf("ExpandTabs(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"hello", 3, "hel"},
		{"hello", 10, "hello"},
		{"日本語", 3, "日"},
		{"日本語", 4, "日本"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.text, tt.width); got != tt.want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
