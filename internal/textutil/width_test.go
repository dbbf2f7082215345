package textutil

import "testing"

func TestDisplayWidthGraphemeClusters(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"ascii", "abc", 3},
		{"cjk", "日本", 4},
		{"combining accent", "é", 1},
		{"emoji with VS16", "⚠️", 2},
		{"family zwj sequence", "\U0001F468‍\U0001F469‍\U0001F467", 2},
		{"flag", "\U0001F1F5\U0001F1F1", 2},
		{"mixed", "a⚠️b", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}
