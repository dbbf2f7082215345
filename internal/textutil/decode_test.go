package textutil

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"ascii", "abc", "abc"},
		{"multibyte", "\xE2\x82\xAC", "€"},
		{"overlong sequence resyncs per byte", "€\xF0\x82\x82\xAC¢", "€����¢"},
		{"stray lead byte", "Dirk€Jagdmann\xF4Writes¢Fewer", "Dirk€Jagdmann�Writes¢Fewer"},
		{"truncated at end", "ab\xE2\x82", "ab��"},
		{"truncated four byte sequence", "x\xF0\x9F\x98", "x���"},
		{"lone lead byte at end", "ok\xC3", "ok�"},
		{"invalid then truncated", "\xFFa\xE2", "�a�"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode([]byte(tt.raw)); got != tt.want {
				t.Fatalf("Decode(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
