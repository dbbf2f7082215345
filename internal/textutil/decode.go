package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Decode turns raw line bytes into text. Each byte that does not start a
// valid UTF-8 sequence becomes U+FFFD and decoding resumes at the next byte.
// A sequence cut off by the end of the line yields one U+FFFD per byte.
func Decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	body, tail := raw, 0
	if cut := incompleteTail(raw); cut >= 0 {
		body, tail = raw[:cut], len(raw)-cut
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(body)
	if err != nil {
		out = []byte(string([]rune(string(body))))
	}
	if tail == 0 {
		return string(out)
	}
	return string(out) + strings.Repeat(string(utf8.RuneError), tail)
}

// incompleteTail returns the offset of a trailing sequence that is a
// prefix of a valid encoding but is missing bytes, or -1.
func incompleteTail(raw []byte) int {
	for i := len(raw) - 1; i >= 0 && i >= len(raw)-utf8.UTFMax; i-- {
		if utf8.RuneStart(raw[i]) {
			if !utf8.FullRune(raw[i:]) {
				return i
			}
			return -1
		}
	}
	return -1
}
