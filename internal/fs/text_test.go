package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsTextDetectsUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}
	if !IsText("config.ini", content) {
		t.Fatalf("expected UTF-16 LE content to be treated as text")
	}
}

func TestIsText(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		sample []byte
		want   bool
	}{
		{"empty", "", nil, true},
		{"ascii", "notes.txt", []byte("hello\nworld\n"), true},
		{"nul byte", "", []byte("ab\x00cd"), false},
		{"binary extension", "image.PNG", []byte("looks like text"), false},
		{"latin1 text", "", []byte("caf\xe9 cr\xe8me\n"), true},
		{"control noise", "", []byte{0x01, 0x02, 0x03, 0x04, 'a', 0x05, 0x06}, false},
		{"escape sequences are text", "", []byte("\x1b[31mred\x1b[0m\tok\r\n"), true},
		{"few controls", "", []byte("form\x0cfeed and more plain text here\n"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsText(tt.path, tt.sample); got != tt.want {
				t.Fatalf("IsText(%q, %q) = %v, want %v", tt.path, tt.sample, got, tt.want)
			}
		})
	}
}

func TestToUTF8(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
		enc     Encoding
	}{
		{"plain", []byte("abc\n"), "abc\n", EncodingPlain},
		{"utf8 bom", []byte("\xEF\xBB\xBFabc"), "abc", EncodingUTF8BOM},
		{"utf16le", []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}, "A\r\n", EncodingUTF16LE},
		{"utf16be", []byte{0xFE, 0xFF, 0x00, 0x41, 0x00, 0x0A}, "A\n", EncodingUTF16BE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, enc, err := ToUTF8(tt.content)
			if err != nil {
				t.Fatalf("ToUTF8: %v", err)
			}
			if string(got) != tt.want || enc != tt.enc {
				t.Fatalf("ToUTF8 = (%q, %v), want (%q, %v)", got, enc, tt.want, tt.enc)
			}
		})
	}
}

func TestReadHead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	head, err := ReadHead(path, 4)
	if err != nil {
		t.Fatalf("ReadHead: %v", err)
	}
	if string(head) != "0123" {
		t.Fatalf("ReadHead = %q", head)
	}
	if _, err := ReadHead(filepath.Join(t.TempDir(), "missing"), 4); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
