// Package fs sniffs file content before it is indexed: binary detection,
// byte order marks and conversion of UTF-16 input to UTF-8.
package fs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	// SampleSize is how much of a file is inspected by IsText.
	SampleSize                   = 4096
	nonPrintableThresholdPercent = 30
)

// Encoding is the Unicode form announced by a byte order mark.
type Encoding int

const (
	EncodingPlain Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8 (bom)"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "plain"
	}
}

var binaryExtensions = map[string]struct{}{
	".7z": {}, ".bin": {}, ".bz2": {}, ".class": {}, ".dll": {}, ".dylib": {},
	".exe": {}, ".gif": {}, ".gz": {}, ".jpeg": {}, ".jpg": {}, ".o": {},
	".pdf": {}, ".png": {}, ".so": {}, ".tar": {}, ".wasm": {}, ".xz": {},
	".zip": {}, ".zst": {},
}

// IsText reports whether sample looks like text. A known binary extension
// on path decides without looking at the bytes.
func IsText(path string, sample []byte) bool {
	if path != "" {
		if _, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]; ok {
			return false
		}
	}
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}
	if len(sample) == 0 || DetectEncoding(sample) != EncodingPlain {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	controls := 0
	for _, b := range sample {
		if isControlByte(b) {
			controls++
		}
	}
	if controls*100/len(sample) >= nonPrintableThresholdPercent {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isCommonTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

// isControlByte reports C0 controls and DEL other than tab, newline,
// carriage return and escape.
func isControlByte(b byte) bool {
	switch b {
	case '\t', '\n', '\r', 0x1B:
		return false
	}
	return b < 0x20 || b == 0x7F
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == '\t', b == '\n', b == '\r', b == 0x1B:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	default:
		return b >= 0x80
	}
}

// DetectEncoding inspects the byte order mark at the start of content.
func DetectEncoding(content []byte) Encoding {
	switch {
	case bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}):
		return EncodingUTF8BOM
	case bytes.HasPrefix(content, []byte{0xFF, 0xFE}):
		return EncodingUTF16LE
	case bytes.HasPrefix(content, []byte{0xFE, 0xFF}):
		return EncodingUTF16BE
	}
	return EncodingPlain
}

// ToUTF8 strips a UTF-8 byte order mark and transcodes UTF-16 content.
// Content without a mark is returned unchanged.
func ToUTF8(content []byte) ([]byte, Encoding, error) {
	enc := DetectEncoding(content)
	switch enc {
	case EncodingUTF8BOM:
		return content[3:], enc, nil
	case EncodingUTF16LE:
		out, err := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Bytes(content)
		return out, enc, err
	case EncodingUTF16BE:
		out, err := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().Bytes(content)
		return out, enc, err
	}
	return content, enc, nil
}

// ReadHead returns up to limit bytes from the beginning of path.
func ReadHead(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return io.ReadAll(io.LimitReader(f, limit))
}
