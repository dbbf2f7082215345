package filter

import (
	"errors"
	"testing"

	"github.com/kk-code-lab/fewer/internal/index"
	"github.com/kk-code-lab/fewer/internal/lineset"
)

func TestLineFilterPolarity(t *testing.T) {
	idx := index.New([]byte("ERROR: x\nok\nERROR: y\n"))

	positive, err := New(idx, "ERROR", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := positive.Evaluate(); !got.Equal(lineset.Set{1, 3}) {
		t.Fatalf("positive matches = %v, want [1 3]", got)
	}

	negative, err := New(idx, "ERROR", "!")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := negative.Evaluate(); !got.Equal(lineset.Set{2}) {
		t.Fatalf("negative matches = %v, want [2]", got)
	}
}

func TestLineFilterCaseFlag(t *testing.T) {
	idx := index.New([]byte("ABC\nxyz\n"))

	sensitive, err := New(idx, "abc", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := sensitive.Evaluate(); len(got) != 0 {
		t.Fatalf("case-sensitive filter matched %v", got)
	}

	insensitive, err := New(idx, "abc", "i")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := insensitive.Evaluate(); !got.Equal(lineset.Set{1}) {
		t.Fatalf("case-insensitive matches = %v, want [1]", got)
	}
}

func TestLineFilterMatchesTrimmedContent(t *testing.T) {
	idx := index.New([]byte("end\r\nmiddle end here\r\n"))
	f, err := New(idx, "end$", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := f.Evaluate(); !got.Equal(lineset.Set{1}) {
		t.Fatalf("matches = %v, want [1]", got)
	}
}

func TestLineFilterRejectsUnknownFlags(t *testing.T) {
	idx := index.New([]byte("a\n"))
	_, err := New(idx, "a", "ix")
	var flagErr *FlagError
	if !errors.As(err, &flagErr) {
		t.Fatalf("expected *FlagError, got %v", err)
	}
	if flagErr.Char != 'x' {
		t.Fatalf("FlagError.Char = %q, want 'x'", flagErr.Char)
	}
}

func TestLineFilterRejectsBadRegex(t *testing.T) {
	idx := index.New([]byte("a\n"))
	_, err := New(idx, "(", "")
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) || syntaxErr.Err == nil {
		t.Fatalf("expected *SyntaxError wrapping the regexp error, got %v", err)
	}
}

func TestLineFilterIntersect(t *testing.T) {
	idx := index.New([]byte("a\nb\na\n"))
	f, err := New(idx, "a", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := f.Intersect(lineset.Set{2, 3}); !got.Equal(lineset.Set{3}) {
		t.Fatalf("Intersect = %v, want [3]", got)
	}
	if got := f.Intersect(lineset.Set{}); len(got) != 0 {
		t.Fatalf("Intersect with empty set = %v, want empty", got)
	}
}

func TestChainIntersection(t *testing.T) {
	// "a" is on lines 1,3,5,7 and "b" on lines 3,5,9.
	idx := index.New([]byte("a\n\nab\n\nab\n\na\n\nb\n"))
	chain := NewChain(idx)

	if got := chain.Visible(); !got.Equal(lineset.Universe(9)) {
		t.Fatalf("empty chain should show every line, got %v", got)
	}

	fa, err := chain.AddString("a")
	if err != nil {
		t.Fatalf("AddString(a): %v", err)
	}
	if got := fa.Evaluate(); !got.Equal(lineset.Set{1, 3, 5, 7}) {
		t.Fatalf("filter a = %v", got)
	}
	fb, err := chain.AddString("/b/")
	if err != nil {
		t.Fatalf("AddString(b): %v", err)
	}
	if got := fb.Evaluate(); !got.Equal(lineset.Set{3, 5, 9}) {
		t.Fatalf("filter b = %v", got)
	}

	if got := chain.Visible(); !got.Equal(lineset.Set{3, 5}) {
		t.Fatalf("Visible = %v, want [3 5]", got)
	}

	if !chain.Pop() || chain.Len() != 1 {
		t.Fatalf("Pop should drop the last filter")
	}
	if got := chain.Visible(); !got.Equal(lineset.Set{1, 3, 5, 7}) {
		t.Fatalf("Visible after Pop = %v", got)
	}
	chain.Clear()
	if chain.Pop() {
		t.Fatalf("Pop on empty chain should report false")
	}
}

func TestChainRejectsDisplayFilters(t *testing.T) {
	idx := index.New([]byte("a\n"))
	chain := NewChain(idx)
	if _, err := chain.AddString("|a|bold"); err == nil {
		t.Fatalf("display filter should not be accepted as a selector")
	}
	if _, err := chain.AddString("/a/b/"); err == nil {
		t.Fatalf("substitution should not be accepted as a selector")
	}
	if chain.Len() != 0 {
		t.Fatalf("rejected filters must leave the chain unchanged")
	}
}
