package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kk-code-lab/fewer/internal/index"
	"github.com/kk-code-lab/fewer/internal/lineset"
)

// LineFilter selects the lines of an index that match (or, when negated,
// do not match) a regular expression.
type LineFilter struct {
	idx       *index.Index
	pattern   string
	flags     string
	re        *regexp.Regexp
	negate    bool
	matches   lineset.Set
	evaluated bool
}

// New compiles pattern with flags ("i" case-insensitive, "!" negate).
func New(idx *index.Index, pattern, flags string) (*LineFilter, error) {
	if idx == nil {
		return nil, fmt.Errorf("filter %q: no line index", pattern)
	}
	if err := validateFlags(flags); err != nil {
		return nil, err
	}

	expr := pattern
	if strings.ContainsRune(flags, 'i') {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &SyntaxError{Expr: pattern, Rule: "invalid regular expression", Err: err}
	}

	return &LineFilter{
		idx:     idx,
		pattern: pattern,
		flags:   flags,
		re:      re,
		negate:  strings.ContainsRune(flags, '!'),
	}, nil
}

// FromExpression builds a filter from a parsed selector expression.
func FromExpression(idx *index.Index, e Expression) (*LineFilter, error) {
	if e.Kind != KindSelect {
		return nil, &SyntaxError{Expr: e.Raw, Rule: "not a line selector"}
	}
	return New(idx, e.Pattern, e.Flags())
}

func (f *LineFilter) Pattern() string {
	return f.pattern
}

// Negated reports whether the filter keeps non-matching lines.
func (f *LineFilter) Negated() bool {
	return f.negate
}

func (f *LineFilter) String() string {
	return "/" + f.pattern + "/" + f.flags
}

// Keep reports whether a line with the given content passes the filter.
func (f *LineFilter) Keep(content []byte) bool {
	return f.re.Match(content) != f.negate
}

// Evaluate scans the whole index and returns the numbers of the lines that
// pass. The result is computed once and reused.
func (f *LineFilter) Evaluate() lineset.Set {
	if f.evaluated {
		return f.matches
	}
	matches := lineset.Set{}
	f.idx.Each(func(l index.Line, content []byte) {
		if f.Keep(content) {
			matches = append(matches, l.Number)
		}
	})
	f.matches = matches
	f.evaluated = true
	return matches
}

// Intersect returns the lines that pass the filter and are members of s.
func (f *LineFilter) Intersect(s lineset.Set) lineset.Set {
	return f.Evaluate().Intersect(s)
}
