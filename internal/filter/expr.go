// Package filter parses filter expressions and turns them into sets of
// matching line numbers.
//
// Expressions come in four textual forms:
//
//	/PATTERN/FLAGS                  select lines (flags: i, !)
//	!PATTERN  or  PATTERN           shorthands for /PATTERN/! and /PATTERN/
//	|PATTERN|ATTR,...[,FG on BG]    style matching lines
//	/PATTERN/REPLACEMENT/           rewrite displayed text
//
// Only the first form selects lines; the others are display filters.
package filter

import (
	"regexp"
	"strings"
)

var canonicalForm = regexp.MustCompile(`^/.*/[i!]*$`)

// Normalize rewrites the shorthand forms into /PATTERN/FLAGS. Canonical
// expressions, display-attribute expressions and the empty string are
// returned unchanged.
//
// A bare "!" becomes "/!/", a filter for a literal exclamation mark, not a
// negation of the empty pattern.
func Normalize(raw string) string {
	switch raw {
	case "":
		return raw
	case "/":
		return "///"
	case "!":
		return "/!/"
	}

	if _, ok := ParseAttr(raw); ok {
		return raw
	}
	if canonicalForm.MatchString(raw) {
		return raw
	}
	if raw[0] == '!' {
		return "/" + raw[1:] + "/!"
	}
	return "/" + raw + "/"
}

// Flags returns the characters after the last '/' of a canonical
// expression. The result is in reverse order; callers treat it as a set.
func Flags(canonical string) string {
	if len(canonical) < 3 {
		return ""
	}
	var b strings.Builder
	for i := len(canonical) - 1; i >= 2; i-- {
		c := canonical[i]
		if c == '/' {
			break
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Pattern returns the pattern of a canonical or display-attribute
// expression. For /.../ forms escapes are kept, so "/a\/b/" yields `a\/b`.
// A malformed expression yields "".
func Pattern(canonical string) string {
	if len(canonical) < 3 {
		return ""
	}

	if canonical[0] == '|' {
		pos := strings.LastIndexByte(canonical, '|')
		if pos == 0 {
			return ""
		}
		return canonical[1:pos]
	}

	if canonical[0] != '/' {
		return ""
	}

	var b strings.Builder
	for i := 1; i < len(canonical); i++ {
		c := canonical[i]
		switch c {
		case '\\':
			b.WriteByte(c)
			if i < len(canonical)-1 {
				i++
				b.WriteByte(canonical[i])
			}
		case '/':
			return b.String()
		default:
			b.WriteByte(c)
		}
	}
	return ""
}

// IsFilterRegex reports whether raw, once normalized, is a line selector:
// exactly two unescaped slashes followed only by i and ! flags.
func IsFilterRegex(raw string) bool {
	s := Normalize(raw)
	if len(s) < 3 {
		return false
	}

	slashes := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '/' {
			slashes++
			continue
		}
		if slashes >= 2 {
			if c == 'i' || c == '!' {
				continue
			}
			return false
		}
		if c == '\\' {
			if i == len(s)-1 {
				return false
			}
			i++
		}
	}
	return slashes == 2
}

// ParseSubstitution splits /PATTERN/REPLACEMENT/ into its halves. Escaped
// characters are carried into either half verbatim, backslash included.
func ParseSubstitution(expr string) (pattern, replacement string, err error) {
	if len(expr) < 4 {
		return "", "", &SyntaxError{Expr: expr, Rule: "expression has not enough characters"}
	}
	if expr[0] != '/' {
		return "", "", &SyntaxError{Expr: expr, Rule: "does not start with /"}
	}
	if expr[len(expr)-1] != '/' {
		return "", "", &SyntaxError{Expr: expr, Rule: "does not end with /"}
	}

	slashes := 0
	var pat, rep strings.Builder
	out := &pat
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if c == '/' {
			slashes++
			if slashes == 2 {
				out = &rep
			}
			continue
		}
		out.WriteByte(c)
		if c == '\\' {
			if i == len(expr)-1 {
				return "", "", &SyntaxError{Expr: expr, Rule: "dangling escape"}
			}
			i++
			out.WriteByte(expr[i])
		}
	}

	if slashes != 3 {
		return "", "", &SyntaxError{Expr: expr, Rule: "did not find 3 forward slashes"}
	}
	return pat.String(), rep.String(), nil
}

// Kind tells what an expression does.
type Kind int

const (
	KindSelect Kind = iota
	KindAttr
	KindSubstitute
)

func (k Kind) String() string {
	switch k {
	case KindSelect:
		return "select"
	case KindAttr:
		return "attr"
	case KindSubstitute:
		return "substitute"
	default:
		return "unknown"
	}
}

// Expression is a parsed filter expression.
type Expression struct {
	Raw             string
	Canonical       string
	Kind            Kind
	Pattern         string
	Replacement     string
	CaseInsensitive bool
	Negate          bool
	Attr            AttrStyle
}

// Parse normalizes raw and decodes it into an Expression.
func Parse(raw string) (Expression, error) {
	canonical := Normalize(raw)
	if canonical == "" {
		return Expression{}, &SyntaxError{Expr: raw, Rule: "empty expression"}
	}

	if style, ok := ParseAttr(canonical); ok {
		pattern := Pattern(canonical)
		if pattern == "" {
			return Expression{}, &SyntaxError{Expr: raw, Rule: "empty display filter pattern"}
		}
		return Expression{
			Raw:       raw,
			Canonical: canonical,
			Kind:      KindAttr,
			Pattern:   pattern,
			Attr:      style,
		}, nil
	}

	if flags, ok := selectorFlags(raw); ok {
		if err := validateFlags(flags); err != nil {
			return Expression{}, err
		}
	}

	if IsFilterRegex(canonical) {
		flags := Flags(canonical)
		pattern := Pattern(canonical)
		if pattern == "" {
			return Expression{}, &SyntaxError{Expr: raw, Rule: "empty pattern"}
		}
		return Expression{
			Raw:             raw,
			Canonical:       canonical,
			Kind:            KindSelect,
			Pattern:         pattern,
			CaseInsensitive: strings.ContainsRune(flags, 'i'),
			Negate:          strings.ContainsRune(flags, '!'),
		}, nil
	}

	pattern, replacement, err := ParseSubstitution(canonical)
	if err != nil {
		return Expression{}, err
	}
	return Expression{
		Raw:         raw,
		Canonical:   canonical,
		Kind:        KindSubstitute,
		Pattern:     pattern,
		Replacement: replacement,
	}, nil
}

// selectorFlags returns the text after the second slash of a /PAT/FLAGS
// expression, one with exactly two unescaped slashes and a non-empty tail.
func selectorFlags(raw string) (string, bool) {
	if len(raw) < 3 || raw[0] != '/' {
		return "", false
	}
	slashes, last := 0, 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case '/':
			slashes++
			last = i
		}
	}
	if slashes != 2 || last == len(raw)-1 {
		return "", false
	}
	return raw[last+1:], true
}

// Flags renders the selector flags back into their textual form.
func (e Expression) Flags() string {
	var b strings.Builder
	if e.CaseInsensitive {
		b.WriteByte('i')
	}
	if e.Negate {
		b.WriteByte('!')
	}
	return b.String()
}

func (e Expression) String() string {
	return e.Canonical
}
