package filter

import (
	"regexp"
	"strings"
)

// Display is a compiled display filter: it either styles the lines that
// match its pattern or rewrites their displayed text. It never changes
// which lines are visible.
type Display struct {
	expr        Expression
	re          *regexp.Regexp
	replacement []byte
}

// NewDisplay compiles an attribute or substitution expression.
func NewDisplay(e Expression) (*Display, error) {
	if e.Kind == KindSelect {
		return nil, &SyntaxError{Expr: e.Raw, Rule: "not a display filter"}
	}
	re, err := regexp.Compile(e.Pattern)
	if err != nil {
		return nil, &SyntaxError{Expr: e.Raw, Rule: "invalid regular expression", Err: err}
	}
	d := &Display{expr: e, re: re}
	if e.Kind == KindSubstitute {
		d.replacement = []byte(strings.ReplaceAll(e.Replacement, `\/`, "/"))
	}
	return d, nil
}

func (d *Display) Expression() Expression {
	return d.expr
}

func (d *Display) String() string {
	return d.expr.Canonical
}

// Style reports the style an attribute filter assigns to content.
func (d *Display) Style(content []byte) (AttrStyle, bool) {
	if d.expr.Kind != KindAttr || !d.re.Match(content) {
		return AttrStyle{}, false
	}
	return d.expr.Attr, true
}

// Rewrite applies a substitution filter to content. $1-style group
// references in the replacement are expanded.
func (d *Display) Rewrite(content []byte) []byte {
	if d.expr.Kind != KindSubstitute {
		return content
	}
	return d.re.ReplaceAll(content, d.replacement)
}

// DisplaySet applies display filters in the order they were added.
type DisplaySet []*Display

// Apply rewrites content with every substitution filter and merges the
// styles of every matching attribute filter. Attributes accumulate; the
// last matching colour pair wins. Styles are matched against the original
// content.
func (ds DisplaySet) Apply(content []byte) ([]byte, AttrStyle, bool) {
	style := AttrStyle{Fg: ColorNone, Bg: ColorNone}
	styled := false
	out := content
	for _, d := range ds {
		switch d.expr.Kind {
		case KindAttr:
			s, ok := d.Style(content)
			if !ok {
				continue
			}
			styled = true
			style.Attrs |= s.Attrs
			if s.HasColors() {
				style.Fg, style.Bg = s.Fg, s.Bg
			}
		case KindSubstitute:
			out = d.Rewrite(out)
		}
	}
	return out, style, styled
}
