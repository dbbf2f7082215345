package filter

import (
	"regexp"
	"strings"
)

// Attr is a bit set of text attributes.
type Attr uint16

const AttrNormal Attr = 0

const (
	AttrStandout Attr = 1 << iota
	AttrUnderline
	AttrReverse
	AttrBlink
	AttrDim
	AttrBold
	AttrItalic
)

// Color is one of the eight basic terminal colours, or ColorNone.
type Color int

const (
	ColorNone Color = iota - 1
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var attrNames = map[string]Attr{
	"normal":    AttrNormal,
	"standout":  AttrStandout,
	"underline": AttrUnderline,
	"reverse":   AttrReverse,
	"blink":     AttrBlink,
	"dim":       AttrDim,
	"bold":      AttrBold,
	"italic":    AttrItalic,
}

var colorNames = map[string]Color{
	"black":   ColorBlack,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
}

const (
	attrAlt  = `(?:normal|standout|underline|reverse|blink|dim|bold|italic)`
	colorAlt = `(?:black|red|green|yellow|blue|magenta|cyan|white)`
)

var attrFilterForm = regexp.MustCompile(`^\|.*\|(` + attrAlt + `(?:,` + attrAlt + `)*)(?:,(` + colorAlt + `) on (` + colorAlt + `))?$`)

// AttrStyle is the styling requested by a display-attribute filter. Fg and
// Bg are either both ColorNone or both set.
type AttrStyle struct {
	Attrs Attr
	Fg    Color
	Bg    Color
}

// HasColors reports whether the style sets a colour pair.
func (s AttrStyle) HasColors() bool {
	return s.Fg != ColorNone && s.Bg != ColorNone
}

// ParseAttr recognizes |PATTERN|ATTR(,ATTR)*(,FG on BG)? and returns the
// requested style.
func ParseAttr(str string) (AttrStyle, bool) {
	m := attrFilterForm.FindStringSubmatch(str)
	if m == nil {
		return AttrStyle{}, false
	}

	style := AttrStyle{Fg: ColorNone, Bg: ColorNone}
	for _, name := range strings.Split(m[1], ",") {
		if a, ok := attrNames[name]; ok {
			style.Attrs |= a
		}
	}

	fg, fgOK := colorNames[m[2]]
	bg, bgOK := colorNames[m[3]]
	if fgOK && bgOK {
		style.Fg = fg
		style.Bg = bg
	}
	return style, true
}
