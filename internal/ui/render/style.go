package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fewer/internal/filter"
)

var attrMasks = []struct {
	attr filter.Attr
	mask tcell.AttrMask
}{
	{filter.AttrStandout, tcell.AttrBold | tcell.AttrReverse},
	{filter.AttrUnderline, tcell.AttrUnderline},
	{filter.AttrReverse, tcell.AttrReverse},
	{filter.AttrBlink, tcell.AttrBlink},
	{filter.AttrDim, tcell.AttrDim},
	{filter.AttrBold, tcell.AttrBold},
	{filter.AttrItalic, tcell.AttrItalic},
}

// applyAttrStyle layers a display-filter style over base.
func applyAttrStyle(base tcell.Style, s filter.AttrStyle) tcell.Style {
	var mask tcell.AttrMask
	for _, m := range attrMasks {
		if s.Attrs&m.attr != 0 {
			mask |= m.mask
		}
	}
	style := base
	if mask != 0 {
		_, _, attrs := base.Decompose()
		style = style.Attributes(attrs | mask)
	}
	if s.HasColors() {
		style = style.Foreground(tcell.PaletteColor(int(s.Fg))).Background(tcell.PaletteColor(int(s.Bg)))
	}
	return style
}
