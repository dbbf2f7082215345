package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fewer/internal/config"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Background   tcell.Color
	Foreground   tcell.Color
	StatusBg     tcell.Color
	StatusFg     tcell.Color
	ErrorBg      tcell.Color
	ErrorFg      tcell.Color
	LineNumberFg tcell.Color
	FillerFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:   tcell.ColorDefault,
		Foreground:   tcell.ColorDefault,
		StatusBg:     tcell.ColorSilver,
		StatusFg:     tcell.ColorBlack,
		ErrorBg:      tcell.ColorMaroon,
		ErrorFg:      tcell.ColorWhite,
		LineNumberFg: tcell.ColorOlive,
		FillerFg:     tcell.Color33,
	}
}

// ThemeFromConfig overlays the configured colors on the defaults. Names
// and #rrggbb values are accepted; anything tcell does not know keeps the
// default.
func ThemeFromConfig(t config.Theme) ColorTheme {
	theme := GetColorTheme()
	setColor(&theme.StatusFg, t.StatusForeground)
	setColor(&theme.StatusBg, t.StatusBackground)
	setColor(&theme.LineNumberFg, t.LineNumberForeground)
	return theme
}

func setColor(dst *tcell.Color, name string) {
	if name == "" {
		return
	}
	if c := tcell.GetColor(name); c != tcell.ColorDefault {
		*dst = c
	}
}
