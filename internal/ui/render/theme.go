package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rnav/internal/config"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	DirectoryFg  tcell.Color
	FileFg       tcell.Color
	ExecutableFg tcell.Color
	SelectionBg  tcell.Color
	SelectionFg  tcell.Color
	MatchFg      tcell.Color
	StatusFg     tcell.Color
	NoticeFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		DirectoryFg:  tcell.Color33,
		FileFg:       tcell.ColorDefault,
		ExecutableFg: tcell.ColorGreen,
		SelectionBg:  tcell.Color33,
		SelectionFg:  tcell.ColorWhite,
		MatchFg:      tcell.ColorYellow,
		StatusFg:     tcell.ColorDefault,
		NoticeFg:     tcell.ColorRed,
	}
}

// ThemeFromConfig layers the configured color names over the defaults.
func ThemeFromConfig(cfg config.ThemeConfig) (ColorTheme, error) {
	theme := GetColorTheme()
	overrides := []struct {
		name string
		dst  *tcell.Color
	}{
		{cfg.Directory, &theme.DirectoryFg},
		{cfg.File, &theme.FileFg},
		{cfg.Executable, &theme.ExecutableFg},
		{cfg.SelectionBg, &theme.SelectionBg},
		{cfg.SelectionFg, &theme.SelectionFg},
		{cfg.Match, &theme.MatchFg},
		{cfg.Status, &theme.StatusFg},
		{cfg.Notice, &theme.NoticeFg},
	}
	for _, o := range overrides {
		if o.name == "" {
			continue
		}
		color, err := config.ParseColor(o.name)
		if err != nil {
			return theme, fmt.Errorf("theme: %w", err)
		}
		*o.dst = color
	}
	return theme, nil
}
