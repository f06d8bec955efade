package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/yt-insights/internal/model"
)

// DashboardTheme renders the mode chosen in the appearance store, whatever
// variant the OS reports, with compact sizing.
type DashboardTheme struct {
	mode model.ThemeMode
}

// NewDashboardTheme creates a theme fixed to mode
func NewDashboardTheme(mode model.ThemeMode) *DashboardTheme {
	if !mode.IsValid() {
		mode = model.DefaultThemeMode
	}
	return &DashboardTheme{mode: mode}
}

// Mode returns the mode the theme renders
func (t *DashboardTheme) Mode() model.ThemeMode {
	return t.mode
}

// Variant returns the Fyne variant matching the mode
func (t *DashboardTheme) Variant() fyne.ThemeVariant {
	if t.mode.IsDark() {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color returns theme colors. The variant argument is ignored in favor of the
// store's mode.
func (t *DashboardTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	variant := t.Variant()

	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 204, G: 0, B: 0, A: 255} // YouTube red
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 78, B: 69, A: 255}
		}
		return color.RGBA{R: 204, G: 0, B: 0, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 15, G: 15, B: 15, A: 255}
		}
		return color.RGBA{R: 249, G: 249, B: 249, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 241, G: 241, B: 241, A: 255}
		}
		return color.RGBA{R: 15, G: 15, B: 15, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *DashboardTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DashboardTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *DashboardTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
