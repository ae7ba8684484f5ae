package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DogTheme is the default theme with a warmer primary color and a larger
// heading for the status messages
type DogTheme struct{}

// NewDogTheme creates a new theme
func NewDogTheme() fyne.Theme {
	return &DogTheme{}
}

// Color returns theme colors
func (t *DogTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 191, G: 112, B: 38, A: 255} // Amber brown
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *DogTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DogTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *DogTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return StatusTextSize
	case theme.SizeNameInnerPadding:
		return 10 // Roomier buttons
	}

	return theme.DefaultTheme().Size(name)
}
