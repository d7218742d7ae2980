package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// FlashcardTheme is the app theme: high-contrast buttons and roomy touch targets
type FlashcardTheme struct{}

// NewFlashcardTheme creates the app theme
func NewFlashcardTheme() fyne.Theme {
	return &FlashcardTheme{}
}

// Color returns theme colors
func (t *FlashcardTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 0, B: 0, A: 255} // Black buttons like the cards
	case theme.ColorNameButton:
		if variant == theme.VariantDark {
			return color.RGBA{R: 48, G: 48, B: 48, A: 255}
		}
		return color.RGBA{R: 230, G: 230, B: 230, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *FlashcardTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *FlashcardTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *FlashcardTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6 // Up from default 4
	case theme.SizeNameInnerPadding:
		return 12 // Up from default 8
	case theme.SizeNameText:
		return 16
	case theme.SizeNameHeadingText:
		return 24
	case theme.SizeNameInputRadius:
		return 10 // Rounded buttons
	case theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
