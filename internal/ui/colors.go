package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/nittu/baby-flashcards/internal/model"
)

// ParseColor converts a #rgb or #rrggbb string to a colour, returning
// fallback when the string is not a valid hex colour.
func ParseColor(hex string, fallback color.Color) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c.Clamped()
}

// ContrastColor returns black or white, whichever reads better on background
func ContrastColor(background color.Color) color.Color {
	c, ok := colorful.MakeColor(background)
	if !ok {
		return color.White
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return color.Black
	}
	return color.White
}

// TextStyleFor maps a font family onto the faces the theme can render.
// Courier uses the monospace face; the serif families use italics so they
// stay distinguishable from System.
func TextStyleFor(family model.FontFamily) fyne.TextStyle {
	switch family {
	case model.FontCourier:
		return fyne.TextStyle{Monospace: true}
	case model.FontGeorgia, model.FontTimesNewRoman:
		return fyne.TextStyle{Italic: true}
	case model.FontVerdana:
		return fyne.TextStyle{Bold: true}
	default:
		return fyne.TextStyle{}
	}
}
