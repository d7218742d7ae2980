package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"

	"github.com/nittu/baby-flashcards/internal/model"
)

func rgb8(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestParseColor(t *testing.T) {
	fallback := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	tests := []struct {
		name  string
		input string
		r     uint8
		g     uint8
		b     uint8
	}{
		{name: "six digits", input: "#ffa500", r: 0xff, g: 0xa5, b: 0x00},
		{name: "three digits", input: "#f00", r: 0xff, g: 0x00, b: 0x00},
		{name: "upper case", input: "#800080", r: 0x80, g: 0x00, b: 0x80},
		{name: "empty", input: "", r: 1, g: 2, b: 3},
		{name: "named colour", input: "red", r: 1, g: 2, b: 3},
		{name: "missing hash", input: "ff0000", r: 1, g: 2, b: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := rgb8(ParseColor(tt.input, fallback))
			assert.Equal(t, tt.r, r)
			assert.Equal(t, tt.g, g)
			assert.Equal(t, tt.b, b)
		})
	}
}

func TestContrastColor(t *testing.T) {
	assert.Equal(t, color.Black, ContrastColor(color.White))
	assert.Equal(t, color.Black, ContrastColor(ParseColor("#ffff00", nil)))
	assert.Equal(t, color.White, ContrastColor(color.Black))
	assert.Equal(t, color.White, ContrastColor(ParseColor("#0000ff", nil)))
	assert.Equal(t, color.White, ContrastColor(color.Transparent))
}

func TestTextStyleFor(t *testing.T) {
	assert.Equal(t, fyne.TextStyle{Monospace: true}, TextStyleFor(model.FontCourier))
	assert.Equal(t, fyne.TextStyle{}, TextStyleFor(model.FontSystem))
	assert.Equal(t, fyne.TextStyle{}, TextStyleFor(""))
	assert.NotEqual(t, TextStyleFor(model.FontSystem), TextStyleFor(model.FontGeorgia))
}
