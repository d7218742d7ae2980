package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// swatch is a tappable colour square
type swatch struct {
	widget.BaseWidget
	value string
	rect  *canvas.Rectangle
	onTap func(string)
}

func newSwatch(value string, onTap func(string)) *swatch {
	s := &swatch{
		value: value,
		rect:  canvas.NewRectangle(ParseColor(value, color.Transparent)),
		onTap: onTap,
	}
	s.rect.CornerRadius = SwatchSize / 2
	s.rect.StrokeColor = color.Gray{Y: 0xcc}
	s.rect.StrokeWidth = 1
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *swatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.rect)
}

// MinSize keeps swatches square
func (s *swatch) MinSize() fyne.Size {
	return fyne.NewSquareSize(SwatchSize)
}

// Tapped implements fyne.Tappable
func (s *swatch) Tapped(*fyne.PointEvent) {
	if s.onTap != nil {
		s.onTap(s.value)
	}
}

func (s *swatch) setSelected(selected bool) {
	if selected {
		s.rect.StrokeColor = color.Black
		s.rect.StrokeWidth = SwatchStroke
	} else {
		s.rect.StrokeColor = color.Gray{Y: 0xcc}
		s.rect.StrokeWidth = 1
	}
	s.rect.Refresh()
}

// SwatchPicker offers a fixed palette of colours, one of which is selected
type SwatchPicker struct {
	*fyne.Container
	OnChanged func(string)

	selected string
	swatches []*swatch
}

// NewSwatchPicker creates a picker over options
func NewSwatchPicker(options []ColorOption, onChanged func(string)) *SwatchPicker {
	p := &SwatchPicker{OnChanged: onChanged}

	objects := make([]fyne.CanvasObject, 0, len(options))
	for _, opt := range options {
		sw := newSwatch(opt.Value, p.pick)
		p.swatches = append(p.swatches, sw)
		objects = append(objects, sw)
	}
	p.Container = container.NewGridWrap(fyne.NewSquareSize(SwatchSize), objects...)
	return p
}

// Selected returns the selected colour value
func (p *SwatchPicker) Selected() string {
	return p.selected
}

// SetSelected marks value as selected without calling OnChanged. A value
// outside the palette stays selected but highlights no swatch.
func (p *SwatchPicker) SetSelected(value string) {
	p.selected = value
	for _, sw := range p.swatches {
		sw.setSelected(strings.EqualFold(sw.value, value))
	}
}

func (p *SwatchPicker) pick(value string) {
	p.SetSelected(value)
	if p.OnChanged != nil {
		p.OnChanged(value)
	}
}
