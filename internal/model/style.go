package model

// FontFamily is one of the font faces offered for slides
type FontFamily string

const (
	FontSystem        FontFamily = "System"
	FontCourier       FontFamily = "Courier"
	FontGeorgia       FontFamily = "Georgia"
	FontTimesNewRoman FontFamily = "Times New Roman"
	FontVerdana       FontFamily = "Verdana"
)

// FontFamilies returns the supported font families in display order
func FontFamilies() []FontFamily {
	return []FontFamily{FontSystem, FontCourier, FontGeorgia, FontTimesNewRoman, FontVerdana}
}

// IsValid reports whether f is one of the supported font families
func (f FontFamily) IsValid() bool {
	for _, known := range FontFamilies() {
		if f == known {
			return true
		}
	}
	return false
}

// Style holds the optional appearance fields of a slide. A zero field is unset
// and is resolved from a fallback when the slide is displayed.
type Style struct {
	FontSize        int        `json:"fontSize,omitempty" validate:"gte=0"`
	FontColor       string     `json:"fontColor,omitempty" validate:"omitempty,hexcolor"`
	BackgroundColor string     `json:"backgroundColor,omitempty" validate:"omitempty,hexcolor"`
	FontFamily      FontFamily `json:"fontFamily,omitempty" validate:"omitempty,fontfamily"`
}

// Merge returns s with every unset field taken from fallback
func (s Style) Merge(fallback Style) Style {
	if s.FontSize <= 0 {
		s.FontSize = fallback.FontSize
	}
	if s.FontColor == "" {
		s.FontColor = fallback.FontColor
	}
	if s.BackgroundColor == "" {
		s.BackgroundColor = fallback.BackgroundColor
	}
	if s.FontFamily == "" {
		s.FontFamily = fallback.FontFamily
	}
	return s
}

// IsZero reports whether no field is set
func (s Style) IsZero() bool {
	return s == Style{}
}
