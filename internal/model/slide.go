package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Defaults for a slide created in the playlist editor
const (
	DefaultSlideFontSize        = 120
	DefaultSlideFontColor       = "#ffffff"
	DefaultSlideBackgroundColor = "#000000"
	DefaultSlideFontFamily      = FontSystem
)

// Slide is one unit of displayed content. Built-in card sets store slides as
// bare strings, so a slide may carry text only and leave its style unset.
type Slide struct {
	Text string `json:"text"`
	Style
}

// NewSlide creates a slide with the editor's default style
func NewSlide(text string) Slide {
	return Slide{
		Text: text,
		Style: Style{
			FontSize:        DefaultSlideFontSize,
			FontColor:       DefaultSlideFontColor,
			BackgroundColor: DefaultSlideBackgroundColor,
			FontFamily:      DefaultSlideFontFamily,
		},
	}
}

// TextSlide creates a slide with text only
func TextSlide(text string) Slide {
	return Slide{Text: text}
}

// UnmarshalJSON accepts either a bare string or a slide record
func (s *Slide) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*s = Slide{Text: text}
		return nil
	}

	// Alias drops the method set so decoding does not recurse
	type slideRecord Slide
	var rec slideRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("slide must be a string or an object: %w", err)
	}
	*s = Slide(rec)
	return nil
}

// Validate checks the slide has text and well-formed style fields
func (s Slide) Validate() error {
	if strings.TrimSpace(s.Text) == "" {
		return fmt.Errorf("%w: slide text is required", ErrValidation)
	}
	return validateStruct(s)
}
