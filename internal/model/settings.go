package model

import "strings"

// Built-in playback defaults used on first run and for malformed records
const (
	DefaultDelayMs         = 1500
	DefaultFontSize        = 160
	DefaultFontColor       = "#ffffff"
	DefaultBackgroundColor = "#000000"
	DefaultFontFamily      = FontSystem
)

// Settings is the process-wide default appearance applied when a slide or
// playlist leaves a field unset.
type Settings struct {
	DelayMs         int        `json:"delay" validate:"gte=0"`
	FontSize        int        `json:"fontSize" validate:"gt=0"`
	FontColor       string     `json:"fontColor" validate:"required,hexcolor"`
	BackgroundColor string     `json:"backgroundColor" validate:"required,hexcolor"`
	FontFamily      FontFamily `json:"fontFamily" validate:"required,fontfamily"`
}

// DefaultSettings returns the built-in settings record
func DefaultSettings() Settings {
	return Settings{
		DelayMs:         DefaultDelayMs,
		FontSize:        DefaultFontSize,
		FontColor:       DefaultFontColor,
		BackgroundColor: DefaultBackgroundColor,
		FontFamily:      DefaultFontFamily,
	}
}

// Style returns the appearance part of the settings
func (s Settings) Style() Style {
	return Style{
		FontSize:        s.FontSize,
		FontColor:       s.FontColor,
		BackgroundColor: s.BackgroundColor,
		FontFamily:      s.FontFamily,
	}
}

// Normalize replaces unusable fields with the built-in defaults so that
// records written by older versions keep working.
func (s Settings) Normalize() Settings {
	defaults := DefaultSettings()
	if s.DelayMs < 0 {
		s.DelayMs = defaults.DelayMs
	}
	if s.FontSize <= 0 {
		s.FontSize = defaults.FontSize
	}
	if !isHexColor(s.FontColor) {
		s.FontColor = defaults.FontColor
	}
	if !isHexColor(s.BackgroundColor) {
		s.BackgroundColor = defaults.BackgroundColor
	}
	if !s.FontFamily.IsValid() {
		s.FontFamily = defaults.FontFamily
	}
	return s
}

// Validate checks the record is complete and well-formed
func (s Settings) Validate() error {
	return validateStruct(s)
}

func isHexColor(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	return validate.Var(value, "hexcolor") == nil
}
