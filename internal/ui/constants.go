package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconClose    = "✕"
	IconEdit     = "✏️"
	IconDelete   = "🗑️"
	IconAdd      = "+"
	IconLanguage = "🌐"
)

// Text fragments
const (
	PositionFormat = "%d / %d"
	FooterText     = "Created with ❤️ by Jenu"
)

// ColorOption is a named colour offered by the swatch pickers
type ColorOption struct {
	Name  string
	Value string
}

// Palette returns the colours offered for slide text and background
func Palette() []ColorOption {
	return []ColorOption{
		{Name: "Black", Value: "#000000"},
		{Name: "White", Value: "#ffffff"},
		{Name: "Red", Value: "#ff0000"},
		{Name: "Green", Value: "#00ff00"},
		{Name: "Blue", Value: "#0000ff"},
		{Name: "Yellow", Value: "#ffff00"},
		{Name: "Orange", Value: "#ffa500"},
		{Name: "Purple", Value: "#800080"},
		{Name: "Pink", Value: "#ffc0cb"},
		{Name: "Gray", Value: "#808080"},
	}
}

// Layout sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 760

	DesktopWindowWidth  float32 = 800
	DesktopWindowHeight float32 = 600

	SwatchSize   float32 = 28
	SwatchStroke float32 = 3

	EditorDialogWidth  float32 = 460
	EditorDialogHeight float32 = 560
	SettingsDialogW    float32 = 460
	SettingsDialogH    float32 = 520

	ViewerStatusTextSize float32 = 14
)

// Tooltip behavior
const (
	ToastAutoHide = 2 * time.Second
)
