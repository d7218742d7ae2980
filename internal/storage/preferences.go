package storage

import (
	"fyne.io/fyne/v2"
)

// Preferences stores values in the Fyne application preferences, which map
// to the platform's native key-value store on mobile.
type Preferences struct {
	prefs fyne.Preferences
}

// NewPreferences creates a store backed by the app's preferences
func NewPreferences(app fyne.App) *Preferences {
	return &Preferences{prefs: app.Preferences()}
}

// Get returns the stored value; an empty value is reported as absent
func (p *Preferences) Get(key string) (string, bool, error) {
	value := p.prefs.String(key)
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}

// Set replaces the stored value
func (p *Preferences) Set(key, value string) error {
	p.prefs.SetString(key, value)
	return nil
}
