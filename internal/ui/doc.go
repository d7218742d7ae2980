// Package ui contains the Fyne-based user interface for the application.
// It wires user interactions to the playlist repository, the settings store
// and the playback engine, and renders the home screen, the full-screen
// viewer, the playlist editor and the settings dialog. All UI strings are
// localized via Localization.
package ui
