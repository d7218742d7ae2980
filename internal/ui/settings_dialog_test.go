package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nittu/baby-flashcards/internal/config"
	"github.com/nittu/baby-flashcards/internal/logger"
	"github.com/nittu/baby-flashcards/internal/model"
	"github.com/nittu/baby-flashcards/internal/storage"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.SettingsStore, *int) {
	t.Helper()
	test.NewApp()
	window := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(window.Close)

	store := config.OpenSettingsStore(storage.NewMemory(), logger.Discard())
	saved := 0
	sd := NewSettingsDialog(store, window, NewLocalization(), logger.Discard(), func() { saved++ })
	return sd, store, &saved
}

func TestSettingsDialog_LoadsCurrent(t *testing.T) {
	sd, _, _ := newTestSettingsDialog(t)
	sd.Show()

	assert.Equal(t, "1500", sd.delayEntry.Text)
	assert.Equal(t, "160", sd.fontSizeEntry.Text)
	assert.Equal(t, "#ffffff", sd.fontColorPicker.Selected())
	assert.Equal(t, "#000000", sd.backgroundPicker.Selected())
	assert.Equal(t, "System", sd.fontSelect.Selected)
}

func TestSettingsDialog_Save(t *testing.T) {
	sd, store, saved := newTestSettingsDialog(t)
	sd.loadSettings(store.Current())

	sd.delayEntry.SetText("2500")
	sd.fontSizeEntry.SetText("90")
	sd.fontColorPicker.pick("#ffff00")
	sd.backgroundPicker.pick("#800080")
	sd.fontSelect.SetSelected(string(model.FontGeorgia))

	sd.onSave(true)

	assert.Equal(t, 1, *saved)
	assert.Equal(t, model.Settings{
		DelayMs:         2500,
		FontSize:        90,
		FontColor:       "#ffff00",
		BackgroundColor: "#800080",
		FontFamily:      model.FontGeorgia,
	}, store.Current())
}

func TestSettingsDialog_Cancel(t *testing.T) {
	sd, store, saved := newTestSettingsDialog(t)
	sd.loadSettings(store.Current())
	sd.delayEntry.SetText("9999")

	sd.onSave(false)

	assert.Equal(t, 0, *saved)
	assert.Equal(t, model.DefaultSettings(), store.Current())
}

func TestSettingsDialog_InvalidInputKeepsSettings(t *testing.T) {
	sd, store, _ := newTestSettingsDialog(t)
	sd.loadSettings(store.Current())

	sd.fontSizeEntry.SetText("0")
	require.ErrorIs(t, sd.save(), model.ErrValidation)

	sd.fontSizeEntry.SetText("huge")
	require.ErrorIs(t, sd.save(), errInvalidNumber)

	assert.Equal(t, model.DefaultSettings(), store.Current())
}

func TestSettingsDialog_Reset(t *testing.T) {
	sd, store, _ := newTestSettingsDialog(t)
	custom := model.DefaultSettings()
	custom.FontSize = 42
	require.NoError(t, store.Save(custom))
	sd.loadSettings(store.Current())
	assert.Equal(t, "42", sd.fontSizeEntry.Text)

	sd.onReset()

	assert.Equal(t, model.DefaultSettings(), store.Current())
	assert.Equal(t, "160", sd.fontSizeEntry.Text)
}
