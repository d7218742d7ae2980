package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/nittu/baby-flashcards/internal/config"
	"github.com/nittu/baby-flashcards/internal/model"
)

// SettingsDialog represents the playback defaults dialog
type SettingsDialog struct {
	store        *config.SettingsStore
	window       fyne.Window
	localization *Localization
	logger       *slog.Logger
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	delayEntry       *widget.Entry
	fontSizeEntry    *widget.Entry
	fontColorPicker  *SwatchPicker
	backgroundPicker *SwatchPicker
	fontSelect       *widget.Select
	resetBtn         *widget.Button
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(store *config.SettingsStore, window fyne.Window, localization *Localization, logger *slog.Logger, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		store:        store,
		window:       window,
		localization: localization,
		logger:       logger,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadSettings(sd.store.Current())
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.delayEntry = widget.NewEntry()
	sd.delayEntry.SetPlaceHolder(strconv.Itoa(model.DefaultDelayMs))

	sd.fontSizeEntry = widget.NewEntry()
	sd.fontSizeEntry.SetPlaceHolder(strconv.Itoa(model.DefaultFontSize))

	sd.fontColorPicker = NewSwatchPicker(Palette(), nil)
	sd.backgroundPicker = NewSwatchPicker(Palette(), nil)
	sd.fontSelect = widget.NewSelect(fontFamilyOptions(), nil)

	sd.resetBtn = widget.NewButton(l.GetText(KeyReset), sd.onReset)

	form := container.NewVBox(
		widget.NewLabelWithStyle(l.GetText(KeyPlaybackDefaults), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyDelayMs)),
		sd.delayEntry,

		widget.NewLabel(l.GetText(KeyFontSize)),
		sd.fontSizeEntry,

		widget.NewLabel(l.GetText(KeyFontColor)),
		sd.fontColorPicker.Container,

		widget.NewLabel(l.GetText(KeyBackgroundColor)),
		sd.backgroundPicker.Container,

		widget.NewLabel(l.GetText(KeyFontFamily)),
		sd.fontSelect,

		widget.NewSeparator(),
		sd.resetBtn,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadSettings copies settings into the form
func (sd *SettingsDialog) loadSettings(settings model.Settings) {
	sd.delayEntry.SetText(strconv.Itoa(settings.DelayMs))
	sd.fontSizeEntry.SetText(strconv.Itoa(settings.FontSize))
	sd.fontColorPicker.SetSelected(settings.FontColor)
	sd.backgroundPicker.SetSelected(settings.BackgroundColor)
	sd.fontSelect.SetSelected(string(settings.FontFamily))
}

// collect reads the form into a settings record
func (sd *SettingsDialog) collect() (model.Settings, error) {
	delay, err := parseNumber(sd.delayEntry.Text)
	if err != nil {
		return model.Settings{}, err
	}
	fontSize, err := parseNumber(sd.fontSizeEntry.Text)
	if err != nil {
		return model.Settings{}, err
	}

	return model.Settings{
		DelayMs:         delay,
		FontSize:        fontSize,
		FontColor:       sd.fontColorPicker.Selected(),
		BackgroundColor: sd.backgroundPicker.Selected(),
		FontFamily:      model.FontFamily(sd.fontSelect.Selected),
	}, nil
}

// save validates and persists the form
func (sd *SettingsDialog) save() error {
	settings, err := sd.collect()
	if err != nil {
		return err
	}
	return sd.store.Save(settings)
}

// onSave handles the confirm button
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.save(); err != nil {
		showError(sd.window, sd.localization, sd.logger, err, KeyInvalidValue)
		return
	}

	showToast(sd.window, sd.localization.GetText(KeySettingsSaved))
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// onReset restores and persists the built-in defaults
func (sd *SettingsDialog) onReset() {
	if err := sd.store.Reset(); err != nil {
		showError(sd.window, sd.localization, sd.logger, err, KeyInvalidValue)
		return
	}
	sd.loadSettings(sd.store.Current())
}

// parseNumber parses a non-negative whole number; blank means zero
func parseNumber(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidNumber, text)
	}
	return n, nil
}

func fontFamilyOptions() []string {
	families := model.FontFamilies()
	options := make([]string, 0, len(families))
	for _, f := range families {
		options = append(options, string(f))
	}
	return options
}
