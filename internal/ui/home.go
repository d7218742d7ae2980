package ui

import (
	"fmt"
	"log/slog"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/nittu/baby-flashcards/internal/config"
	"github.com/nittu/baby-flashcards/internal/model"
	"github.com/nittu/baby-flashcards/internal/playback"
	"github.com/nittu/baby-flashcards/internal/playlist"
)

// PreferenceLanguage stores the chosen UI language in the app preferences
const PreferenceLanguage = "language"

// HomeUI represents the main UI structure and owns screen navigation
type HomeUI struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.SettingsStore
	playlists    playlist.Repository
	localization *Localization
	logger       *slog.Logger

	titleLabel  *widget.Label
	customBox   *fyne.Container
	createBtn   *widget.Button
	settingsBtn *widget.Button
	home        fyne.CanvasObject

	settingsDialog *SettingsDialog
}

// NewHomeUI creates and initializes the main UI
func NewHomeUI(app fyne.App, window fyne.Window, settings *config.SettingsStore, playlists playlist.Repository, logger *slog.Logger) *HomeUI {
	localization := NewLocalization()
	localization.SetLanguage(app.Preferences().StringWithFallback(PreferenceLanguage, "system"))

	ui := &HomeUI{
		app:          app,
		window:       window,
		settings:     settings,
		playlists:    playlists,
		localization: localization,
		logger:       logger.With("component", "home"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.logger.Info("UI setup completed", "language", localization.GetCurrentLanguage())
	return ui
}

// setupUI creates and arranges the home screen
func (ui *HomeUI) setupUI() {
	ui.createMenu()

	l := ui.localization

	ui.titleLabel = widget.NewLabelWithStyle(l.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	builtIns := container.NewVBox()
	for _, b := range playback.BuiltIns() {
		category := b.Category // Capture for closure
		btn := widget.NewButton(b.Title, func() {
			ui.openViewer(playback.BuiltIn(category))
		})
		btn.Importance = widget.HighImportance
		builtIns.Add(btn)
	}

	ui.customBox = container.NewVBox()

	ui.createBtn = widget.NewButton(l.GetText(KeyCreatePlaylist), ui.onCreatePlaylist)
	ui.createBtn.Importance = widget.HighImportance

	ui.settingsBtn = widget.NewButton(IconSettings+" "+l.GetText(KeySettings), ui.onShowSettings)

	footer := widget.NewLabelWithStyle(FooterText, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	list := container.NewVBox(
		builtIns,
		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyCustom)),
		ui.customBox,
		ui.createBtn,
		ui.settingsBtn,
	)

	ui.home = container.NewPadded(container.NewBorder(ui.titleLabel, footer, nil, nil, container.NewVScroll(list)))
	ui.refreshPlaylists()
}

// createMenu creates the application menu
func (ui *HomeUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *HomeUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.app.Preferences().SetString(PreferenceLanguage, langCode)

	// Rebuild screens with the new texts
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.settingsDialog = nil
	ui.setupUI()
	ui.ShowHome()
}

// ShowHome shows the home screen with a fresh playlist list
func (ui *HomeUI) ShowHome() {
	ui.refreshPlaylists()
	ui.window.SetContent(ui.home)
}

// refreshPlaylists re-reads the repository. Row indices are bound here and
// become stale after any mutation, so every mutation ends with a refresh.
func (ui *HomeUI) refreshPlaylists() {
	list := ui.playlists.ListAll()

	ui.customBox.RemoveAll()
	if len(list) == 0 {
		ui.customBox.Add(widget.NewLabel(ui.localization.GetText(KeyNoCustomPlaylists)))
	}
	for i, p := range list {
		ui.customBox.Add(ui.createPlaylistRow(i, p))
	}

	if len(list) >= model.MaxPlaylists {
		ui.createBtn.Disable()
	} else {
		ui.createBtn.Enable()
	}
}

func (ui *HomeUI) createPlaylistRow(index int, p model.Playlist) fyne.CanvasObject {
	playBtn := widget.NewButton(p.Name, func() {
		ui.openViewer(playback.Custom(p))
	})
	playBtn.Importance = widget.HighImportance

	editBtn := widget.NewButton(IconEdit, func() {
		ui.onEditPlaylist(index)
	})
	deleteBtn := widget.NewButton(IconDelete, func() {
		ui.onDeletePlaylist(index, p.Name)
	})

	return container.NewBorder(nil, nil, nil, container.NewHBox(editBtn, deleteBtn), playBtn)
}

// openViewer starts a playback session over the whole window
func (ui *HomeUI) openViewer(src playback.Source) *Viewer {
	engine := playback.NewEngine(src, playback.Options{
		Settings: ui.settings.Current(),
		Logger:   ui.logger,
	})

	viewer := NewViewer(ui.window, engine, ui.localization, ui.logger, ui.ShowHome)
	ui.window.SetContent(viewer.Content())
	viewer.Start()
	return viewer
}

func (ui *HomeUI) onCreatePlaylist() {
	if ui.playlists.Count() >= model.MaxPlaylists {
		showToast(ui.window, ui.localization.GetText(KeyMaxPlaylists))
		ui.refreshPlaylists()
		return
	}
	ui.openEditor(NewPlaylistIndex, ui.playlists.NewDraft())
}

func (ui *HomeUI) onEditPlaylist(index int) {
	p, err := ui.playlists.Get(index)
	if err != nil {
		showError(ui.window, ui.localization, ui.logger, err, KeyMaxPlaylists)
		ui.refreshPlaylists()
		return
	}
	ui.openEditor(index, p)
}

func (ui *HomeUI) openEditor(index int, draft model.Playlist) *PlaylistEditor {
	editor := NewPlaylistEditor(ui.window, ui.playlists, ui.localization, ui.logger, index, draft, ui.ShowHome)
	ui.window.SetContent(editor.Content())
	return editor
}

func (ui *HomeUI) onDeletePlaylist(index int, name string) {
	message := fmt.Sprintf(ui.localization.GetText(KeyConfirmDelete), name)
	dialog.ShowConfirm(ui.localization.GetText(KeyDeletePlaylist), message, func(confirmed bool) {
		if confirmed {
			ui.deletePlaylist(index)
		}
	}, ui.window)
}

func (ui *HomeUI) deletePlaylist(index int) {
	if err := ui.playlists.Delete(index); err != nil {
		showError(ui.window, ui.localization, ui.logger, err, KeyMaxPlaylists)
	}
	ui.refreshPlaylists()
}

// onShowSettings shows the settings dialog
func (ui *HomeUI) onShowSettings() {
	if ui.settingsDialog == nil {
		ui.settingsDialog = NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.logger, nil)
	}
	ui.settingsDialog.Show()
}
