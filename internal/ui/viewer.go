package ui

import (
	"fmt"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/nittu/baby-flashcards/internal/playback"
)

// Viewer is the full-screen flashcard view driving one playback session
type Viewer struct {
	window       fyne.Window
	player       playback.Player
	localization *Localization
	logger       *slog.Logger
	onClose      func()

	background *canvas.Rectangle
	text       *canvas.Text
	status     *canvas.Text
	closeBtn   *widget.Button
	surface    *GestureSurface
	content    fyne.CanvasObject

	// UI goroutine only
	lastVersion uint64
	closed      bool
}

// NewViewer creates a viewer for player. onClose runs once on the UI
// goroutine when the session exits.
func NewViewer(window fyne.Window, player playback.Player, localization *Localization, logger *slog.Logger, onClose func()) *Viewer {
	v := &Viewer{
		window:       window,
		player:       player,
		localization: localization,
		logger:       logger.With("component", "viewer"),
		onClose:      onClose,
	}
	v.createUI()
	return v
}

func (v *Viewer) createUI() {
	v.background = canvas.NewRectangle(color.Black)

	v.text = canvas.NewText("", color.White)
	v.text.Alignment = fyne.TextAlignCenter

	v.status = canvas.NewText("", color.White)
	v.status.TextSize = ViewerStatusTextSize

	v.closeBtn = widget.NewButton(IconClose, v.player.Close)
	v.closeBtn.Importance = widget.LowImportance

	v.surface = NewGestureSurface(v.handleGesture)

	topBar := container.NewHBox(container.NewPadded(v.status), layout.NewSpacer(), v.closeBtn)

	v.content = container.NewStack(
		v.background,
		container.NewCenter(v.text),
		v.surface,
		container.NewBorder(topBar, nil, nil, nil),
	)
}

// Content returns the viewer's root object
func (v *Viewer) Content() fyne.CanvasObject {
	return v.content
}

// Start subscribes to the player, installs keyboard shortcuts and starts playback
func (v *Viewer) Start() {
	v.player.SetUpdateCallback(func(frame playback.Frame) {
		fyne.Do(func() {
			v.render(frame)
		})
	})
	v.player.SetExitCallback(func() {
		fyne.Do(v.finish)
	})

	if v.window != nil {
		v.window.Canvas().SetOnTypedKey(v.onTypedKey)
	}

	v.render(v.player.Frame())
	v.player.Start()
}

// handleGesture maps a gesture onto a playback action
func (v *Viewer) handleGesture(gesture GestureType) {
	v.logger.Debug("gesture", "type", gesture)

	switch gesture {
	case GestureTapLeft, GestureSwipeRight:
		v.player.Prev()
	case GestureTapRight, GestureSwipeLeft:
		v.player.Next()
	case GestureLongPress:
		v.player.TogglePause()
	case GestureSwipeDown:
		v.player.Close()
	}
}

func (v *Viewer) onTypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyLeft:
		v.player.Prev()
	case fyne.KeyRight:
		v.player.Next()
	case fyne.KeySpace:
		v.player.TogglePause()
	case fyne.KeyEscape:
		v.player.Close()
	}
}

// render draws frame; frames older than the last drawn one are dropped
func (v *Viewer) render(frame playback.Frame) {
	if frame.Version < v.lastVersion {
		return
	}
	v.lastVersion = frame.Version

	background := ParseColor(frame.Style.BackgroundColor, color.Black)
	v.background.FillColor = background

	if frame.Empty {
		v.text.Text = v.localization.GetText(KeyNoContent)
		v.text.Color = ContrastColor(background)
		v.text.TextSize = theme.TextHeadingSize()
		v.text.TextStyle = fyne.TextStyle{}
		v.status.Text = ""
	} else {
		v.text.Text = frame.Text
		v.text.Color = ParseColor(frame.Style.FontColor, ContrastColor(background))
		v.text.TextSize = float32(frame.Style.FontSize)
		v.text.TextStyle = TextStyleFor(frame.Style.FontFamily)

		icon := IconPause
		if frame.Autoplay {
			icon = IconPlay
		}
		v.status.Text = icon + " " + fmt.Sprintf(PositionFormat, frame.Index+1, frame.Total)
	}
	v.status.Color = ContrastColor(background)

	v.background.Refresh()
	v.text.Refresh()
	v.status.Refresh()
}

// finish runs once when the session exits
func (v *Viewer) finish() {
	if v.closed {
		return
	}
	v.closed = true

	if v.window != nil {
		v.window.Canvas().SetOnTypedKey(nil)
	}
	v.logger.Debug("viewer closed")

	if v.onClose != nil {
		v.onClose()
	}
}
