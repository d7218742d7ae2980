package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nittu/baby-flashcards/internal/logger"
	"github.com/nittu/baby-flashcards/internal/model"
	"github.com/nittu/baby-flashcards/internal/playback"
)

// slowSettings keep autoplay from ticking during a test
func slowSettings() model.Settings {
	s := model.DefaultSettings()
	s.DelayMs = 3_600_000
	return s
}

func newTestViewer(t *testing.T, src playback.Source) (*Viewer, *playback.Engine, *int) {
	t.Helper()
	test.NewApp()
	window := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(window.Close)

	engine := playback.NewEngine(src, playback.Options{Settings: slowSettings(), Logger: logger.Discard()})
	t.Cleanup(engine.Close)

	closed := 0
	v := NewViewer(window, engine, NewLocalization(), logger.Discard(), func() { closed++ })
	window.SetContent(v.Content())
	return v, engine, &closed
}

func TestViewer_StartsPlaying(t *testing.T) {
	v, engine, _ := newTestViewer(t, playback.BuiltIn(playback.CategoryAlphabet))
	v.Start()

	assert.Equal(t, model.StatePlaying, engine.State())
	assert.Equal(t, "A", v.text.Text)
	assert.Equal(t, float32(model.DefaultFontSize), v.text.TextSize)
}

func TestViewer_GesturesDriveEngine(t *testing.T) {
	v, engine, _ := newTestViewer(t, playback.BuiltIn(playback.CategoryNumbers))
	v.Start()

	v.handleGesture(GestureTapRight)
	assert.Equal(t, model.StatePaused, engine.State())
	assert.Equal(t, 1, engine.Index())

	v.handleGesture(GestureSwipeLeft)
	assert.Equal(t, 2, engine.Index())

	v.handleGesture(GestureTapLeft)
	v.handleGesture(GestureSwipeRight)
	assert.Equal(t, 0, engine.Index())

	v.handleGesture(GestureLongPress)
	assert.Equal(t, model.StatePlaying, engine.State())
	v.handleGesture(GestureLongPress)
	assert.Equal(t, model.StatePaused, engine.State())

	v.handleGesture(GestureSwipeUp)
	assert.Equal(t, model.StatePaused, engine.State())

	v.handleGesture(GestureSwipeDown)
	assert.Equal(t, model.StateExited, engine.State())
}

func TestViewer_Keyboard(t *testing.T) {
	v, engine, _ := newTestViewer(t, playback.BuiltIn(playback.CategoryNumbers))
	v.Start()

	v.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	assert.Equal(t, 1, engine.Index())
	v.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	assert.Equal(t, 0, engine.Index())
	v.onTypedKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	assert.Equal(t, model.StatePlaying, engine.State())
	v.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, model.StateExited, engine.State())
}

func TestViewer_CloseButton(t *testing.T) {
	v, engine, _ := newTestViewer(t, playback.BuiltIn(playback.CategoryAnimals))
	v.Start()

	test.Tap(v.closeBtn)
	assert.Equal(t, model.StateExited, engine.State())
}

func TestViewer_FinishOnce(t *testing.T) {
	v, _, closed := newTestViewer(t, playback.BuiltIn(playback.CategoryAnimals))

	v.finish()
	v.finish()
	assert.Equal(t, 1, *closed)
}

func TestViewer_RenderDropsStaleFrames(t *testing.T) {
	v, _, _ := newTestViewer(t, playback.BuiltIn(playback.CategoryAlphabet))

	v.render(playback.Frame{Text: "C", Index: 2, Total: 26, State: model.StatePaused, Version: 5,
		Style: model.DefaultSettings().Style()})
	v.render(playback.Frame{Text: "B", Index: 1, Total: 26, State: model.StatePlaying, Version: 3,
		Style: model.DefaultSettings().Style()})

	assert.Equal(t, "C", v.text.Text)
	assert.Equal(t, IconPause+" 3 / 26", v.status.Text)
}

func TestViewer_RenderStyle(t *testing.T) {
	v, _, _ := newTestViewer(t, playback.BuiltIn(playback.CategoryAlphabet))

	v.render(playback.Frame{
		Text:     "Q",
		Index:    0,
		Total:    1,
		State:    model.StatePlaying,
		Autoplay: true,
		Version:  1,
		Style: model.Style{
			FontSize:        90,
			FontColor:       "#ff0000",
			BackgroundColor: "#ffffff",
			FontFamily:      model.FontCourier,
		},
	})

	assert.Equal(t, float32(90), v.text.TextSize)
	assert.True(t, v.text.TextStyle.Monospace)
	r, g, b := rgb8(v.text.Color)
	assert.Equal(t, []uint8{0xff, 0, 0}, []uint8{r, g, b})
	r, g, b = rgb8(v.background.FillColor)
	assert.Equal(t, []uint8{0xff, 0xff, 0xff}, []uint8{r, g, b})
	assert.Equal(t, IconPlay+" 1 / 1", v.status.Text)
}

func TestViewer_EmptySequence(t *testing.T) {
	v, engine, _ := newTestViewer(t, playback.Custom(model.NewPlaylist("Empty")))
	v.Start()

	require.Equal(t, model.StateIdle, engine.State())
	assert.Equal(t, "No content", v.text.Text)
	assert.Empty(t, v.status.Text)
}
