package playback

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nittu/baby-flashcards/internal/logger"
	"github.com/nittu/baby-flashcards/internal/model"
)

type frameRecorder struct {
	mu     sync.Mutex
	frames []Frame
	exits  int
}

func (r *frameRecorder) update(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
}

func (r *frameRecorder) exit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exits++
}

func (r *frameRecorder) indices() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, 0, len(r.frames))
	for _, f := range r.frames {
		out = append(out, f.Index)
	}
	return out
}

func customSource(n, delayMs int) Source {
	p := model.NewPlaylist("Test")
	p.DelayMs = delayMs
	for i := 0; i < n; i++ {
		p.Slides = append(p.Slides, model.NewSlide(fmt.Sprint(i)))
	}
	return Custom(p)
}

func newTestEngine(src Source) (*Engine, *fakeScheduler, *frameRecorder) {
	sched := newFakeScheduler()
	rec := &frameRecorder{}
	e := NewEngine(src, Options{
		Settings:  model.DefaultSettings(),
		Scheduler: sched,
		Logger:    logger.Discard(),
	})
	e.SetUpdateCallback(rec.update)
	e.SetExitCallback(rec.exit)
	return e, sched, rec
}

func assertAt(t *testing.T, e *Engine, state model.PlaybackState, index int) {
	t.Helper()
	assert.Equal(t, state, e.State())
	assert.Equal(t, index, e.Index())
}

// Ensure Engine implements Player
var _ Player = (*Engine)(nil)

func TestEngine_AutoplayAdvancesThenNextPauses(t *testing.T) {
	e, sched, _ := newTestEngine(customSource(5, 1000))

	e.Start()
	assertAt(t, e, model.StatePlaying, 0)
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(999 * time.Millisecond)
	assertAt(t, e, model.StatePlaying, 0)

	sched.Advance(time.Millisecond)
	assertAt(t, e, model.StatePlaying, 1)

	e.Next()
	assertAt(t, e, model.StatePaused, 2)
	assert.Equal(t, 0, sched.Pending())

	sched.Advance(1000 * time.Millisecond)
	assertAt(t, e, model.StatePaused, 2)
}

func TestEngine_NextCancelsMidDelay(t *testing.T) {
	e, sched, _ := newTestEngine(customSource(5, 1000))
	e.Start()

	sched.Advance(600 * time.Millisecond)
	e.Next()
	sched.Advance(5 * time.Second)

	assertAt(t, e, model.StatePaused, 1)
}

func TestEngine_PrevAtFirstSlide(t *testing.T) {
	e, sched, _ := newTestEngine(customSource(5, 1000))
	e.Start()

	e.Prev()
	assertAt(t, e, model.StatePaused, 0)
	assert.Equal(t, 0, sched.Pending())

	e.Prev()
	assertAt(t, e, model.StatePaused, 0)
}

func TestEngine_PrevMovesBack(t *testing.T) {
	e, sched, _ := newTestEngine(customSource(5, 1000))
	e.Start()
	sched.Advance(2 * time.Second)
	assertAt(t, e, model.StatePlaying, 2)

	e.Prev()
	assertAt(t, e, model.StatePaused, 1)
}

func TestEngine_NextAtLastSlideExits(t *testing.T) {
	e, sched, rec := newTestEngine(customSource(3, 1000))
	e.Start()

	e.Next()
	e.Next()
	assertAt(t, e, model.StatePaused, 2)

	e.Next()
	assert.Equal(t, model.StateExited, e.State())
	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, 1, rec.exits)

	// Exited is terminal
	e.Next()
	e.Prev()
	e.Resume()
	e.TogglePause()
	e.Close()
	e.Start()
	assert.Equal(t, model.StateExited, e.State())
	assert.Equal(t, 1, rec.exits)
	assert.Equal(t, 0, sched.Pending())
}

func TestEngine_AutoplayWrapsAround(t *testing.T) {
	e, sched, rec := newTestEngine(customSource(3, 1000))
	e.Start()

	sched.Advance(3 * time.Second)

	assertAt(t, e, model.StatePlaying, 0)
	assert.Equal(t, []int{0, 1, 2, 0}, rec.indices())
	assert.Equal(t, 0, rec.exits)
	assert.Equal(t, 1, sched.Pending())
}

func TestEngine_SingleTimer(t *testing.T) {
	e, sched, _ := newTestEngine(customSource(5, 1000))
	e.Start()

	e.Pause()
	e.Resume()
	e.TogglePause()
	e.TogglePause()
	sched.Advance(500 * time.Millisecond)
	e.Pause()
	e.Resume()

	assert.Equal(t, 1, sched.Pending())
}

func TestEngine_StaleTickDropped(t *testing.T) {
	e, sched, rec := newTestEngine(customSource(5, 1000))
	e.Start()

	e.Pause()
	sched.fireStopped()
	assertAt(t, e, model.StatePaused, 0)

	// A late tick from an earlier Playing state must not advance the current one
	e.Resume()
	e.Next()
	e.Resume()
	sched.fireStopped()
	assertAt(t, e, model.StatePlaying, 1)

	sched.Advance(time.Second)
	assertAt(t, e, model.StatePlaying, 2)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 2}, rec.indices())
}

func TestEngine_TogglePauseRestartsDelay(t *testing.T) {
	e, sched, _ := newTestEngine(customSource(5, 1000))
	e.Start()

	sched.Advance(500 * time.Millisecond)
	e.TogglePause()
	assertAt(t, e, model.StatePaused, 0)
	e.TogglePause()
	assertAt(t, e, model.StatePlaying, 0)

	sched.Advance(500 * time.Millisecond)
	assertAt(t, e, model.StatePlaying, 0)
	sched.Advance(500 * time.Millisecond)
	assertAt(t, e, model.StatePlaying, 1)
}

func TestEngine_PauseResumeNoops(t *testing.T) {
	e, _, rec := newTestEngine(customSource(2, 1000))
	e.Start()

	e.Resume()
	require.Len(t, rec.frames, 1, "resume while playing emits nothing")

	e.Pause()
	e.Pause()
	assert.Len(t, rec.frames, 2, "pause while paused emits nothing")
}

func TestEngine_Close(t *testing.T) {
	e, sched, rec := newTestEngine(customSource(5, 1000))
	e.Start()

	e.Close()
	assert.Equal(t, model.StateExited, e.State())
	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, 1, rec.exits)

	sched.fireStopped()
	assert.Equal(t, model.StateExited, e.State())

	e.Close()
	assert.Equal(t, 1, rec.exits)
}

func TestEngine_EmptySequence(t *testing.T) {
	tests := []struct {
		name string
		src  Source
	}{
		{name: "empty custom playlist", src: Custom(model.NewPlaylist("Empty"))},
		{name: "unknown category", src: BuiltIn("planets")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, sched, rec := newTestEngine(tt.src)
			e.Start()

			assert.Equal(t, model.StateIdle, e.State())
			assert.Equal(t, 0, sched.Pending())
			assert.Equal(t, 0, e.Len())

			frame := e.Frame()
			assert.True(t, frame.Empty)
			assert.False(t, frame.Autoplay)
			assert.Empty(t, frame.Text)
			assert.Equal(t, model.DefaultBackgroundColor, frame.Style.BackgroundColor)

			e.Prev()
			e.Pause()
			e.Resume()
			e.TogglePause()
			sched.Advance(10 * time.Second)
			assert.Equal(t, model.StateIdle, e.State())

			e.Next()
			assert.Equal(t, model.StateExited, e.State())
			assert.Equal(t, 1, rec.exits)
		})
	}
}

func TestEngine_StartOnce(t *testing.T) {
	e, sched, rec := newTestEngine(customSource(5, 1000))

	e.Start()
	sched.Advance(time.Second)
	e.Start()
	assertAt(t, e, model.StatePlaying, 1)

	other, _, _ := newTestEngine(customSource(5, 1000))
	other.Next()
	other.Start()
	assertAt(t, other, model.StatePaused, 1)

	assert.Len(t, rec.frames, 2)
}

func TestEngine_BeforeStart(t *testing.T) {
	e, sched, _ := newTestEngine(BuiltIn(CategoryNumbers))

	assertAt(t, e, model.StatePaused, 0)
	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, "0", e.Frame().Text)
}

func TestEngine_FrameVersionIncreases(t *testing.T) {
	e, sched, rec := newTestEngine(customSource(5, 1000))
	e.Start()
	sched.Advance(2 * time.Second)
	e.Next()
	e.Prev()
	e.Resume()
	e.Close()

	require.NotEmpty(t, rec.frames)
	for i := 1; i < len(rec.frames); i++ {
		assert.Greater(t, rec.frames[i].Version, rec.frames[i-1].Version)
	}
	assert.Equal(t, rec.frames[len(rec.frames)-1], e.Frame())
}

func TestEngine_FrameAutoplayFlag(t *testing.T) {
	e, _, _ := newTestEngine(customSource(2, 1000))
	e.Start()
	assert.True(t, e.Frame().Autoplay)

	e.Pause()
	assert.False(t, e.Frame().Autoplay)
}

func TestEngine_StyleResolution(t *testing.T) {
	p := model.NewPlaylist("Styled")
	p.Slides = []model.Slide{
		{Text: "A", Style: model.Style{FontSize: 90}},
		{Text: "B", Style: model.Style{FontSize: 50, FontColor: "#00ff00", BackgroundColor: "#111111", FontFamily: model.FontCourier}},
		{Text: ""},
	}

	settings := model.Settings{
		DelayMs:         1000,
		FontSize:        200,
		FontColor:       "#ffffff",
		BackgroundColor: "#0000ff",
		FontFamily:      model.FontGeorgia,
	}

	e := NewEngine(Custom(p), Options{
		Settings:  settings,
		Style:     model.Style{FontColor: "#ff0000"},
		Scheduler: newFakeScheduler(),
		Logger:    logger.Discard(),
	})
	e.Start()

	assert.Equal(t, model.Style{
		FontSize:        90,
		FontColor:       "#ff0000",
		BackgroundColor: "#0000ff",
		FontFamily:      model.FontGeorgia,
	}, e.Frame().Style)

	e.Next()
	assert.Equal(t, p.Slides[1].Style, e.Frame().Style)

	e.Next()
	frame := e.Frame()
	assert.Equal(t, PlaceholderText, frame.Text)
	assert.Equal(t, 200, frame.Style.FontSize)
}

func TestEngine_BuiltInUsesSettingsStyle(t *testing.T) {
	settings := model.DefaultSettings()
	settings.FontSize = 180
	settings.FontColor = "#ffff00"

	e := NewEngine(BuiltIn(CategoryAlphabet), Options{
		Settings:  settings,
		Scheduler: newFakeScheduler(),
		Logger:    logger.Discard(),
	})

	frame := e.Frame()
	assert.Equal(t, "A", frame.Text)
	assert.Equal(t, 26, frame.Total)
	assert.Equal(t, settings.Style(), frame.Style)
}

func TestEngine_ZeroSettingsFallBackToDefaults(t *testing.T) {
	e := NewEngine(BuiltIn(CategoryNumbers), Options{
		Scheduler: newFakeScheduler(),
		Logger:    logger.Discard(),
	})

	assert.Equal(t, model.DefaultSettings().Style(), e.Frame().Style)
	assert.Equal(t, time.Duration(DefaultDelayMs)*time.Millisecond, e.Delay())
}

func TestResolveDelay(t *testing.T) {
	tests := []struct {
		name       string
		playlistMs int
		settingsMs int
		want       time.Duration
	}{
		{name: "playlist wins", playlistMs: 2000, settingsMs: 1000, want: 2 * time.Second},
		{name: "settings when playlist unset", playlistMs: 0, settingsMs: 1000, want: time.Second},
		{name: "default when both unset", playlistMs: 0, settingsMs: 0, want: 1500 * time.Millisecond},
		{name: "negative ignored", playlistMs: -5, settingsMs: -1, want: 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDelay(tt.playlistMs, tt.settingsMs))
		})
	}
}

func TestEngine_BuiltInUsesSettingsDelay(t *testing.T) {
	settings := model.DefaultSettings()
	settings.DelayMs = 700

	e, sched, _ := newTestEngine(BuiltIn(CategoryAlphabet))
	assert.Equal(t, 1500*time.Millisecond, e.Delay())

	e = NewEngine(BuiltIn(CategoryAlphabet), Options{Settings: settings, Scheduler: sched, Logger: logger.Discard()})
	assert.Equal(t, 700*time.Millisecond, e.Delay())
}

func TestEngine_SystemScheduler(t *testing.T) {
	settings := model.DefaultSettings()
	settings.DelayMs = 5

	e := NewEngine(BuiltIn(CategoryAlphabet), Options{Settings: settings, Logger: logger.Discard()})
	e.Start()
	defer e.Close()

	assert.Eventually(t, func() bool {
		return e.Index() >= 2
	}, 2*time.Second, time.Millisecond)
	assert.Equal(t, model.StatePlaying, e.State())
}
