package playback

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nittu/baby-flashcards/internal/model"
)

// DefaultDelayMs is the autoplay delay used when neither the playlist nor the
// settings provide a positive one.
const DefaultDelayMs = model.DefaultDelayMs

// PlaceholderText is shown for a slide without text
const PlaceholderText = "?"

// Options configures an Engine
type Options struct {
	// Settings are the global fallback for delay and style
	Settings model.Settings

	// Style is the engine level default, consulted before Settings
	Style model.Style

	// Scheduler runs autoplay ticks; SystemScheduler when nil
	Scheduler Scheduler

	Logger *slog.Logger
}

// Frame is the render-ready state of the current slide
type Frame struct {
	Text     string
	Style    model.Style
	Index    int
	Total    int
	State    model.PlaybackState
	Autoplay bool
	Empty    bool

	// Version increases with every transition; receivers drop older frames
	Version uint64
}

// Engine runs one viewing session over a resolved slide sequence.
//
// Playing advances by one slide per delay and wraps to the first slide after
// the last. Manual navigation pauses. Every transition stops the pending
// timer and bumps the generation, so a tick that races a transition is dropped.
type Engine struct {
	slides   []model.Slide
	delay    time.Duration
	fallback model.Style

	scheduler Scheduler
	logger    *slog.Logger

	mu      sync.Mutex
	state   model.PlaybackState
	index   int
	started bool
	gen     uint64
	version uint64
	timer   Timer

	onUpdate func(Frame) // callback for UI updates
	onExit   func()
}

// NewEngine creates a stopped engine for src. Call Start to begin autoplay.
func NewEngine(src Source, opts Options) *Engine {
	slides := src.Resolve()

	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = SystemScheduler{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	state := model.StatePaused
	if len(slides) == 0 {
		state = model.StateIdle
	}

	return &Engine{
		slides:    slides,
		delay:     ResolveDelay(src.DelayMs, opts.Settings.DelayMs),
		fallback:  opts.Style.Merge(opts.Settings.Normalize().Style()),
		scheduler: scheduler,
		logger: logger.With(
			"component", "playback",
			"session_id", uuid.NewString(),
			"source", src.Title,
		),
		state: state,
	}
}

// ResolveDelay picks the playlist delay, then the settings delay, then the default
func ResolveDelay(playlistMs, settingsMs int) time.Duration {
	ms := DefaultDelayMs
	switch {
	case playlistMs > 0:
		ms = playlistMs
	case settingsMs > 0:
		ms = settingsMs
	}
	return time.Duration(ms) * time.Millisecond
}

// SetUpdateCallback sets the function receiving a Frame after every transition.
// It is called outside the engine lock, possibly from a timer goroutine.
func (e *Engine) SetUpdateCallback(callback func(Frame)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onUpdate = callback
}

// SetExitCallback sets the function called once when the session exits
func (e *Engine) SetExitCallback(callback func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onExit = callback
}

// Start begins the session in Playing at the first slide. An empty sequence
// stays idle with no timer. Start has no effect once any transition happened.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.started || e.state.IsFinished() {
		e.mu.Unlock()
		return
	}

	if len(e.slides) == 0 {
		e.logger.Info("playback started with no content")
		e.transitionLocked(model.StateIdle, 0)
	} else {
		e.logger.Info("playback started", "slides", len(e.slides), "delay", e.delay)
		e.transitionLocked(model.StatePlaying, 0)
	}
	e.unlockAndNotify(true)
}

// Next moves to the following slide and pauses. At the last slide it exits.
func (e *Engine) Next() {
	e.mu.Lock()
	if e.state.IsFinished() {
		e.mu.Unlock()
		return
	}
	if e.index+1 < len(e.slides) {
		e.transitionLocked(model.StatePaused, e.index+1)
	} else {
		e.exitLocked("next past last slide")
	}
	e.unlockAndNotify(true)
}

// Prev moves to the previous slide and pauses. At the first slide it only pauses.
func (e *Engine) Prev() {
	e.mu.Lock()
	if e.state.IsFinished() || len(e.slides) == 0 {
		e.mu.Unlock()
		return
	}
	e.transitionLocked(model.StatePaused, max(e.index-1, 0))
	e.unlockAndNotify(true)
}

// Pause stops autoplay on the current slide
func (e *Engine) Pause() {
	e.mu.Lock()
	changed := e.state.IsActive()
	if changed {
		e.transitionLocked(model.StatePaused, e.index)
	}
	e.unlockAndNotify(changed)
}

// Resume restarts autoplay from the current slide
func (e *Engine) Resume() {
	e.mu.Lock()
	changed := e.state == model.StatePaused
	if changed {
		e.transitionLocked(model.StatePlaying, e.index)
	}
	e.unlockAndNotify(changed)
}

// TogglePause switches between Playing and Paused
func (e *Engine) TogglePause() {
	e.mu.Lock()
	changed := true
	switch e.state {
	case model.StatePlaying:
		e.transitionLocked(model.StatePaused, e.index)
	case model.StatePaused:
		e.transitionLocked(model.StatePlaying, e.index)
	default:
		changed = false
	}
	e.unlockAndNotify(changed)
}

// Close ends the session
func (e *Engine) Close() {
	e.mu.Lock()
	changed := !e.state.IsFinished()
	if changed {
		e.exitLocked("closed")
	}
	e.unlockAndNotify(changed)
}

// Frame returns the current render-ready state
func (e *Engine) Frame() Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frameLocked()
}

// State returns the current state
func (e *Engine) State() model.PlaybackState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Index returns the current slide index
func (e *Engine) Index() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index
}

// Len returns the length of the resolved sequence
func (e *Engine) Len() int {
	return len(e.slides)
}

// Delay returns the autoplay delay in effect
func (e *Engine) Delay() time.Duration {
	return e.delay
}

// tick advances autoplay if gen still identifies the current Playing state
func (e *Engine) tick(gen uint64) {
	e.mu.Lock()
	if gen != e.gen || !e.state.IsActive() {
		e.mu.Unlock()
		e.logger.Debug("stale autoplay tick dropped", "generation", gen)
		return
	}
	e.transitionLocked(model.StatePlaying, (e.index+1)%len(e.slides))
	e.unlockAndNotify(true)
}

// transitionLocked cancels any pending tick, moves to state and index, and
// schedules the next tick when the new state is Playing.
func (e *Engine) transitionLocked(state model.PlaybackState, index int) {
	e.stopTimerLocked()
	e.started = true
	e.gen++
	e.version++
	e.state = state
	e.index = index

	e.logger.Debug("playback transition", "state", state, "index", index)

	if state.IsActive() {
		gen := e.gen
		e.timer = e.scheduler.AfterFunc(e.delay, func() { e.tick(gen) })
	}
}

func (e *Engine) exitLocked(reason string) {
	e.transitionLocked(model.StateExited, e.index)
	e.logger.Info("playback exited", "reason", reason, "index", e.index)
}

func (e *Engine) stopTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// unlockAndNotify releases the lock and, if the state changed, delivers the
// resulting frame. The exit callback fires at most once, after the final frame.
func (e *Engine) unlockAndNotify(changed bool) {
	if !changed {
		e.mu.Unlock()
		return
	}

	frame := e.frameLocked()
	onUpdate := e.onUpdate
	var onExit func()
	if e.state.IsFinished() && e.onExit != nil {
		onExit = e.onExit
		e.onExit = nil
	}
	e.mu.Unlock()

	if onUpdate != nil {
		onUpdate(frame)
	}
	if onExit != nil {
		onExit()
	}
}

func (e *Engine) frameLocked() Frame {
	frame := Frame{
		Index:    e.index,
		Total:    len(e.slides),
		State:    e.state,
		Autoplay: e.state.IsActive(),
		Empty:    len(e.slides) == 0,
		Style:    e.fallback,
		Version:  e.version,
	}
	if frame.Empty {
		return frame
	}

	slide := e.slides[e.index]
	frame.Text = slide.Text
	if frame.Text == "" {
		frame.Text = PlaceholderText
	}
	frame.Style = slide.Style.Merge(e.fallback)
	return frame
}
