package playback

import "github.com/nittu/baby-flashcards/internal/model"

// Player defines the interface the viewer drives.
type Player interface {
	SetUpdateCallback(func(Frame))
	SetExitCallback(func())
	Start()
	Next()
	Prev()
	Pause()
	Resume()
	TogglePause()
	Close()
	Frame() Frame
	State() model.PlaybackState
}
