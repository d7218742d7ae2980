package model

// PlaybackState represents the state of a playback session
type PlaybackState string

const (
	// StateIdle means the resolved sequence is empty and a placeholder is shown
	StateIdle PlaybackState = "idle"

	// StatePlaying means autoplay is advancing slides
	StatePlaying PlaybackState = "playing"

	// StatePaused means the user took control and autoplay is off
	StatePaused PlaybackState = "paused"

	// StateExited means the session ended and the viewer should close
	StateExited PlaybackState = "exited"
)

// String returns the string representation of PlaybackState
func (ps PlaybackState) String() string {
	return string(ps)
}

// IsActive returns true if autoplay is running in this state
func (ps PlaybackState) IsActive() bool {
	return ps == StatePlaying
}

// IsFinished returns true if the state is terminal
func (ps PlaybackState) IsFinished() bool {
	return ps == StateExited
}
