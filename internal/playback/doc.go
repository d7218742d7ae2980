// Package playback resolves slide sequences and runs the autoplay state machine
// behind the full-screen viewer.
package playback
