package model

import "errors"

// Error taxonomy shared by the stores and the playback engine.
// Operations wrap these with context; callers check them with errors.Is.
var (
	// ErrValidation is returned when a required field is empty or a field is malformed.
	ErrValidation = errors.New("validation failed")

	// ErrCapacity is returned when the playlist or slide ceiling would be exceeded.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrIndex is returned for a stale or out-of-range position.
	ErrIndex = errors.New("index out of range")

	// ErrPersistence is returned when reading or writing storage fails.
	ErrPersistence = errors.New("persistence failure")
)
