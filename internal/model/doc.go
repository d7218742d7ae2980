package model

// Package model defines the domain data structures shared across the app:
// slides and their style, custom playlists, user settings, playback states and
// the error taxonomy. Structures carry the JSON layout used in persistent storage.
