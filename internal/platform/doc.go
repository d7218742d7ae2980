package platform

// Package platform contains OS integration helpers: locating the per-user data
// directory, creating directories and replacing files atomically.
