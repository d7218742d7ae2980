package storage

// Package storage provides the local key-value persistence used by the
// playlist repository and the settings store. Each key holds one serialized
// text blob and a write replaces the whole value.
