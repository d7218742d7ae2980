// Package playlist implements the repository of user-defined playlists.
//
// The whole ordered list lives under one storage key and every mutation
// rewrites it. Playlists are addressed by position: after Create, Update or
// Delete callers re-read positions instead of reusing an index held before.
package playlist
