package storage

// Keys used by the application
const (
	KeyCustomPlaylists = "customPlaylists"
	KeyUserSettings    = "userSettings"
)

// KeyValue defines the interface for single-key text persistence.
// Get reports ok=false when the key has never been written.
type KeyValue interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
