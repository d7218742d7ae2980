package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/nittu/baby-flashcards/internal/platform"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// File stores every key in its own JSON file under a directory. Writes go
// through a temp file and rename, so a crash leaves the old or new value.
type File struct {
	dir string
}

// NewFile creates a file store rooted at dir, creating the directory if needed
func NewFile(dir string) (*File, error) {
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &File{dir: dir}, nil
}

// Dir returns the root directory of the store
func (f *File) Dir() string {
	return f.dir
}

// Get reads the value stored for key
func (f *File) Get(key string) (string, bool, error) {
	path, err := f.path(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set replaces the value stored for key
func (f *File) Set(key, value string) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}
	if err := platform.WriteFileAtomic(path, []byte(value)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (f *File) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}
