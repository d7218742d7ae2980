package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSAndroid = "android"
	OSIOS     = "ios"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0600
)

// AppDirName is the directory created under the user config dir
const AppDirName = "baby-flashcards"

// IsMobile reports whether the process runs on Android or iOS
func IsMobile() bool {
	if runtime.GOOS == OSAndroid || runtime.GOOS == OSIOS {
		return true
	}
	// Fyne Android apps run as libdist.so
	return os.Getenv("ANDROID_DATA") != "" || filepath.Base(os.Args[0]) == "libdist.so"
}

// CreateDirectoryIfNotExists creates dirPath and its parents when missing
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetDataDir returns the per-user directory for application data
func GetDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("failed to resolve user config directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, AppDirName), nil
}

// WriteFileAtomic replaces path with data. The content is written to a
// temporary file in the same directory and renamed over path, so readers see
// either the old or the new content.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
