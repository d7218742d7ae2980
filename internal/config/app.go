package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/nittu/baby-flashcards/internal/platform"
)

// Storage backends
const (
	BackendPreferences = "preferences"
	BackendFile        = "file"
)

// EnvConfigPath names the environment variable that overrides the config location
const EnvConfigPath = "FLASHCARDS_CONFIG"

// LocalConfigFile is looked up in the working directory
const LocalConfigFile = "./flashcards.toml"

// AppConfig holds process-level configuration read from a TOML file
type AppConfig struct {
	LogLevel  string        `toml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string        `toml:"log_format" validate:"oneof=text json"`
	Storage   StorageConfig `toml:"storage"`
}

// StorageConfig selects where playlists and settings are persisted
type StorageConfig struct {
	Backend string `toml:"backend" validate:"oneof=preferences file"`
	// Dir is used by the file backend; empty means the user data dir
	Dir string `toml:"dir"`
}

var appConfigValidator = validator.New()

// DefaultAppConfig returns the configuration used when no file exists
func DefaultAppConfig() AppConfig {
	return AppConfig{
		LogLevel:  "info",
		LogFormat: "text",
		Storage: StorageConfig{
			Backend: BackendPreferences,
		},
	}
}

// GetAppConfigPath returns the config file path.
// $FLASHCARDS_CONFIG wins, then ./flashcards.toml, then the user config dir.
func GetAppConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	if _, err := os.Stat(LocalConfigFile); err == nil {
		return LocalConfigFile
	}

	dataDir, err := platform.GetDataDir()
	if err != nil {
		return LocalConfigFile
	}
	return filepath.Join(dataDir, "config.toml")
}

// LoadAppConfig loads configuration from a TOML file.
// A missing file yields defaults without error; unreadable, malformed or
// invalid files yield defaults and an error.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return DefaultAppConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	// Unset keys keep their defaults
	cfg := DefaultAppConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultAppConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultAppConfig(), err
	}

	return cfg, nil
}

// SaveAppConfig writes configuration to a TOML file
func SaveAppConfig(path string, cfg AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks the configuration values
func (c AppConfig) Validate() error {
	if err := appConfigValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// StorageDir returns the directory for the file backend
func (c AppConfig) StorageDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	dataDir, err := platform.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "data"), nil
}
