package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nittu/baby-flashcards/internal/model"
	"github.com/nittu/baby-flashcards/internal/storage"
)

// SettingsStore manages the user's default playback appearance.
//
// It is constructed explicitly with OpenSettingsStore, which loads the
// persisted record once. Save replaces the record wholesale and only then
// updates Current. Flush re-persists Current and is called on shutdown.
type SettingsStore struct {
	kv     storage.KeyValue
	logger *slog.Logger

	mu      sync.RWMutex
	current model.Settings
}

// OpenSettingsStore creates a settings store and loads the persisted record
func OpenSettingsStore(kv storage.KeyValue, logger *slog.Logger) *SettingsStore {
	s := &SettingsStore{
		kv:      kv,
		logger:  logger.With("component", "settings_store"),
		current: model.DefaultSettings(),
	}
	s.Load()
	return s
}

// Load reads the persisted record into Current and returns it. A missing or
// malformed record yields the built-in defaults; failures are logged, never returned.
func (s *SettingsStore) Load() model.Settings {
	loaded := s.read()

	s.mu.Lock()
	s.current = loaded
	s.mu.Unlock()

	return loaded
}

func (s *SettingsStore) read() model.Settings {
	defaults := model.DefaultSettings()

	raw, ok, err := s.kv.Get(storage.KeyUserSettings)
	if err != nil {
		s.logger.Warn("failed to read user settings, using defaults",
			"error", fmt.Errorf("%w: %v", model.ErrPersistence, err))
		return defaults
	}
	if !ok {
		return defaults
	}

	// Decoding over the defaults keeps them for fields a partial record omits
	settings := defaults
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.logger.Warn("malformed user settings, using defaults",
			"error", fmt.Errorf("%w: %v", model.ErrPersistence, err))
		return defaults
	}

	return settings.Normalize()
}

// Save validates settings, persists the full record and makes it Current.
// On failure Current keeps its previous value.
func (s *SettingsStore) Save(settings model.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.write(settings); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()

	s.logger.Info("user settings saved",
		"delay_ms", settings.DelayMs,
		"font_size", settings.FontSize,
		"font_family", settings.FontFamily)
	return nil
}

// Reset persists and activates the built-in defaults
func (s *SettingsStore) Reset() error {
	return s.Save(model.DefaultSettings())
}

// Current returns the in-memory settings consulted by playback
func (s *SettingsStore) Current() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Flush writes Current back to storage
func (s *SettingsStore) Flush() error {
	return s.write(s.Current())
}

func (s *SettingsStore) write(settings model.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: encode user settings: %v", model.ErrPersistence, err)
	}
	if err := s.kv.Set(storage.KeyUserSettings, string(data)); err != nil {
		s.logger.Error("failed to persist user settings", "error", err)
		return fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}
	return nil
}
