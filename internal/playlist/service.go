package playlist

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/nittu/baby-flashcards/internal/model"
	"github.com/nittu/baby-flashcards/internal/storage"
)

// Service stores custom playlists as one JSON list in a key-value store.
// It holds no cache: every call reads storage, so a failed write leaves the
// previously persisted list as the source of truth.
type Service struct {
	kv     storage.KeyValue
	logger *slog.Logger
}

// NewService creates a playlist repository over kv
func NewService(kv storage.KeyValue, logger *slog.Logger) *Service {
	return &Service{
		kv:     kv,
		logger: logger.With("component", "playlist_repository"),
	}
}

// ListAll returns the stored playlists in order. Missing or malformed
// storage yields an empty list.
func (s *Service) ListAll() []model.Playlist {
	return s.load()
}

// Count returns the number of stored playlists
func (s *Service) Count() int {
	return len(s.load())
}

// Get returns the playlist at index
func (s *Service) Get(index int) (model.Playlist, error) {
	list := s.load()
	if err := checkIndex(index, len(list)); err != nil {
		return model.Playlist{}, err
	}
	return list[index], nil
}

// Create appends entry to the list
func (s *Service) Create(entry model.Playlist) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	list := s.load()
	if len(list) >= model.MaxPlaylists {
		return fmt.Errorf("%w: maximum of %d custom playlists reached", model.ErrCapacity, model.MaxPlaylists)
	}

	list = append(list, entry.Clone())
	if err := s.save(list); err != nil {
		return err
	}

	s.logger.Info("playlist created", "name", entry.Name, "slides", len(entry.Slides), "index", len(list)-1)
	return nil
}

// Update replaces the playlist at index
func (s *Service) Update(index int, entry model.Playlist) error {
	list := s.load()
	if err := checkIndex(index, len(list)); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	list[index] = entry.Clone()
	if err := s.save(list); err != nil {
		return err
	}

	s.logger.Info("playlist updated", "name", entry.Name, "slides", len(entry.Slides), "index", index)
	return nil
}

// Delete removes the playlist at index. Playlists after it move down by one.
func (s *Service) Delete(index int) error {
	list := s.load()
	if err := checkIndex(index, len(list)); err != nil {
		return err
	}

	name := list[index].Name
	list = slices.Delete(list, index, index+1)
	if err := s.save(list); err != nil {
		return err
	}

	s.logger.Info("playlist deleted", "name", name, "index", index, "remaining", len(list))
	return nil
}

// NewDraft returns an empty playlist for the editor
func (s *Service) NewDraft() model.Playlist {
	return model.NewPlaylist("")
}

// AddSlide returns draft with slide appended
func (s *Service) AddSlide(draft model.Playlist, slide model.Slide) (model.Playlist, error) {
	return draft.WithSlide(slide)
}

// RemoveSlide returns draft without the slide at index
func (s *Service) RemoveSlide(draft model.Playlist, index int) (model.Playlist, error) {
	return draft.WithoutSlide(index)
}

// ReplaceSlide returns draft with the slide at index replaced
func (s *Service) ReplaceSlide(draft model.Playlist, index int, slide model.Slide) (model.Playlist, error) {
	return draft.WithReplacedSlide(index, slide)
}

// load reads the persisted list, recovering from read and decode failures
func (s *Service) load() []model.Playlist {
	raw, ok, err := s.kv.Get(storage.KeyCustomPlaylists)
	if err != nil {
		s.logger.Warn("failed to read playlists, treating as empty",
			"error", fmt.Errorf("%w: %v", model.ErrPersistence, err))
		return make([]model.Playlist, 0)
	}
	if !ok {
		return make([]model.Playlist, 0)
	}

	var list []model.Playlist
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.logger.Warn("malformed playlists, treating as empty",
			"error", fmt.Errorf("%w: %v", model.ErrPersistence, err))
		return make([]model.Playlist, 0)
	}
	if list == nil {
		list = make([]model.Playlist, 0)
	}
	for i := range list {
		if list[i].Slides == nil {
			list[i].Slides = make([]model.Slide, 0)
		}
	}
	return list
}

// save writes the whole list in a single storage write
func (s *Service) save(list []model.Playlist) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: encode playlists: %v", model.ErrPersistence, err)
	}
	if err := s.kv.Set(storage.KeyCustomPlaylists, string(data)); err != nil {
		s.logger.Error("failed to persist playlists", "error", err)
		return fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}
	return nil
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: playlist %d of %d", model.ErrIndex, index, length)
	}
	return nil
}
