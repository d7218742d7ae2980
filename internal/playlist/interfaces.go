package playlist

import (
	"github.com/nittu/baby-flashcards/internal/model"
)

// Repository defines the interface for custom playlist persistence.
type Repository interface {
	ListAll() []model.Playlist
	Count() int
	Get(index int) (model.Playlist, error)
	Create(entry model.Playlist) error
	Update(index int, entry model.Playlist) error
	Delete(index int) error

	// Draft editing; drafts are values and are never modified in place
	NewDraft() model.Playlist
	AddSlide(draft model.Playlist, slide model.Slide) (model.Playlist, error)
	RemoveSlide(draft model.Playlist, index int) (model.Playlist, error)
	ReplaceSlide(draft model.Playlist, index int, slide model.Slide) (model.Playlist, error)
}
