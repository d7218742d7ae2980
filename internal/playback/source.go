package playback

import (
	"slices"

	"github.com/nittu/baby-flashcards/internal/model"
)

// Source is what the viewer was asked to play: a built-in category or an
// explicit custom slide sequence.
type Source struct {
	Title    string
	Category Category
	Slides   []model.Slide // non-nil for custom sources
	DelayMs  int
}

// BuiltIn creates a source for a built-in category
func BuiltIn(category Category) Source {
	if category == "" {
		category = CategoryAlphabet
	}
	title := string(category)
	for _, b := range BuiltIns() {
		if b.Category == category {
			title = b.Title
		}
	}
	return Source{Title: title, Category: category}
}

// Custom creates a source playing the playlist's slides verbatim
func Custom(p model.Playlist) Source {
	return Source{
		Title:   p.Name,
		Slides:  p.Clone().Slides,
		DelayMs: p.DelayMs,
	}
}

// IsCustom reports whether the source bypasses category expansion
func (s Source) IsCustom() bool {
	return s.Slides != nil
}

// Resolve returns the slide sequence to play
func (s Source) Resolve() []model.Slide {
	if s.IsCustom() {
		return slices.Clone(s.Slides)
	}
	return Expand(s.Category)
}
