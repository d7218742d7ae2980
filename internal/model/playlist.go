package model

import (
	"fmt"
	"slices"
	"strings"
)

// Repository and draft ceilings
const (
	MaxPlaylists = 10
	MaxSlides    = 30
)

// DefaultPlaylistDelayMs is the autoplay delay given to a new playlist draft
const DefaultPlaylistDelayMs = 3000

// Playlist is a named, ordered, bounded collection of slides plus timing.
// Playlists have no stable identity: the repository addresses them by position.
type Playlist struct {
	Name    string  `json:"name"`
	Slides  []Slide `json:"slides"`
	DelayMs int     `json:"delay" validate:"gte=0"`
}

// NewPlaylist creates an empty playlist draft
func NewPlaylist(name string) Playlist {
	return Playlist{
		Name:    name,
		Slides:  make([]Slide, 0),
		DelayMs: DefaultPlaylistDelayMs,
	}
}

// Clone returns a copy that shares no slide storage with p
func (p Playlist) Clone() Playlist {
	p.Slides = slices.Clone(p.Slides)
	if p.Slides == nil {
		p.Slides = make([]Slide, 0)
	}
	return p
}

// IsFull reports whether no further slide can be added
func (p Playlist) IsFull() bool {
	return len(p.Slides) >= MaxSlides
}

// WithSlide returns a copy of p with slide appended. p is left unchanged.
func (p Playlist) WithSlide(slide Slide) (Playlist, error) {
	if p.IsFull() {
		return p, fmt.Errorf("%w: maximum of %d slides reached", ErrCapacity, MaxSlides)
	}
	if err := slide.Validate(); err != nil {
		return p, err
	}

	next := p.Clone()
	next.Slides = append(next.Slides, slide)
	return next, nil
}

// WithoutSlide returns a copy of p with the slide at index removed
func (p Playlist) WithoutSlide(index int) (Playlist, error) {
	if index < 0 || index >= len(p.Slides) {
		return p, fmt.Errorf("%w: slide %d of %d", ErrIndex, index, len(p.Slides))
	}

	next := p.Clone()
	next.Slides = slices.Delete(next.Slides, index, index+1)
	return next, nil
}

// WithReplacedSlide returns a copy of p with the slide at index replaced
func (p Playlist) WithReplacedSlide(index int, slide Slide) (Playlist, error) {
	if index < 0 || index >= len(p.Slides) {
		return p, fmt.Errorf("%w: slide %d of %d", ErrIndex, index, len(p.Slides))
	}
	if err := slide.Validate(); err != nil {
		return p, err
	}

	next := p.Clone()
	next.Slides[index] = slide
	return next, nil
}

// Validate checks the playlist can be persisted
func (p Playlist) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: playlist name is required", ErrValidation)
	}
	if len(p.Slides) > MaxSlides {
		return fmt.Errorf("%w: playlist has %d slides, maximum is %d", ErrCapacity, len(p.Slides), MaxSlides)
	}
	for i, slide := range p.Slides {
		if err := slide.Validate(); err != nil {
			return fmt.Errorf("slide %d: %w", i, err)
		}
	}
	return validateStruct(p)
}
