package playback

import (
	"strconv"

	"github.com/nittu/baby-flashcards/internal/model"
)

// Category identifies a generated built-in card set
type Category string

const (
	CategoryAlphabet Category = "alphabet"
	CategoryNumbers  Category = "numbers"
	CategoryAnimals  Category = "animals"
)

// BuiltInPlaylist is a built-in card set as listed on the home screen
type BuiltInPlaylist struct {
	Category Category
	Title    string
}

var animals = []string{"🐱", "🐶", "🦁", "🐯", "🦆", "🐻", "🐢", "🦒", "🦓"}

// BuiltIns returns the built-in card sets in display order
func BuiltIns() []BuiltInPlaylist {
	return []BuiltInPlaylist{
		{Category: CategoryAlphabet, Title: "A–Z"},
		{Category: CategoryNumbers, Title: "0–9"},
		{Category: CategoryAnimals, Title: "Animals 🐾"},
	}
}

// Expand returns the canonical slide sequence of a category. An empty
// category means alphabet; an unknown one yields no slides.
func Expand(category Category) []model.Slide {
	switch category {
	case CategoryAlphabet, "":
		slides := make([]model.Slide, 0, 26)
		for r := 'A'; r <= 'Z'; r++ {
			slides = append(slides, model.TextSlide(string(r)))
		}
		return slides
	case CategoryNumbers:
		slides := make([]model.Slide, 0, 10)
		for i := 0; i <= 9; i++ {
			slides = append(slides, model.TextSlide(strconv.Itoa(i)))
		}
		return slides
	case CategoryAnimals:
		slides := make([]model.Slide, 0, len(animals))
		for _, a := range animals {
			slides = append(slides, model.TextSlide(a))
		}
		return slides
	default:
		return make([]model.Slide, 0)
	}
}
