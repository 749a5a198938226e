package builders

import (
	"strconv"
	"strings"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

// DeckBuilder helps build Deck entities for testing
type DeckBuilder struct {
	deck *entities.Deck
}

// NewDeckBuilder creates a new deck builder with sensible defaults
func NewDeckBuilder() *DeckBuilder {
	return &DeckBuilder{
		deck: &entities.Deck{
			Title: "Test Deck",
			Specs: []entities.SlideSpec{},
		},
	}
}

// WithTitle sets the deck title
func (b *DeckBuilder) WithTitle(title string) *DeckBuilder {
	b.deck.Title = title
	return b
}

// WithSpec adds a single slide spec
func (b *DeckBuilder) WithSpec(spec entities.SlideSpec) *DeckBuilder {
	b.deck.Specs = append(b.deck.Specs, spec)
	return b
}

// WithSlideCount adds the specified number of default slides
func (b *DeckBuilder) WithSlideCount(count int) *DeckBuilder {
	for i := 0; i < count; i++ {
		spec := NewSlideSpecBuilder().
			WithTitle("Slide " + strconv.Itoa(i+1)).
			Build()
		b.deck.Specs = append(b.deck.Specs, spec)
	}
	return b
}

// Build creates the final Deck entity
func (b *DeckBuilder) Build() *entities.Deck {
	specs := make([]entities.SlideSpec, len(b.deck.Specs))
	for i, s := range b.deck.Specs {
		specs[i] = entities.SlideSpec{Title: s.Title, Lines: append([]string(nil), s.Lines...)}
	}

	return &entities.Deck{
		Title: b.deck.Title,
		Specs: specs,
	}
}

// RawSlides returns the deck's slides in --slide format
func (b *DeckBuilder) RawSlides() []string {
	raws := make([]string, len(b.deck.Specs))
	for i, s := range b.deck.Specs {
		raws[i] = Raw(s)
	}
	return raws
}

// SlideSpecBuilder helps build SlideSpec entities for testing
type SlideSpecBuilder struct {
	spec entities.SlideSpec
}

// NewSlideSpecBuilder creates a new slide spec builder with sensible defaults
func NewSlideSpecBuilder() *SlideSpecBuilder {
	return &SlideSpecBuilder{
		spec: entities.SlideSpec{
			Title: "Test Slide",
			Lines: []string{"First point", "Second point"},
		},
	}
}

// WithTitle sets the slide title
func (b *SlideSpecBuilder) WithTitle(title string) *SlideSpecBuilder {
	b.spec.Title = title
	return b
}

// WithLines replaces the body lines; no arguments means an empty body
func (b *SlideSpecBuilder) WithLines(lines ...string) *SlideSpecBuilder {
	b.spec.Lines = append([]string{}, lines...)
	return b
}

// Build creates the final SlideSpec entity
func (b *SlideSpecBuilder) Build() entities.SlideSpec {
	return entities.SlideSpec{
		Title: b.spec.Title,
		Lines: append([]string{}, b.spec.Lines...),
	}
}

// Raw formats spec the way it is passed to --slide
func Raw(spec entities.SlideSpec) string {
	return spec.Title + "|" + strings.Join(spec.Lines, `\n`)
}

// Common decks for testing

// MinimalDeck creates a deck with a single slide
func MinimalDeck() *entities.Deck {
	return NewDeckBuilder().
		WithTitle("Minimal").
		WithSlideCount(1).
		Build()
}

// LargeDeck creates a deck with many slides
func LargeDeck() *entities.Deck {
	return NewDeckBuilder().
		WithTitle("Large Deck").
		WithSlideCount(50).
		Build()
}
