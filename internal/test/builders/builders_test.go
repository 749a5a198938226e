package builders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/deckgen/internal/adapters/secondary/parser"
)

func TestDeckBuilder(t *testing.T) {
	t.Run("builds deck with defaults", func(t *testing.T) {
		deck := NewDeckBuilder().Build()

		assert.Equal(t, "Test Deck", deck.Title)
		assert.Empty(t, deck.Specs)
		assert.Equal(t, 1, deck.PageCount())
	})

	t.Run("builds deck with custom values", func(t *testing.T) {
		deck := NewDeckBuilder().
			WithTitle("Custom").
			WithSlideCount(3).
			Build()

		assert.Equal(t, "Custom", deck.Title)
		assert.Len(t, deck.Specs, 3)
		assert.Equal(t, "Slide 3", deck.Specs[2].Title)
	})

	t.Run("build copies specs", func(t *testing.T) {
		b := NewDeckBuilder().WithSpec(NewSlideSpecBuilder().Build())
		deck := b.Build()
		deck.Specs[0].Lines[0] = "changed"

		assert.Equal(t, "First point", b.Build().Specs[0].Lines[0])
	})

	t.Run("helpers", func(t *testing.T) {
		assert.Len(t, MinimalDeck().Specs, 1)
		assert.Len(t, LargeDeck().Specs, 50)
	})
}

func TestRaw_RoundTripsThroughParser(t *testing.T) {
	spec := NewSlideSpecBuilder().WithTitle("Topics").WithLines("One", "Two").Build()

	parsed, err := parser.NewSpecParser().Parse(Raw(spec))
	require.NoError(t, err)
	assert.Equal(t, spec, parsed)
}
