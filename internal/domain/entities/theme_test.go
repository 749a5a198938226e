package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeckTheme(t *testing.T) {
	theme := DeckTheme()

	assert.Equal(t, "deck", theme.Name)
	assert.Equal(t, "#0b0d10", theme.Palette.Background)
	assert.Equal(t, "#3ecf8e", theme.Palette.Accent)
	assert.Equal(t, "0 24px 60px rgba(0,0,0,.35)", theme.Shadow)

	theme.FontFamily[0] = "Comic Sans"
	assert.Equal(t, "Inter", DeckTheme().FontFamily[0])
}
