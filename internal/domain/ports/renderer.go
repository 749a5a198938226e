package ports

import (
	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

// Illustrator defines the interface for inline SVG decorations
type Illustrator interface {
	// Generate returns the decoration for the slide at 1-based position seed
	Generate(seed int) string

	// Cover returns the fixed cover decoration
	Cover() string
}

// SlideRenderer defines the interface for rendering one slide page
type SlideRenderer interface {
	// Render turns the slide at 1-based position index into a page fragment
	Render(index int, spec entities.SlideSpec) entities.Fragment
}

// DocumentAssembler defines the interface for building the final document
type DocumentAssembler interface {
	// Assemble joins the cover page and fragments into one document
	Assemble(deckTitle string, fragments []entities.Fragment) (*entities.Document, error)
}
