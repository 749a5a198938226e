package ports

import (
	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

// SpecParser defines the interface for parsing compact slide definitions
type SpecParser interface {
	// Parse converts one "Title|line1\nline2" value into a slide spec
	Parse(raw string) (entities.SlideSpec, error)

	// ParseAll parses values in order, failing on the first malformed one
	ParseAll(raws []string) ([]entities.SlideSpec, error)
}
