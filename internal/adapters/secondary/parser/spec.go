package parser

import (
	"strings"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

const (
	// titleSeparator splits the title from the body
	titleSeparator = "|"

	// lineSeparator is the literal backslash-n sequence that separates body
	// lines. Shell users type it inside quotes; real newlines are not split.
	lineSeparator = `\n`
)

// SpecParser implements the SpecParser port for "Title|line1\nline2" values
type SpecParser struct{}

// NewSpecParser creates a new slide spec parser
func NewSpecParser() *SpecParser {
	return &SpecParser{}
}

// Parse converts one raw slide value into a spec
func (p *SpecParser) Parse(raw string) (entities.SlideSpec, error) {
	title, body, found := strings.Cut(raw, titleSeparator)
	if !found {
		return entities.SlideSpec{}, &entities.FormatError{Raw: raw}
	}

	return entities.NewSlideSpec(title, strings.Split(body, lineSeparator)), nil
}

// ParseAll parses values in order. The first malformed value aborts parsing
// and is reported with its 1-based position.
func (p *SpecParser) ParseAll(raws []string) ([]entities.SlideSpec, error) {
	specs := make([]entities.SlideSpec, 0, len(raws))
	for i, raw := range raws {
		spec, err := p.Parse(raw)
		if err != nil {
			return nil, &entities.FormatError{Raw: raw, Position: i + 1}
		}
		specs = append(specs, spec)
	}

	return specs, nil
}
