package entities

import (
	"strings"
)

// SlideSpec is the parsed form of one author-supplied slide definition
type SlideSpec struct {
	// Title is the slide heading, trimmed of surrounding whitespace
	Title string `json:"title" yaml:"title"`

	// Lines holds the body lines in presentation order (never blank)
	Lines []string `json:"lines" yaml:"lines"`
}

// NewSlideSpec builds a spec, trimming the title and dropping blank lines
func NewSlideSpec(title string, lines []string) SlideSpec {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}

	return SlideSpec{
		Title: strings.TrimSpace(title),
		Lines: kept,
	}
}

// Body returns the body variant the renderer should emit for this spec
func (s SlideSpec) Body() Body {
	return NewBody(s.Lines)
}

// BodyKind enumerates the three ways a slide body can be rendered
type BodyKind int

const (
	// BodyEmpty means the author supplied no lines; a placeholder is shown
	BodyEmpty BodyKind = iota
	// BodySingle means exactly one line, shown as a large paragraph
	BodySingle
	// BodyList means two or more lines, shown as a bullet list
	BodyList
)

// String returns the kind name
func (k BodyKind) String() string {
	switch k {
	case BodyEmpty:
		return "empty"
	case BodySingle:
		return "single"
	case BodyList:
		return "list"
	default:
		return "unknown"
	}
}

// Body is a tagged variant over the slide body. Lines is the payload:
// nil for BodyEmpty, one entry for BodySingle, two or more for BodyList.
type Body struct {
	Kind  BodyKind
	Lines []string
}

// NewBody classifies lines into a Body
func NewBody(lines []string) Body {
	switch len(lines) {
	case 0:
		return Body{Kind: BodyEmpty}
	case 1:
		return Body{Kind: BodySingle, Lines: lines}
	default:
		return Body{Kind: BodyList, Lines: lines}
	}
}

// Line returns the single line of a BodySingle body, or "" otherwise
func (b Body) Line() string {
	if b.Kind != BodySingle {
		return ""
	}
	return b.Lines[0]
}

// Fragment is the markup for one complete page. It is never mutated after
// the renderer produces it.
type Fragment string

// String returns the fragment markup
func (f Fragment) String() string {
	return string(f)
}
