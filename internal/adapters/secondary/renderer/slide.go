package renderer

import (
	"fmt"
	"strings"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
)

const (
	// PlaceholderText marks a slide the author still has to fill in
	PlaceholderText = "TODO: add content"

	// NotesPlaceholder is the default speaker-notes text
	NotesPlaceholder = "TODO: speaker notes"
)

// SlideRenderer renders slide specs into page fragments
type SlideRenderer struct {
	illustrator ports.Illustrator
}

// NewSlideRenderer creates a new slide renderer
func NewSlideRenderer(illustrator ports.Illustrator) *SlideRenderer {
	return &SlideRenderer{
		illustrator: illustrator,
	}
}

// Render converts the slide at 1-based position index into a hidden page
func (r *SlideRenderer) Render(index int, spec entities.SlideSpec) entities.Fragment {
	var b strings.Builder

	fmt.Fprintf(&b, `    <section class="slide hidden h-full w-full flex-col justify-between p-12 md:p-16" data-slide data-index="%d">
      <div class="space-y-7">
        <h2 class="text-5xl md:text-6xl font-semibold tracking-tight text-balance text-deck-text">%s</h2>
        `, index, Escape(spec.Title))
	b.WriteString(renderBody(spec.Body()))
	fmt.Fprintf(&b, `
      </div>
      <div class="pt-6">%s</div>
      <aside class="notes hidden">%s</aside>
    </section>`, r.illustrator.Generate(index), NotesPlaceholder)

	return entities.Fragment(b.String())
}

// renderBody emits the markup for each body variant
func renderBody(body entities.Body) string {
	switch body.Kind {
	case entities.BodySingle:
		return `<p class="text-3xl leading-relaxed text-deck-text">` + Escape(body.Line()) + `</p>`
	case entities.BodyList:
		var b strings.Builder
		b.WriteString(`<ul class="space-y-3 pl-8 list-disc marker:text-deck-accent">`)
		for _, line := range body.Lines {
			b.WriteString(`<li class="text-2xl leading-relaxed text-deck-text">`)
			b.WriteString(Escape(line))
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul>`)
		return b.String()
	default:
		return `<p class="text-2xl text-deck-muted">` + PlaceholderText + `</p>`
	}
}
