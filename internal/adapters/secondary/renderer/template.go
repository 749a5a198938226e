package renderer

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
)

// deckNamespace scopes name-based deck IDs to this generator
var deckNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/fredcamaral/deckgen"))

// DocumentAssembler implements the DocumentAssembler port using Go templates
type DocumentAssembler struct {
	template    *template.Template
	illustrator ports.Illustrator
	lang        string
	themeConfig string
}

// NewDocumentAssembler creates a new template-based assembler. lang is the
// value of the <html lang> attribute.
func NewDocumentAssembler(illustrator ports.Illustrator, lang string) (*DocumentAssembler, error) {
	tmpl := template.New("document").Funcs(template.FuncMap{
		"escape": Escape,
	})

	if _, err := tmpl.Parse(documentTemplate); err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}

	themeConfig, err := TailwindConfig(entities.DeckTheme())
	if err != nil {
		return nil, err
	}

	if lang == "" {
		lang = "en"
	}

	return &DocumentAssembler{
		template:    tmpl,
		illustrator: illustrator,
		lang:        lang,
		themeConfig: themeConfig,
	}, nil
}

// Assemble builds the complete document: cover page first, then fragments
// in order, then the pager and navigation script
func (a *DocumentAssembler) Assemble(deckTitle string, fragments []entities.Fragment) (*entities.Document, error) {
	slides := make([]string, len(fragments))
	for i, f := range fragments {
		slides[i] = f.String()
	}
	joined := strings.Join(slides, "\n")

	pageCount := 1 + len(fragments)
	deckID := uuid.NewSHA1(deckNamespace, []byte(deckTitle+"\x00"+joined)).String()

	data := struct {
		Lang        string
		Title       string
		DeckID      string
		ThemeConfig string
		CoverSVG    string
		Slides      string
		Pager       string
		Script      string
	}{
		Lang:        a.lang,
		Title:       deckTitle,
		DeckID:      deckID,
		ThemeConfig: a.themeConfig,
		CoverSVG:    a.illustrator.Cover(),
		Slides:      joined,
		Pager:       entities.NewNavigator(pageCount).Pager(),
		Script:      NavigationScript,
	}

	var buf strings.Builder
	if err := a.template.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing document template: %w", err)
	}

	return &entities.Document{
		ID:        deckID,
		HTML:      buf.String(),
		PageCount: pageCount,
	}, nil
}

// TailwindConfig renders theme as the object assigned to tailwind.config
func TailwindConfig(theme entities.Theme) (string, error) {
	p := theme.Palette
	cfg := map[string]interface{}{
		"theme": map[string]interface{}{
			"extend": map[string]interface{}{
				"colors": map[string]interface{}{
					theme.Name: map[string]string{
						"bg":          p.Background,
						"panel":       p.Panel,
						"text":        p.Text,
						"muted":       p.Muted,
						"accent":      p.Accent,
						"accentHover": p.AccentHover,
						"border":      p.Border,
					},
				},
				"fontFamily": map[string][]string{
					"sans": theme.FontFamily,
				},
				"boxShadow": map[string]string{
					theme.Name: theme.Shadow,
				},
			},
		},
	}

	out, err := json.MarshalIndent(cfg, "    ", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding theme config: %w", err)
	}

	return string(out), nil
}

// NavigationScript pages through [data-slide] sections. It is the client
// side of entities.Navigator: same transitions, same key map, index
// clamped to [0, N-1], starting at the cover on every load.
const NavigationScript = `(() => {
      const slides = [...document.querySelectorAll('[data-slide]')];
      const pager = document.getElementById('pager');
      let index = 0;

      function clamp(next) {
        return Math.max(0, Math.min(slides.length - 1, next));
      }

      function render() {
        slides.forEach((slide, i) => {
          slide.classList.toggle('hidden', i !== index);
          slide.classList.toggle('flex', i === index);
        });
        pager.textContent = ` + "`${index + 1} / ${slides.length}`" + `;
      }

      function go(next) {
        index = clamp(next);
        render();
      }

      document.addEventListener('keydown', (event) => {
        switch (event.key) {
          case 'ArrowRight':
          case 'PageDown':
            go(index + 1);
            break;
          case 'ArrowLeft':
          case 'PageUp':
            go(index - 1);
            break;
          case 'Home':
            go(0);
            break;
          case 'End':
            go(slides.length - 1);
            break;
        }
      });

      render();
    })();`

const documentTemplate = `<!doctype html>
<html lang="{{.Lang}}">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <meta name="generator" content="deckgen" />
  <title>{{escape .Title}}</title>
  <script src="https://cdn.tailwindcss.com"></script>
  <script>
    tailwind.config = {{.ThemeConfig}};
  </script>
  <style>
    .text-balance { text-wrap: balance; }
  </style>
</head>
<body class="m-0 min-h-screen bg-deck-bg text-deck-text antialiased">
  <main class="mx-auto grid min-h-screen w-full place-items-center p-3 md:p-6">
    <section class="relative h-[calc(100vh-2rem)] max-h-[920px] w-full max-w-[1600px] overflow-hidden rounded-2xl border border-deck-border bg-gradient-to-b from-[#10131a] to-[#0b0d10] shadow-deck" data-deck-id="{{.DeckID}}">
      <section class="slide h-full w-full flex-col justify-between p-12 md:p-16" data-slide data-index="0">
        <div class="space-y-8">
          <p class="inline-flex rounded-full border border-deck-border bg-white/5 px-4 py-1 text-sm font-medium tracking-wide text-deck-muted">Single HTML + TailwindCSS</p>
          <h1 class="max-w-5xl text-6xl md:text-7xl lg:text-8xl font-semibold leading-[1.05] tracking-tight text-balance">
            {{escape .Title}}<br/><span class="text-deck-accent">Clear on any projector, ready to present</span>
          </h1>
          <p class="max-w-4xl text-2xl md:text-3xl leading-relaxed text-deck-muted">Large type, a high-contrast dark theme and inline SVG graphics, tuned for classrooms and meeting rooms.</p>
        </div>
        <div class="grid gap-8">
          {{.CoverSVG}}
          <aside class="notes hidden">Opening: state the goal first, then the structure.</aside>
        </div>
      </section>
{{.Slides}}
      <output id="pager" class="absolute bottom-4 right-4 rounded-full border border-deck-border bg-black/40 px-4 py-2 text-base text-deck-muted" aria-live="polite">{{.Pager}}</output>
    </section>
  </main>

  <script>
    {{.Script}}
  </script>
</body>
</html>
`
