package renderer

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/deckgen/internal/adapters/secondary/illustration"
	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

func newTestAssembler(t *testing.T) (*SlideRenderer, *DocumentAssembler) {
	t.Helper()

	gen := illustration.NewGenerator()
	assembler, err := NewDocumentAssembler(gen, "en")
	require.NoError(t, err)

	return NewSlideRenderer(gen), assembler
}

func TestDocumentAssembler_Assemble(t *testing.T) {
	slides, assembler := newTestAssembler(t)

	fragments := []entities.Fragment{
		slides.Render(1, entities.SlideSpec{Title: "Intro", Lines: []string{"Welcome"}}),
		slides.Render(2, entities.SlideSpec{Title: "Topics", Lines: []string{"One", "Two"}}),
	}

	doc, err := assembler.Assemble("Demo", fragments)
	require.NoError(t, err)

	html := doc.HTML

	t.Run("document structure", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
		assert.Contains(t, html, `<html lang="en">`)
		assert.Contains(t, html, "<title>Demo</title>")
		assert.Contains(t, html, `<script src="https://cdn.tailwindcss.com"></script>`)
		assert.True(t, strings.HasSuffix(strings.TrimSpace(html), "</html>"))
	})

	t.Run("cover then slides in order", func(t *testing.T) {
		cover := strings.Index(html, "Demo<br/>")
		welcome := strings.Index(html, ">Welcome</p>")
		one := strings.Index(html, ">One</li>")
		two := strings.Index(html, ">Two</li>")

		require.True(t, cover >= 0 && welcome >= 0 && one >= 0 && two >= 0)
		assert.Less(t, cover, welcome)
		assert.Less(t, welcome, one)
		assert.Less(t, one, two)
	})

	t.Run("three pages and pager", func(t *testing.T) {
		assert.Equal(t, 3, doc.PageCount)
		assert.Equal(t, 3, strings.Count(html, "data-slide "))
		assert.Contains(t, html, `aria-live="polite">1 / 3</output>`)
	})

	t.Run("theme and script embedded", func(t *testing.T) {
		assert.Contains(t, html, "tailwind.config = {")
		assert.Contains(t, html, `"accent": "#3ecf8e"`)
		assert.Contains(t, html, `"deck": "0 24px 60px rgba(0,0,0,.35)"`)
		assert.Contains(t, html, NavigationScript)
		assert.Contains(t, html, `id="coverGradient"`)
	})

	t.Run("slides are joined by real newlines", func(t *testing.T) {
		assert.NotContains(t, html, `</section>\n`)
	})

	t.Run("no template leftovers", func(t *testing.T) {
		assert.NotContains(t, html, "{{")
		assert.NotContains(t, html, "<no value>")
	})
}

func TestDocumentAssembler_EscapesTitle(t *testing.T) {
	_, assembler := newTestAssembler(t)

	doc, err := assembler.Assemble(`<script>alert("x")</script> & more`, nil)
	require.NoError(t, err)

	escaped := "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt; &amp; more"
	assert.Contains(t, doc.HTML, "<title>"+escaped+"</title>")
	assert.Contains(t, doc.HTML, escaped+"<br/>")
	assert.NotContains(t, doc.HTML, `<script>alert("x")`)
	assert.Equal(t, 1, doc.PageCount)
	assert.Contains(t, doc.HTML, ">1 / 1</output>")
}

func TestDocumentAssembler_DeckID(t *testing.T) {
	slides, assembler := newTestAssembler(t)
	fragments := []entities.Fragment{slides.Render(1, entities.SlideSpec{Title: "A"})}

	first, err := assembler.Assemble("Deck", fragments)
	require.NoError(t, err)
	second, err := assembler.Assemble("Deck", fragments)
	require.NoError(t, err)
	other, err := assembler.Assemble("Other deck", fragments)
	require.NoError(t, err)

	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, first.ID, second.ID)
	assert.NotEqual(t, first.ID, other.ID)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f-]{36}$`), first.ID)
	assert.Contains(t, first.HTML, `data-deck-id="`+first.ID+`"`)
}

func TestDocumentAssembler_Lang(t *testing.T) {
	gen := illustration.NewGenerator()

	assembler, err := NewDocumentAssembler(gen, "zh-CN")
	require.NoError(t, err)
	doc, err := assembler.Assemble("T", nil)
	require.NoError(t, err)
	assert.Contains(t, doc.HTML, `<html lang="zh-CN">`)

	assembler, err = NewDocumentAssembler(gen, "")
	require.NoError(t, err)
	doc, err = assembler.Assemble("T", nil)
	require.NoError(t, err)
	assert.Contains(t, doc.HTML, `<html lang="en">`)
}

func TestNavigationScript_BindsNavigatorKeys(t *testing.T) {
	for _, key := range entities.NavKeys() {
		assert.Contains(t, NavigationScript, "case '"+key+"':", "key %s not bound", key)
	}
	assert.Contains(t, NavigationScript, "Math.max(0, Math.min(slides.length - 1, next))")
	assert.Contains(t, NavigationScript, "let index = 0;")
}

func TestTailwindConfig(t *testing.T) {
	cfg, err := TailwindConfig(entities.DeckTheme())
	require.NoError(t, err)

	for _, want := range []string{`"bg": "#0b0d10"`, `"panel": "#111318"`, `"muted": "#a1a1aa"`, `"accentHover": "#2fb67b"`, `"border": "#22262e"`, `"Inter"`} {
		assert.Contains(t, cfg, want)
	}

	again, err := TailwindConfig(entities.DeckTheme())
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
