package entities

// Palette holds the deck colors, keyed the way the Tailwind config names them
type Palette struct {
	Background  string
	Panel       string
	Text        string
	Muted       string
	Accent      string
	AccentHover string
	Border      string
}

// Theme is the single visual theme baked into every document
type Theme struct {
	Name       string
	Palette    Palette
	Shadow     string
	FontFamily []string
}

// DeckTheme returns the fixed dark + green theme. It is a value, so callers
// cannot change what other documents get.
func DeckTheme() Theme {
	return Theme{
		Name: "deck",
		Palette: Palette{
			Background:  "#0b0d10",
			Panel:       "#111318",
			Text:        "#f3f4f6",
			Muted:       "#a1a1aa",
			Accent:      "#3ecf8e",
			AccentHover: "#2fb67b",
			Border:      "#22262e",
		},
		Shadow:     "0 24px 60px rgba(0,0,0,.35)",
		FontFamily: []string{"Inter", "SF Pro Display", "Segoe UI", "PingFang SC", "sans-serif"},
	}
}
