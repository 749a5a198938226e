// Package illustration generates the inline SVG decorations embedded in
// every page. Output depends only on the seed, so documents are
// reproducible byte for byte.
package illustration

import (
	"fmt"
	"strconv"
)

// variants is the number of distinct curve offsets
const variants = 4

// Generator implements the Illustrator port
type Generator struct{}

// NewGenerator creates a new illustration generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Offset returns the vertical curve offset for seed: 20, 32, 44 or 56.
// Negative seeds wrap the same way positive ones do.
func Offset(seed int) int {
	m := seed % variants
	if m < 0 {
		m += variants
	}
	return 20 + m*12
}

// GradientID returns the gradient identifier used by the fragment for seed
func GradientID(seed int) string {
	return "g" + strconv.Itoa(seed)
}

// Generate returns the slide decoration for seed
func (g *Generator) Generate(seed int) string {
	offset := Offset(seed)
	id := GradientID(seed)

	return fmt.Sprintf(slideSVG, id, 170+offset, 210-offset, id, 172+offset)
}

// Cover returns the fixed cover decoration
func (g *Generator) Cover() string {
	return coverSVG
}

const slideSVG = `<svg viewBox="0 0 640 280" role="img" aria-label="Illustration" class="w-full max-w-[760px] rounded-2xl border border-deck-border bg-black/30">
        <defs>
          <linearGradient id="%[1]s" x1="0" y1="0" x2="1" y2="1">
            <stop offset="0%%" stop-color="#3ecf8e"/>
            <stop offset="100%%" stop-color="#2fb67b"/>
          </linearGradient>
        </defs>
        <rect x="0" y="0" width="640" height="280" fill="#0b0d10"/>
        <path d="M0 238 C120 %[2]d, 220 %[3]d, 320 180 C420 150, 520 205, 640 120" fill="none" stroke="url(#%[4]s)" stroke-width="7"/>
        <circle cx="120" cy="%[5]d" r="6" fill="#3ecf8e"/>
        <circle cx="320" cy="180" r="6" fill="#3ecf8e"/>
        <circle cx="520" cy="205" r="6" fill="#3ecf8e"/>
        <text x="26" y="38" fill="#a1a1aa" font-size="18">Inline SVG Visual</text>
      </svg>`

const coverSVG = `<svg viewBox="0 0 820 220" role="img" aria-label="Cover illustration" class="w-full max-w-[980px] rounded-2xl border border-deck-border bg-black/30">
            <defs>
              <linearGradient id="coverGradient" x1="0" y1="0" x2="1" y2="1">
                <stop offset="0%" stop-color="#3ecf8e"/>
                <stop offset="100%" stop-color="#2fb67b"/>
              </linearGradient>
            </defs>
            <rect width="820" height="220" fill="#0b0d10"/>
            <path d="M40 166 L200 106 L360 140 L520 80 L780 132" stroke="url(#coverGradient)" stroke-width="8" fill="none"/>
            <circle cx="200" cy="106" r="7" fill="#3ecf8e"/>
            <circle cx="360" cy="140" r="7" fill="#3ecf8e"/>
            <circle cx="520" cy="80" r="7" fill="#3ecf8e"/>
            <text x="36" y="42" fill="#a1a1aa" font-size="20">Inline SVG Visual</text>
          </svg>`
