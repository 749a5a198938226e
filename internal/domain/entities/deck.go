package entities

import (
	"fmt"
)

// Deck represents the parsed input for one generated presentation
type Deck struct {
	// Title is the deck title shown on the cover and in the document title
	Title string `json:"title"`

	// Specs contains the author slides in presentation order
	Specs []SlideSpec `json:"specs"`
}

// PageCount returns the number of pages including the cover
func (d *Deck) PageCount() int {
	return 1 + len(d.Specs)
}

// GetSpecBySeed returns an author slide by its 1-based position
func (d *Deck) GetSpecBySeed(seed int) (*SlideSpec, error) {
	if seed < 1 || seed > len(d.Specs) {
		return nil, fmt.Errorf("slide %d out of range (1-%d)", seed, len(d.Specs))
	}
	return &d.Specs[seed-1], nil
}

// Document is the assembled output artifact
type Document struct {
	// ID is a deterministic identifier derived from the document content
	ID string `json:"id"`

	// HTML is the complete document markup
	HTML string `json:"-"`

	// PageCount is the cover plus every author slide
	PageCount int `json:"pageCount"`
}

// Bytes returns the document markup ready to be written as-is
func (d *Document) Bytes() []byte {
	return []byte(d.HTML)
}

// DefaultSpecs returns the built-in example deck used when no slides are
// given on the command line. A fresh slice is returned on every call.
func DefaultSpecs() []SlideSpec {
	return []SlideSpec{
		{
			Title: "Task Definition",
			Lines: []string{
				"Goal: predict users likely to churn in the next 30 days",
				"Business value: better retention and marketing spend",
				"Key metrics: AUC, Recall@TopK",
			},
		},
		{
			Title: "Data & Features",
			Lines: []string{
				"Sample size: 1.2M user records",
				"Features: activity, payment behavior, support interactions",
				"Risks: class imbalance and temporal leakage",
			},
		},
		{
			Title: "Evaluation & Iteration",
			Lines: []string{
				"Baseline LR: AUC 0.73",
				"Current XGBoost: AUC 0.81",
				"Next: threshold tuning + online A/B validation",
			},
		},
	}
}
