package entities

import (
	"strconv"
)

// NavAction is a transition of the page navigation state machine
type NavAction int

const (
	// NavNone ignores the input
	NavNone NavAction = iota
	// NavAdvance moves to the next page
	NavAdvance
	// NavRetreat moves to the previous page
	NavRetreat
	// NavFirst jumps to the cover
	NavFirst
	// NavLast jumps to the final page
	NavLast
)

// navKeys maps key names (as reported by KeyboardEvent.key) to actions.
// The embedded client script binds exactly this set.
var navKeys = map[string]NavAction{
	"ArrowRight": NavAdvance,
	"PageDown":   NavAdvance,
	"ArrowLeft":  NavRetreat,
	"PageUp":     NavRetreat,
	"Home":       NavFirst,
	"End":        NavLast,
}

// KeyAction returns the navigation action bound to key
func KeyAction(key string) NavAction {
	return navKeys[key]
}

// NavKeys returns the bound key names
func NavKeys() []string {
	keys := make([]string, 0, len(navKeys))
	for k := range navKeys {
		keys = append(keys, k)
	}
	return keys
}

// Navigator is the paging state of a generated document: exactly one of
// Total pages is active. Methods return a new state and never mutate.
type Navigator struct {
	Index int `json:"index"`
	Total int `json:"total"`
}

// NewNavigator returns the initial state (cover page active)
func NewNavigator(total int) Navigator {
	if total < 1 {
		total = 1
	}
	return Navigator{Index: 0, Total: total}
}

// Go moves to page n, clamped to [0, Total-1]
func (n Navigator) Go(next int) Navigator {
	n.Index = clamp(next, 0, n.Total-1)
	return n
}

// Advance moves one page forward
func (n Navigator) Advance() Navigator { return n.Go(n.Index + 1) }

// Retreat moves one page back
func (n Navigator) Retreat() Navigator { return n.Go(n.Index - 1) }

// First jumps to the cover
func (n Navigator) First() Navigator { return n.Go(0) }

// Last jumps to the final page
func (n Navigator) Last() Navigator { return n.Go(n.Total - 1) }

// Apply performs action
func (n Navigator) Apply(action NavAction) Navigator {
	switch action {
	case NavAdvance:
		return n.Advance()
	case NavRetreat:
		return n.Retreat()
	case NavFirst:
		return n.First()
	case NavLast:
		return n.Last()
	default:
		return n
	}
}

// Pager returns the position indicator text, e.g. "2 / 4"
func (n Navigator) Pager() string {
	return strconv.Itoa(n.Index+1) + " / " + strconv.Itoa(n.Total)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(hi, v))
}
