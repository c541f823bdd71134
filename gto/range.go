package gto

import (
	"fmt"
	"sort"

	"github.com/preflop-tools/gtocoach/poker"
)

// Confidence indicates how explicitly a chart entry specifies its action.
type Confidence int

const (
	ConfidenceLow Confidence = iota
	ConfidenceMedium
	ConfidenceHigh
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	default:
		return "low"
	}
}

// ParseConfidence converts a confidence label to a Confidence.
func ParseConfidence(s string) (Confidence, error) {
	switch s {
	case "low":
		return ConfidenceLow, nil
	case "medium":
		return ConfidenceMedium, nil
	case "high":
		return ConfidenceHigh, nil
	default:
		return ConfidenceLow, fmt.Errorf("invalid confidence %q", s)
	}
}

// HandRange maps starting-hand class notations to inclusion frequencies in
// [0, 1]. A frequency of zero means excluded. Ranges are built by the parser
// and treated as immutable afterwards.
type HandRange struct {
	hands map[string]float64
}

// NewHandRange creates an empty range.
func NewHandRange() *HandRange {
	return &HandRange{hands: make(map[string]float64)}
}

// Add includes a hand class at the given frequency. The notation must be one
// of the 169 canonical classes and the frequency must lie in [0, 1].
func (r *HandRange) Add(notation string, frequency float64) error {
	if !poker.ValidNotation(notation) {
		return fmt.Errorf("invalid hand notation %q", notation)
	}
	if frequency < 0 || frequency > 1 {
		return fmt.Errorf("frequency %v out of range [0,1] for %s", frequency, notation)
	}
	r.hands[notation] = frequency
	return nil
}

// Frequency returns the inclusion frequency for a hand class, zero if the
// class is absent.
func (r *HandRange) Frequency(notation string) float64 {
	return r.hands[notation]
}

// Contains reports whether the hand class is included with nonzero frequency.
func (r *HandRange) Contains(notation string) bool {
	return r.hands[notation] > 0
}

// Len returns the number of hand classes in the range.
func (r *HandRange) Len() int {
	return len(r.hands)
}

// All calls fn for every (notation, frequency) pair in a fixed order. The
// iteration is finite and restartable: repeated calls see the same sequence.
func (r *HandRange) All(fn func(notation string, frequency float64) bool) {
	notations := make([]string, 0, len(r.hands))
	for n := range r.hands {
		notations = append(notations, n)
	}
	sort.Strings(notations)
	for _, n := range notations {
		if !fn(n, r.hands[n]) {
			return
		}
	}
}

// ToMap returns a plain key-value representation.
func (r *HandRange) ToMap() map[string]any {
	hands := make(map[string]float64, len(r.hands))
	for n, f := range r.hands {
		hands[n] = f
	}
	return map[string]any{
		"hands":      hands,
		"hand_count": len(hands),
	}
}

// RangeKey identifies a chart column: the acting position and the scenario
// it faces.
type RangeKey struct {
	Position poker.Position
	Scenario Scenario
}

func (k RangeKey) String() string {
	return fmt.Sprintf("%s/%s", k.Position, k.Scenario)
}

// Entry is a single chart cell: the recommended action for a hand class,
// how explicit the chart is about it, and an explanation template result.
type Entry struct {
	Action      Action
	Confidence  Confidence
	Frequency   float64
	Explanation string
}

// GTORange holds the parsed chart column for one (position, scenario) pair:
// a mapping from hand-class notation to entries, built once at parse time
// and read-only thereafter.
type GTORange struct {
	Key     RangeKey
	entries map[string]Entry
}

// newGTORange creates an empty range for a chart column.
func newGTORange(key RangeKey) *GTORange {
	return &GTORange{Key: key, entries: make(map[string]Entry)}
}

func (g *GTORange) add(notation string, e Entry) error {
	if !poker.ValidNotation(notation) {
		return fmt.Errorf("invalid hand notation %q", notation)
	}
	if prev, ok := g.entries[notation]; ok {
		return fmt.Errorf("hand %s listed twice (as %s and %s)", notation, prev.Action, e.Action)
	}
	g.entries[notation] = e
	return nil
}

// Lookup returns the chart entry for a hand class, if present.
func (g *GTORange) Lookup(notation string) (Entry, bool) {
	e, ok := g.entries[notation]
	return e, ok
}

// Len returns the number of explicit hand classes in the range.
func (g *GTORange) Len() int {
	return len(g.entries)
}

// Actions returns the distinct actions appearing in the range, in label order.
func (g *GTORange) Actions() []Action {
	seen := make(map[Action]bool)
	for _, e := range g.entries {
		seen[e.Action] = true
	}
	var out []Action
	for _, a := range actions {
		if seen[a] {
			out = append(out, a)
		}
	}
	return out
}

// HandsFor returns the hand classes recommended for a given action as a
// HandRange carrying the per-hand frequencies.
func (g *GTORange) HandsFor(action Action) *HandRange {
	r := NewHandRange()
	for n, e := range g.entries {
		if e.Action == action {
			r.hands[n] = e.Frequency
		}
	}
	return r
}

// All calls fn for every (notation, entry) pair in sorted notation order.
func (g *GTORange) All(fn func(notation string, e Entry) bool) {
	notations := make([]string, 0, len(g.entries))
	for n := range g.entries {
		notations = append(notations, n)
	}
	sort.Strings(notations)
	for _, n := range notations {
		if !fn(n, g.entries[n]) {
			return
		}
	}
}

// ToMap returns a plain key-value representation.
func (g *GTORange) ToMap() map[string]any {
	byAction := make(map[string]any)
	for _, a := range g.Actions() {
		byAction[a.String()] = g.HandsFor(a).ToMap()
	}
	return map[string]any{
		"position":      g.Key.Position.ToMap(),
		"scenario":      g.Key.Scenario.String(),
		"action_ranges": byAction,
	}
}
