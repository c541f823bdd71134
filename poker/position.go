package poker

import "fmt"

// Position represents a seat at a six-handed table. The zero value is
// UnknownPosition so uninitialized positions are never mistaken for UTG.
type Position int

const (
	UnknownPosition Position = iota
	UTG
	MP
	CO
	BTN
	SB
	BB
)

// sixMax lists the 6-max positions in preflop acting order: earliest
// position first, blinds last. The button sits immediately before the small
// blind in seating but the blinds act last before the flop.
var sixMax = []Position{UTG, MP, CO, BTN, SB, BB}

// String returns the short position name.
func (p Position) String() string {
	switch p {
	case UTG:
		return "UTG"
	case MP:
		return "MP"
	case CO:
		return "CO"
	case BTN:
		return "BTN"
	case SB:
		return "SB"
	case BB:
		return "BB"
	default:
		return "Unknown"
	}
}

// Name returns the full position name.
func (p Position) Name() string {
	switch p {
	case UTG:
		return "Under The Gun"
	case MP:
		return "Middle Position"
	case CO:
		return "Cut Off"
	case BTN:
		return "Button"
	case SB:
		return "Small Blind"
	case BB:
		return "Big Blind"
	default:
		return "Unknown"
	}
}

// Order returns the preflop acting-order index (UTG=0 ... BB=5), or -1 for
// an unknown position.
func (p Position) Order() int {
	for i, pos := range sixMax {
		if pos == p {
			return i
		}
	}
	return -1
}

// ActsBefore reports whether p acts before other preflop.
func (p Position) ActsBefore(other Position) bool {
	return p.Order() >= 0 && other.Order() >= 0 && p.Order() < other.Order()
}

// DistanceFromButton returns how many seats p sits counter-clockwise from
// the button (BTN=0, CO=1, ... SB=5 going the other way around).
func (p Position) DistanceFromButton() int {
	o := p.Order()
	if o < 0 {
		return -1
	}
	btn := BTN.Order()
	return (btn - o + len(sixMax)) % len(sixMax)
}

// ParsePosition converts a short or full position name to a Position.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "UTG", "utg", "Under The Gun":
		return UTG, nil
	case "MP", "mp", "Middle Position":
		return MP, nil
	case "CO", "co", "Cut Off", "Cutoff":
		return CO, nil
	case "BTN", "btn", "Button":
		return BTN, nil
	case "SB", "sb", "Small Blind":
		return SB, nil
	case "BB", "bb", "Big Blind":
		return BB, nil
	default:
		return UnknownPosition, fmt.Errorf("invalid position %q", s)
	}
}

// PositionsForTableSize returns the positions valid for an n-seat table in
// seating order. Only 6-max tables are supported; other sizes are an
// extension point.
func PositionsForTableSize(n int) ([]Position, error) {
	if n != 6 {
		return nil, fmt.Errorf("unsupported table size %d: only 6-max tables are supported", n)
	}
	out := make([]Position, len(sixMax))
	copy(out, sixMax)
	return out, nil
}

// ActingOrder returns the given positions sorted into preflop acting order.
// Unknown positions are dropped.
func ActingOrder(positions []Position) []Position {
	out := make([]Position, 0, len(positions))
	for _, p := range sixMax {
		for _, q := range positions {
			if p == q {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// ToMap returns a plain key-value representation for serialization by the
// outer layer.
func (p Position) ToMap() map[string]any {
	return map[string]any{
		"short_name": p.String(),
		"full_name":  p.Name(),
		"order":      p.Order(),
	}
}
