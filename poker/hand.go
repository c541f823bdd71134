package poker

import "fmt"

// InvalidHandError is returned when a hand is constructed from a duplicate
// card pair.
type InvalidHandError struct {
	Card Card
}

func (e *InvalidHandError) Error() string {
	return fmt.Sprintf("invalid hand: duplicate card %s", e.Card)
}

// Hand is a two-card starting hand. The higher-ranked card is always stored
// first so notation and comparisons are independent of construction order.
type Hand struct {
	High Card
	Low  Card
}

// NewHand creates a hand from two hole cards. The two cards must be distinct
// (rank, suit) pairs.
func NewHand(c1, c2 Card) (Hand, error) {
	if c1 == c2 {
		return Hand{}, &InvalidHandError{Card: c1}
	}
	if c2.Rank > c1.Rank {
		c1, c2 = c2, c1
	}
	return Hand{High: c1, Low: c2}, nil
}

// ParseHand parses a four-character hand string like "AhKs".
func ParseHand(s string) (Hand, error) {
	if len(s) != 4 {
		return Hand{}, fmt.Errorf("invalid hand %q: want two cards", s)
	}
	c1, err := ParseCard(s[:2])
	if err != nil {
		return Hand{}, err
	}
	c2, err := ParseCard(s[2:])
	if err != nil {
		return Hand{}, err
	}
	return NewHand(c1, c2)
}

// IsPair reports whether both cards share a rank.
func (h Hand) IsPair() bool {
	return h.High.Rank == h.Low.Rank
}

// IsSuited reports whether both cards share a suit. Pairs are never suited.
func (h Hand) IsSuited() bool {
	return !h.IsPair() && h.High.Suit == h.Low.Suit
}

// IsOffsuit reports whether the cards differ in both rank and suit.
func (h Hand) IsOffsuit() bool {
	return !h.IsPair() && !h.IsSuited()
}

// Notation returns the canonical starting-hand class: "QQ" for pairs, "AKs"
// for suited hands, "T9o" for offsuit hands. The higher rank always comes
// first and pairs get no suffix.
func (h Hand) Notation() string {
	high := h.High.Rank.String()
	low := h.Low.Rank.String()
	switch {
	case h.IsPair():
		return high + low
	case h.IsSuited():
		return high + low + "s"
	default:
		return high + low + "o"
	}
}

// String returns the concrete cards plus the class notation.
func (h Hand) String() string {
	return fmt.Sprintf("%s%s (%s)", h.High, h.Low, h.Notation())
}

// ToMap returns a plain key-value representation for serialization by the
// outer layer.
func (h Hand) ToMap() map[string]any {
	return map[string]any{
		"card1":    h.High.ToMap(),
		"card2":    h.Low.ToMap(),
		"notation": h.Notation(),
		"suited":   h.IsSuited(),
		"pair":     h.IsPair(),
	}
}

// ValidNotation reports whether s is one of the 169 starting-hand class
// notations ("AA", "AKs", "T9o", ...).
func ValidNotation(s string) bool {
	if len(s) < 2 || len(s) > 3 {
		return false
	}
	r1, err1 := ParseRank(s[0])
	r2, err2 := ParseRank(s[1])
	if err1 != nil || err2 != nil {
		return false
	}
	if r1 < r2 {
		// Higher rank must come first.
		return false
	}
	if r1 == r2 {
		return len(s) == 2
	}
	return len(s) == 3 && (s[2] == 's' || s[2] == 'o')
}

// Notations returns all 169 starting-hand class notations in a fixed order:
// for each high rank from ace down, the pair first, then suited and offsuit
// combinations with each lower rank.
func Notations() []string {
	out := make([]string, 0, 169)
	for high := Ace; high >= Two; high-- {
		out = append(out, high.String()+high.String())
		for low := high - 1; low >= Two; low-- {
			out = append(out, high.String()+low.String()+"s")
			out = append(out, high.String()+low.String()+"o")
		}
	}
	return out
}
