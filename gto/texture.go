package gto

import (
	"fmt"
	"sort"

	"github.com/preflop-tools/gtocoach/poker"
)

// SuitTexture describes the suit distribution of a flop.
type SuitTexture int

const (
	Monotone SuitTexture = iota + 1 // one suit
	TwoTone                         // two suits
	Rainbow                         // three suits
)

func (s SuitTexture) String() string {
	switch s {
	case Monotone:
		return "monotone"
	case TwoTone:
		return "two-tone"
	case Rainbow:
		return "rainbow"
	default:
		return "unknown"
	}
}

// Wetness grades how coordinated a flop is, from dry to wet.
type Wetness int

const (
	Dry Wetness = iota
	SemiWet
	Wet
)

func (w Wetness) String() string {
	switch w {
	case Dry:
		return "dry"
	case SemiWet:
		return "semi-wet"
	case Wet:
		return "wet"
	default:
		return "unknown"
	}
}

// Texture is the classification of a 3-card board.
type Texture struct {
	Paired        bool
	DistinctRanks int
	DistinctSuits int
	Suits         SuitTexture
	Wetness       Wetness
}

// ToMap returns a plain key-value representation.
func (t Texture) ToMap() map[string]any {
	return map[string]any{
		"paired":         t.Paired,
		"distinct_ranks": t.DistinctRanks,
		"distinct_suits": t.DistinctSuits,
		"suit_texture":   t.Suits.String(),
		"wetness":        t.Wetness.String(),
	}
}

// FlopTexture classifies a 3-card board: paired, suit distribution, and a
// wet/dry grade from straight and flush draw density. It is a pure function
// with no chart dependency.
func FlopTexture(board []poker.Card) (Texture, error) {
	if len(board) != 3 {
		return Texture{}, fmt.Errorf("flop texture needs exactly 3 cards, got %d", len(board))
	}
	for i := 0; i < len(board); i++ {
		for j := i + 1; j < len(board); j++ {
			if board[i] == board[j] {
				return Texture{}, fmt.Errorf("duplicate board card %s", board[i])
			}
		}
	}

	rankSet := make(map[poker.Rank]int)
	suitSet := make(map[poker.Suit]bool)
	for _, c := range board {
		rankSet[c.Rank]++
		suitSet[c.Suit] = true
	}

	t := Texture{
		DistinctRanks: len(rankSet),
		DistinctSuits: len(suitSet),
	}
	for _, n := range rankSet {
		if n >= 2 {
			t.Paired = true
		}
	}
	switch t.DistinctSuits {
	case 1:
		t.Suits = Monotone
	case 2:
		t.Suits = TwoTone
	default:
		t.Suits = Rainbow
	}

	t.Wetness = gradeWetness(board, t)
	return t, nil
}

// gradeWetness scores flush and straight draw density and buckets the total.
func gradeWetness(board []poker.Card, t Texture) Wetness {
	score := 0

	// Flush potential.
	switch t.Suits {
	case Monotone:
		score += 4
	case TwoTone:
		score += 1
	}

	// Straight potential: longest run of connected distinct ranks, with the
	// wheel ace counted low when low cards are present.
	ranks := make([]int, 0, 3)
	for r := range rankCounts(board) {
		ranks = append(ranks, r.Value())
	}
	sort.Ints(ranks)
	if hasAce(board) && ranks[0] <= 5 {
		ranks = append([]int{1}, ranks...)
	}
	switch longestRun(ranks) {
	case 3:
		score += 3
	case 2:
		score += 1
	}
	if gapsWithin(ranks) {
		score += 1
	}

	// Paired boards fill up more easily.
	if t.Paired {
		score += 1
	}

	// Multiple broadway cards put straights in many ranges.
	broadway := 0
	for _, c := range board {
		if c.Rank >= poker.Ten {
			broadway++
		}
	}
	if broadway >= 2 {
		score += 1
	}

	switch {
	case score <= 1:
		return Dry
	case score <= 3:
		return SemiWet
	default:
		return Wet
	}
}

func rankCounts(board []poker.Card) map[poker.Rank]int {
	out := make(map[poker.Rank]int)
	for _, c := range board {
		out[c.Rank]++
	}
	return out
}

func hasAce(board []poker.Card) bool {
	for _, c := range board {
		if c.Rank == poker.Ace {
			return true
		}
	}
	return false
}

// longestRun returns the longest sequence of consecutive values in a sorted
// ascending slice.
func longestRun(sorted []int) int {
	if len(sorted) == 0 {
		return 0
	}
	best, cur := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1]+1 {
			cur++
		} else {
			cur = 1
		}
		if cur > best {
			best = cur
		}
	}
	return best
}

// gapsWithin reports whether any two neighbouring distinct ranks sit one or
// two apart without being connected, which leaves gutshot draws available.
func gapsWithin(sorted []int) bool {
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i] - sorted[i-1]
		if gap == 2 || gap == 3 {
			return true
		}
	}
	return false
}
