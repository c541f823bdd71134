package poker

import (
	"errors"
	"testing"

	"github.com/preflop-tools/gtocoach/internal/randutil"
)

func TestNewDeckHas52DistinctCards(t *testing.T) {
	t.Parallel()
	d := NewDeck(nil)
	cards, err := d.Deal(52)
	if err != nil {
		t.Fatalf("Deal(52): %v", err)
	}
	seen := make(map[Card]bool)
	for _, c := range cards {
		if seen[c] {
			t.Errorf("duplicate card %s", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 distinct cards, got %d", len(seen))
	}
}

func TestDealReconstitutesDeck(t *testing.T) {
	t.Parallel()
	// Dealing n cards then draining the rest always reconstitutes the full
	// 52 with no duplicates.
	for _, n := range []int{0, 1, 2, 5, 26, 51, 52} {
		d := NewShuffledDeck(randutil.New(7))
		dealt, err := d.Deal(n)
		if err != nil {
			t.Fatalf("Deal(%d): %v", n, err)
		}
		if len(dealt) != n {
			t.Fatalf("Deal(%d) returned %d cards", n, len(dealt))
		}
		if d.Remaining() != 52-n {
			t.Fatalf("expected %d remaining, got %d", 52-n, d.Remaining())
		}
		rest, err := d.Deal(52 - n)
		if err != nil {
			t.Fatalf("Deal(rest): %v", err)
		}
		seen := make(map[Card]bool)
		for _, c := range append(dealt, rest...) {
			if seen[c] {
				t.Errorf("n=%d: duplicate card %s", n, c)
			}
			seen[c] = true
		}
		if len(seen) != 52 {
			t.Errorf("n=%d: reconstituted %d cards", n, len(seen))
		}
	}
}

func TestDealInsufficientCards(t *testing.T) {
	t.Parallel()
	d := NewDeck(nil)
	if _, err := d.Deal(40); err != nil {
		t.Fatalf("Deal(40): %v", err)
	}

	_, err := d.Deal(13)
	var insufficient *InsufficientCardsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientCardsError, got %v", err)
	}
	if insufficient.Requested != 13 || insufficient.Remaining != 12 {
		t.Errorf("unexpected error detail: %+v", insufficient)
	}

	// The failed deal must not consume cards.
	if d.Remaining() != 12 {
		t.Errorf("expected 12 remaining after failed deal, got %d", d.Remaining())
	}
}

func TestShufflePreservesCards(t *testing.T) {
	t.Parallel()
	d := NewShuffledDeck(randutil.New(99))
	d.Shuffle()
	cards, err := d.Deal(52)
	if err != nil {
		t.Fatalf("Deal(52): %v", err)
	}
	seen := make(map[Card]bool)
	for _, c := range cards {
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("shuffle dropped or duplicated cards: %d distinct", len(seen))
	}
}

func TestShuffleDeterministicUnderSeed(t *testing.T) {
	t.Parallel()
	d1 := NewShuffledDeck(randutil.New(42))
	d2 := NewShuffledDeck(randutil.New(42))
	c1, _ := d1.Deal(52)
	c2, _ := d2.Deal(52)
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("same seed diverged at card %d: %s vs %s", i, c1[i], c2[i])
		}
	}
}

func TestShuffleResetsDealtCards(t *testing.T) {
	t.Parallel()
	d := NewShuffledDeck(randutil.New(3))
	if _, err := d.Deal(20); err != nil {
		t.Fatalf("Deal(20): %v", err)
	}
	d.Shuffle()
	if d.Remaining() != 52 {
		t.Errorf("expected full deck after shuffle, got %d", d.Remaining())
	}
}
