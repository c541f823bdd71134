package poker

import (
	"fmt"
	rand "math/rand/v2"
)

// InsufficientCardsError is returned when a deal requests more cards than the
// deck has remaining.
type InsufficientCardsError struct {
	Requested int
	Remaining int
}

func (e *InsufficientCardsError) Error() string {
	return fmt.Sprintf("insufficient cards: requested %d with %d remaining", e.Requested, e.Remaining)
}

// Deck represents a standard 52-card deck. Dealing advances an index rather
// than reslicing so a deck can be reset cheaply.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a full deck in canonical order (suits low to high, ranks
// low to high within each suit). The rng is used for shuffling; a nil rng
// leaves the deck usable but Shuffle becomes a no-op reset.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	i := 0
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = Card{Rank: rank, Suit: suit}
			i++
		}
	}
	return d
}

// NewShuffledDeck creates a deck and shuffles it immediately.
func NewShuffledDeck(rng *rand.Rand) *Deck {
	d := NewDeck(rng)
	d.Shuffle()
	return d
}

// Shuffle returns all dealt cards to the deck and applies a Fisher-Yates
// permutation. Every permutation is equally likely given a uniform rng.
func (d *Deck) Shuffle() {
	d.next = 0
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the next n cards from the deck.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, &InsufficientCardsError{Requested: n, Remaining: d.Remaining()}
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DealOne deals a single card from the deck.
func (d *Deck) DealOne() (Card, error) {
	cards, err := d.Deal(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
