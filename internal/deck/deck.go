package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// Deck represents a standard 52-card deck consumed front-to-back through a
// cursor. A deck is never reshuffled mid-hand; callers build a fresh deck
// (or call Reset) at the start of each hand.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// New creates a new deck in stable enumeration order (suits Spades through
// Clubs, ranks Two through Ace). The RNG is only used by Shuffle; a nil RNG
// is allowed for callers that never shuffle.
func New(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(suit, rank)
			i++
		}
	}
	return d
}

// NewShuffled creates a new deck and shuffles it.
func NewShuffled(rng *rand.Rand) *Deck {
	d := New(rng)
	d.Shuffle()
	return d
}

// Shuffle performs a uniform Fisher-Yates shuffle and rewinds the cursor.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal consumes the next n cards and advances the cursor. Dealing past the
// end of the deck is a programming error, not a runtime condition: the state
// machine never needs more than 25 cards per hand.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		panic(fmt.Sprintf("deck: dealt past end (%d requested, %d remain)", n, d.Remaining()))
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// Remaining returns the number of cards left past the cursor.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Reset reshuffles the full deck and rewinds the cursor, for reuse across
// hands.
func (d *Deck) Reset() {
	d.Shuffle()
}

// Stacked builds an unshuffled deck whose first cards are exactly the given
// cards in order, followed by the rest of the deck in enumeration order.
// Intended for deterministic tests.
func Stacked(first ...Card) *Deck {
	used := make(map[Card]bool, len(first))
	for _, c := range first {
		if used[c] {
			panic(fmt.Sprintf("deck: duplicate stacked card %s", c))
		}
		used[c] = true
	}

	d := &Deck{}
	i := copy(d.cards[:], first)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(suit, rank)
			if !used[c] {
				d.cards[i] = c
				i++
			}
		}
	}
	return d
}
