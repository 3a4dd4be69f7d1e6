package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardworks/holdem/internal/randutil"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	t.Parallel()
	d := New(nil)
	seen := make(map[Card]bool)
	cards := d.Deal(52)
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestNewDeckStableEnumerationOrder(t *testing.T) {
	t.Parallel()
	a := New(nil).Deal(52)
	b := New(nil).Deal(52)
	assert.Equal(t, a, b)
	assert.Equal(t, NewCard(Spades, Two), a[0])
	assert.Equal(t, NewCard(Clubs, Ace), a[51])
}

func TestShuffleIsDeterministicPerSeed(t *testing.T) {
	t.Parallel()
	a := NewShuffled(randutil.New(42)).Deal(52)
	b := NewShuffled(randutil.New(42)).Deal(52)
	c := NewShuffled(randutil.New(43)).Deal(52)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestShufflePreservesTheFullDeck(t *testing.T) {
	t.Parallel()
	d := NewShuffled(randutil.New(7))
	seen := make(map[Card]bool)
	for _, c := range d.Deal(52) {
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestDealAdvancesCursor(t *testing.T) {
	t.Parallel()
	d := NewShuffled(randutil.New(1))
	first := d.Deal(2)
	second := d.Deal(2)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 48, d.Remaining())
}

func TestDealPastEndPanics(t *testing.T) {
	t.Parallel()
	d := New(nil)
	d.Deal(50)
	assert.Panics(t, func() { d.Deal(3) })
}

func TestStackedDeckDealsGivenCardsFirst(t *testing.T) {
	t.Parallel()
	want := MustParseCards("As", "Kd", "7c")
	d := Stacked(want...)
	assert.Equal(t, want, d.Deal(3))

	// The remainder is still the rest of the deck with no duplicates.
	seen := map[Card]bool{want[0]: true, want[1]: true, want[2]: true}
	for _, c := range d.Deal(49) {
		require.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}
