package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardworks/holdem/internal/deck"
	"github.com/cardworks/holdem/internal/randutil"
)

func eval(t *testing.T, cards ...string) HandRanking {
	t.Helper()
	ranking, err := Evaluate(deck.MustParseCards(cards...))
	require.NoError(t, err)
	return ranking
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards []string
		want  HandRanking
	}{
		{
			name:  "royal flush is a straight flush with ace primary",
			cards: []string{"As", "Ks", "Qs", "Js", "Ts", "2h", "2d"},
			want:  HandRanking{Category: StraightFlush, Primary: deck.Ace},
		},
		{
			name:  "steel wheel is a five-high straight flush",
			cards: []string{"Ah", "2h", "3h", "4h", "5h", "Kd", "Kc"},
			want:  HandRanking{Category: StraightFlush, Primary: deck.Five},
		},
		{
			name:  "four of a kind with best kicker",
			cards: []string{"9s", "9h", "9d", "9c", "Ks", "2h", "7d"},
			want:  HandRanking{Category: FourOfAKind, Primary: deck.Nine, Secondary: deck.King},
		},
		{
			name:  "full house picks the best trips and pair",
			cards: []string{"Ks", "Kh", "Kd", "7s", "7h", "2c", "3d"},
			want:  HandRanking{Category: FullHouse, Primary: deck.King, Secondary: deck.Seven},
		},
		{
			name:  "two trips make a full house",
			cards: []string{"Ks", "Kh", "Kd", "7s", "7h", "7c", "2d"},
			want:  HandRanking{Category: FullHouse, Primary: deck.King, Secondary: deck.Seven},
		},
		{
			name:  "flush takes the five highest of the suit",
			cards: []string{"As", "Js", "9s", "6s", "3s", "2s", "Kh"},
			want: HandRanking{Category: Flush, Kickers: []deck.Rank{
				deck.Ace, deck.Jack, deck.Nine, deck.Six, deck.Three,
			}},
		},
		{
			name:  "wheel straight has primary five",
			cards: []string{"Ah", "2s", "3d", "4c", "5h"},
			want:  HandRanking{Category: Straight, Primary: deck.Five},
		},
		{
			name:  "seven-card straight uses the top five",
			cards: []string{"3h", "4s", "5d", "6c", "7h", "8s", "9d"},
			want:  HandRanking{Category: Straight, Primary: deck.Nine},
		},
		{
			name:  "three of a kind with two kickers",
			cards: []string{"8s", "8h", "8d", "Ac", "Jh", "4s", "2d"},
			want: HandRanking{Category: ThreeOfAKind, Primary: deck.Eight,
				Kickers: []deck.Rank{deck.Ace, deck.Jack}},
		},
		{
			name:  "two pair keeps the best two pairs and kicker",
			cards: []string{"Qs", "Qh", "8d", "8c", "4h", "4s", "Ad"},
			want: HandRanking{Category: TwoPair, Primary: deck.Queen, Secondary: deck.Eight,
				Kickers: []deck.Rank{deck.Ace}},
		},
		{
			name:  "one pair with three kickers",
			cards: []string{"Ts", "Th", "Ad", "8c", "6h", "4s", "2d"},
			want: HandRanking{Category: OnePair, Primary: deck.Ten,
				Kickers: []deck.Rank{deck.Ace, deck.Eight, deck.Six}},
		},
		{
			name:  "high card takes the five best ranks",
			cards: []string{"As", "Jh", "9d", "7c", "5h", "3s", "2d"},
			want: HandRanking{Category: HighCard, Kickers: []deck.Rank{
				deck.Ace, deck.Jack, deck.Nine, deck.Seven, deck.Five,
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := eval(t, tt.cards...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateIsOrderIndependent(t *testing.T) {
	t.Parallel()
	cards := deck.MustParseCards("As", "Ks", "Qs", "Js", "Ts", "2h", "2d")
	want, err := Evaluate(cards)
	require.NoError(t, err)

	rng := randutil.New(99)
	for i := 0; i < 200; i++ {
		shuffled := make([]deck.Card, len(cards))
		copy(shuffled, cards)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got, err := Evaluate(shuffled)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestEvaluateRejectsBadCardCounts(t *testing.T) {
	t.Parallel()
	_, err := Evaluate(deck.MustParseCards("As", "Ks", "Qs", "Js"))
	assert.Error(t, err)
	_, err = Evaluate(deck.MustParseCards("As", "Ks", "Qs", "Js", "Ts", "9s", "8s", "7s"))
	assert.Error(t, err)
}

func TestStraightFlushCategoryValueIsNine(t *testing.T) {
	t.Parallel()
	got := eval(t, "As", "Ks", "Qs", "Js", "Ts", "2h", "2d")
	assert.Equal(t, 9, int(got.Category))
	assert.Equal(t, deck.Ace, got.Primary)
}

func TestCompareTieBreaks(t *testing.T) {
	t.Parallel()

	// Category dominates.
	assert.Greater(t, Compare(
		eval(t, "2s", "2h", "2d", "3c", "4h"),
		eval(t, "As", "Kh", "Qd", "Jc", "9h"),
	), 0)

	// Primary breaks ties within a category.
	assert.Greater(t, Compare(
		eval(t, "Ks", "Kh", "Kd", "2c", "3h"),
		eval(t, "Qs", "Qh", "Qd", "Ac", "Kh"),
	), 0)

	// Secondary breaks full-house pairs.
	assert.Greater(t, Compare(
		eval(t, "Ks", "Kh", "Kd", "9c", "9h"),
		eval(t, "Kc", "Kh", "Kd", "8c", "8h"),
	), 0)

	// Kickers break left to right.
	assert.Greater(t, Compare(
		eval(t, "As", "Ah", "Kd", "Qc", "9h"),
		eval(t, "Ad", "Ac", "Kh", "Jc", "Th"),
	), 0)

	// Identical board plays mean a genuine split.
	assert.Equal(t, 0, Compare(
		eval(t, "As", "Ah", "Kd", "Qc", "9h"),
		eval(t, "Ad", "Ac", "Ks", "Qd", "9c"),
	), "same ranks should split")

	// Wheel loses to a six-high straight.
	assert.Less(t, Compare(
		eval(t, "Ah", "2s", "3d", "4c", "5h"),
		eval(t, "2h", "3s", "4d", "5c", "6h"),
	), 0)
}
