// Package evaluator ranks poker hands. Given five to seven cards it finds
// the best five-card hand and returns a HandRanking carrying the category
// plus every value needed for tie-breaking.
package evaluator

import (
	"fmt"
	"sort"

	"github.com/cardworks/holdem/internal/deck"
)

// Category identifies a hand class, ordered from weakest to strongest.
// The numeric values are stable identifiers used by external consumers;
// 8 remains reserved for the retired royal-flush class, which now ranks as
// an ace-high straight flush in category 9.
type Category int

const (
	HighCard      Category = 0
	OnePair       Category = 1
	TwoPair       Category = 2
	ThreeOfAKind  Category = 3
	Straight      Category = 4
	Flush         Category = 5
	FullHouse     Category = 6
	FourOfAKind   Category = 7
	StraightFlush Category = 9
)

// String returns a human-readable category description
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandRanking is the total-ordered result of evaluating a hand. Two
// rankings compare by Category, then Primary, then Secondary, then Kickers
// left to right; equality means a genuine split.
type HandRanking struct {
	Category  Category
	Primary   deck.Rank
	Secondary deck.Rank
	Kickers   []deck.Rank
}

// String describes the ranking, e.g. "Full House (K over 7)".
func (h HandRanking) String() string {
	switch h.Category {
	case FourOfAKind, FullHouse:
		return fmt.Sprintf("%s (%s over %s)", h.Category, h.Primary, h.Secondary)
	case StraightFlush, Straight:
		return fmt.Sprintf("%s (%s high)", h.Category, h.Primary)
	case ThreeOfAKind, OnePair:
		return fmt.Sprintf("%s (%ss)", h.Category, h.Primary)
	case TwoPair:
		return fmt.Sprintf("%s (%ss and %ss)", h.Category, h.Primary, h.Secondary)
	default:
		if len(h.Kickers) > 0 {
			return fmt.Sprintf("%s (%s high)", h.Category, h.Kickers[0])
		}
		return h.Category.String()
	}
}

// Compare returns >0 if a beats b, <0 if b beats a, and 0 for a genuine
// split pot.
func Compare(a, b HandRanking) int {
	if a.Category != b.Category {
		return int(a.Category) - int(b.Category)
	}
	if a.Primary != b.Primary {
		return int(a.Primary) - int(b.Primary)
	}
	if a.Secondary != b.Secondary {
		return int(a.Secondary) - int(b.Secondary)
	}
	for i := 0; i < len(a.Kickers) && i < len(b.Kickers); i++ {
		if a.Kickers[i] != b.Kickers[i] {
			return int(a.Kickers[i]) - int(b.Kickers[i])
		}
	}
	return len(a.Kickers) - len(b.Kickers)
}

// Evaluate finds the best five-card hand among 5-7 cards by enumerating
// every five-card subset (1, 6 or 21 of them) and keeping the maximal
// ranking. The result is identical for any ordering of the same cards.
func Evaluate(cards []deck.Card) (HandRanking, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return HandRanking{}, fmt.Errorf("evaluator: need 5-7 cards, got %d", len(cards))
	}

	var best HandRanking
	var have bool
	var subset [5]deck.Card

	n := len(cards)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						subset[0] = cards[a]
						subset[1] = cards[b]
						subset[2] = cards[c]
						subset[3] = cards[d]
						subset[4] = cards[e]
						ranking := rankFive(subset)
						if !have || Compare(ranking, best) > 0 {
							best = ranking
							have = true
						}
					}
				}
			}
		}
	}

	return best, nil
}

// rankFive categorizes exactly five cards. It sorts internally, so the
// result does not depend on input order.
func rankFive(cards [5]deck.Card) HandRanking {
	ranks := make([]deck.Rank, 5)
	flush := true
	for i, c := range cards {
		ranks[i] = c.Rank
		if c.Suit != cards[0].Suit {
			flush = false
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	straightHigh := straightHighRank(ranks)

	if flush && straightHigh > 0 {
		return HandRanking{Category: StraightFlush, Primary: straightHigh}
	}

	// Group ranks by multiplicity, groups of equal size ordered by rank
	// descending. ranks is already sorted descending so groups come out in
	// the right order.
	type group struct {
		rank  deck.Rank
		count int
	}
	var groups []group
	for _, r := range ranks {
		if len(groups) > 0 && groups[len(groups)-1].rank == r {
			groups[len(groups)-1].count++
		} else {
			groups = append(groups, group{rank: r, count: 1})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].count > groups[j].count })

	kickersAfter := func(n int) []deck.Rank {
		kickers := make([]deck.Rank, 0, 5)
		for _, g := range groups[n:] {
			kickers = append(kickers, g.rank)
		}
		return kickers
	}

	switch {
	case groups[0].count == 4:
		return HandRanking{
			Category:  FourOfAKind,
			Primary:   groups[0].rank,
			Secondary: groups[1].rank,
		}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandRanking{
			Category:  FullHouse,
			Primary:   groups[0].rank,
			Secondary: groups[1].rank,
		}
	case flush:
		return HandRanking{Category: Flush, Kickers: ranks}
	case straightHigh > 0:
		return HandRanking{Category: Straight, Primary: straightHigh}
	case groups[0].count == 3:
		return HandRanking{
			Category: ThreeOfAKind,
			Primary:  groups[0].rank,
			Kickers:  kickersAfter(1),
		}
	case groups[0].count == 2 && groups[1].count == 2:
		high, low := groups[0].rank, groups[1].rank
		if low > high {
			high, low = low, high
		}
		return HandRanking{
			Category:  TwoPair,
			Primary:   high,
			Secondary: low,
			Kickers:   kickersAfter(2),
		}
	case groups[0].count == 2:
		return HandRanking{
			Category: OnePair,
			Primary:  groups[0].rank,
			Kickers:  kickersAfter(1),
		}
	default:
		return HandRanking{Category: HighCard, Kickers: ranks}
	}
}

// straightHighRank returns the high rank of a straight formed by the five
// ranks (sorted descending), or 0 if there is none. The wheel A-2-3-4-5
// counts as a five-high straight.
func straightHighRank(sorted []deck.Rank) deck.Rank {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return 0 // duplicate rank, no straight possible
		}
	}

	if sorted[0]-sorted[4] == 4 {
		return sorted[0]
	}

	// Wheel: ace plays low.
	if sorted[0] == deck.Ace && sorted[1] == deck.Five && sorted[1]-sorted[4] == 3 {
		return deck.Five
	}

	return 0
}
