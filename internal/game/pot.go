package game

import "sort"

// Pot is a main or side pot. Eligible holds the seats that can win it.
type Pot struct {
	Amount   int
	Eligible []int
}

// SidePots partitions the players' total contributions into pots by the
// distinct all-in contribution thresholds, sorted ascending. Each pot's
// eligible set is exactly the non-folded players who contributed at least
// that threshold. Folded contributions stay in the pots they funded; they
// just carry no eligibility. The function is pure: it reads contribution
// totals and writes nothing.
func SidePots(players []*Player) []Pot {
	thresholdSet := make(map[int]bool)
	maxContribution := 0
	for _, p := range players {
		if p.AllIn && p.TotalBet > 0 {
			thresholdSet[p.TotalBet] = true
		}
		if p.TotalBet > maxContribution {
			maxContribution = p.TotalBet
		}
	}

	thresholds := make([]int, 0, len(thresholdSet)+1)
	for t := range thresholdSet {
		thresholds = append(thresholds, t)
	}
	sort.Ints(thresholds)

	// The top layer above the highest all-in, where present, forms the
	// final pot.
	if len(thresholds) == 0 || thresholds[len(thresholds)-1] < maxContribution {
		thresholds = append(thresholds, maxContribution)
	}

	var pots []Pot
	previous := 0
	for _, threshold := range thresholds {
		pot := Pot{}
		for _, p := range players {
			contribution := min(p.TotalBet, threshold) - previous
			if contribution > 0 {
				pot.Amount += contribution
			}
			if !p.Folded && p.TotalBet >= threshold {
				pot.Eligible = append(pot.Eligible, p.Seat)
			}
		}
		if pot.Amount > 0 {
			if len(pot.Eligible) == 0 && len(pots) > 0 {
				// A layer funded only by folded players belongs to the
				// pot below it.
				pots[len(pots)-1].Amount += pot.Amount
			} else {
				pots = append(pots, pot)
			}
		}
		previous = threshold
	}

	return pots
}

// PotTotal sums the players' contributions so far this hand.
func PotTotal(players []*Player) int {
	total := 0
	for _, p := range players {
		total += p.TotalBet
	}
	return total
}
