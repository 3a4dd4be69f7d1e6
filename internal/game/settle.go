package game

import (
	"fmt"
	"sort"

	"github.com/cardworks/holdem/internal/evaluator"
)

// PotResult records how one pot was paid out.
type PotResult struct {
	Amount   int            // pot size
	Winners  []int          // winning seats, ascending
	Rankings map[int]string // seat -> hand description, empty when won uncontested
	Payouts  map[int]int    // seat -> chips awarded
}

// Settle distributes the pot and ends the hand. It may be called once the
// hand is complete: either showdown was reached or everyone but one player
// folded. Each side pot is awarded to the best hand among its eligible
// players; a pot with a single eligible player is awarded without
// evaluating anyone's cards. Ties split the pot evenly with any odd chips
// going to the tied winners in seat order starting left of the button.
func (h *HandState) Settle() ([]PotResult, error) {
	if h.settled {
		return nil, ErrHandComplete
	}
	if !h.IsComplete() {
		return nil, fmt.Errorf("%w: cannot settle in %s", ErrRoundNotOver, h.Phase)
	}

	h.collectBets()
	pots := SidePots(h.Players)

	rankings := make(map[int]evaluator.HandRanking)
	results := make([]PotResult, 0, len(pots))

	for _, pot := range pots {
		result := PotResult{
			Amount:   pot.Amount,
			Rankings: make(map[int]string),
			Payouts:  make(map[int]int),
		}

		if len(pot.Eligible) == 1 {
			seat := pot.Eligible[0]
			result.Winners = []int{seat}
			result.Payouts[seat] = pot.Amount
			h.Players[seat].Chips += pot.Amount
			results = append(results, result)
			continue
		}

		best := evaluator.HandRanking{Category: -1}
		var winners []int
		for _, seat := range pot.Eligible {
			ranking, ok := rankings[seat]
			if !ok {
				var err error
				ranking, err = evaluator.Evaluate(append(h.Players[seat].HoleCards, h.Board...))
				if err != nil {
					return nil, fmt.Errorf("evaluating seat %d: %w", seat, err)
				}
				rankings[seat] = ranking
			}
			result.Rankings[seat] = ranking.String()

			switch cmp := evaluator.Compare(ranking, best); {
			case cmp > 0:
				best = ranking
				winners = []int{seat}
			case cmp == 0:
				winners = append(winners, seat)
			}
		}

		sort.Ints(winners)
		result.Winners = winners
		h.payout(pot.Amount, winners, result.Payouts)
		results = append(results, result)
	}

	h.settled = true
	h.Phase = Showdown
	h.ActivePlayer = -1
	for _, p := range h.Players {
		p.TotalBet = 0
	}
	h.checkConservation()

	return results, nil
}

// payout splits amount across the winners. The remainder after an even
// split goes one chip at a time to winners in seat order starting from
// the first seat left of the button.
func (h *HandState) payout(amount int, winners []int, payouts map[int]int) {
	share := amount / len(winners)
	remainder := amount % len(winners)

	for _, seat := range winners {
		payouts[seat] += share
		h.Players[seat].Chips += share
	}

	for _, seat := range h.oddChipOrder(winners) {
		if remainder == 0 {
			break
		}
		payouts[seat]++
		h.Players[seat].Chips++
		remainder--
	}
}

// oddChipOrder returns the winners sorted by clockwise distance from the
// seat left of the button.
func (h *HandState) oddChipOrder(winners []int) []int {
	n := len(h.Players)
	ordered := make([]int, len(winners))
	copy(ordered, winners)
	sort.Slice(ordered, func(i, j int) bool {
		di := (ordered[i] - h.Button - 1 + n) % n
		dj := (ordered[j] - h.Button - 1 + n) % n
		return di < dj
	})
	return ordered
}
