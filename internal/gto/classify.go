package gto

import (
	"github.com/cardworks/holdem/internal/game"
)

// ClassifyFacing buckets the preflop action in front of a seat by
// counting raises in the hand history. The raise count is the primary
// signal; limps and callers refine the low end:
//
//	0 raises, no caller  -> none
//	0 raises, caller(s)  -> limp
//	1 raise              -> raise, or isolation_raise over a limper
//	2 raises             -> 3bet, or squeeze when the open had a caller,
//	                        or cold_4bet when the seat has yet to act
//	3 raises             -> 4bet
//	4+ raises            -> 5bet
//
// Counting raises this way can blur multiway pots, where one seat's 3bet
// is another's squeeze; callers should treat the refined labels as best
// effort and the raise count as authoritative.
func ClassifyFacing(history []game.ActionRecord, heroSeat int) FacingAction {
	raises := 0
	limpers := 0
	openCallers := 0
	highBet := 0
	heroActed := false

	for _, record := range history {
		if record.Phase != game.Preflop {
			continue
		}
		if record.Seat == heroSeat && record.Action != game.Fold {
			heroActed = true
		}
		switch record.Action {
		case game.Raise, game.AllIn:
			// Amount carries the round total, so a shove that merely
			// flat-matched the bet does not count as aggression.
			if record.Amount > highBet {
				highBet = record.Amount
				raises++
			} else if raises == 1 {
				openCallers++
			}
		case game.Call:
			switch raises {
			case 0:
				limpers++
			case 1:
				openCallers++
			}
		}
	}

	switch raises {
	case 0:
		if limpers > 0 {
			return FacingLimp
		}
		return FacingNone
	case 1:
		if limpers > 0 {
			return FacingIsolation
		}
		return FacingRaise
	case 2:
		if !heroActed {
			return FacingCold4Bet
		}
		if limpers > 0 || openCallers > 0 {
			return FacingSqueeze
		}
		return Facing3Bet
	case 3:
		return Facing4Bet
	default:
		return Facing5Bet
	}
}
