package game

// ValidAction describes one legal action for a player. Min and Max bound
// the amount: for Call and AllIn they are equal, for Raise they span the
// minimum raise-to total through the player's whole stack.
type ValidAction struct {
	Action Action
	Min    int
	Max    int
}

// MinRaiseTo returns the minimum total a raise must reach this round:
// the current bet plus the larger of the last raise increment and the big
// blind. The first raise of a round therefore uses the big blind as its
// increment.
func (h *HandState) MinRaiseTo() int {
	increment := h.lastRaise
	if increment < h.bigBlind {
		increment = h.bigBlind
	}
	return h.CurrentBet + increment
}

// ValidActions computes the legal actions for a seat against the current
// round state. A player with no legal raise headroom simply has no Raise
// entry; that is a normal condition, not an error. The result is empty for
// folded and all-in players.
func (h *HandState) ValidActions(seat int) []ValidAction {
	if seat < 0 || seat >= len(h.Players) {
		return nil
	}
	p := h.Players[seat]
	if !p.CanAct() || h.settled {
		return nil
	}

	actions := []ValidAction{{Action: Fold}}
	toCall := h.CurrentBet - p.Bet

	if toCall == 0 {
		actions = append(actions, ValidAction{Action: Check})
	} else if p.Chips > 0 {
		call := min(toCall, p.Chips)
		actions = append(actions, ValidAction{Action: Call, Min: call, Max: call})
	}

	if p.Chips > 0 {
		stackTotal := p.Chips + p.Bet
		if minTo := h.MinRaiseTo(); stackTotal >= minTo {
			actions = append(actions, ValidAction{Action: Raise, Min: minTo, Max: stackTotal})
		}
		// All-in is always available while chips remain, even below the
		// minimum raise.
		actions = append(actions, ValidAction{Action: AllIn, Min: stackTotal, Max: stackTotal})
	}

	return actions
}

// actionAllowed reports whether the action appears in the valid set.
func (h *HandState) actionAllowed(seat int, action Action) (ValidAction, bool) {
	for _, va := range h.ValidActions(seat) {
		if va.Action == action {
			return va, true
		}
	}
	return ValidAction{}, false
}
