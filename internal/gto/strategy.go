package gto

// Opening sizes in big blinds by position group. Later seats size down a
// touch; the blinds size up to discourage flat calls in position.
var openSizes = map[PositionGroup]float64{
	EarlyPosition:      2.5,
	MiddlePosition:     2.5,
	LatePosition:       2.3,
	SmallBlindPosition: 3.0,
	BigBlindPosition:   2.5,
}

// openingTier is the loosest tier that open-raises from each group with a
// full stack behind. Short stacks tighten one tier in compute().
var openingTier = map[PositionGroup]HandTier{
	EarlyPosition:      PremiumMedium,
	MiddlePosition:     Medium,
	LatePosition:       Weak,
	SmallBlindPosition: Medium,
	BigBlindPosition:   Medium,
}

// Escalation sizes in big blinds, keyed by the raise level being answered.
// Each step roughly doubles the money that went in before it: over a
// standard open the 3bet goes to 9bb, over that the 4bet to 22bb, and the
// 5bet is effectively a 45bb commit.
const (
	threeBetSize = 9
	fourBetSize  = 22
	fiveBetSize  = 45
	isolateSize  = 4
)

// compute derives the decision for a normalized key. It is a pure
// function; the engine layers the cache and the check guard on top.
func compute(key DecisionKey) Decision {
	tier := TierOf(key.Hand)
	group := key.Position.Group()

	switch key.Facing {
	case FacingNone:
		return computeOpen(key, tier, group)
	case FacingLimp:
		return computeVersusLimp(key, tier, group)
	case FacingRaise, FacingIsolation:
		return computeVersusRaise(key, tier)
	case Facing3Bet, FacingSqueeze:
		return computeVersus3Bet(key, tier)
	case Facing4Bet, FacingCold4Bet:
		return computeVersus4Bet(key, tier)
	case Facing5Bet:
		return computeVersus5Bet(tier)
	default:
		// Unclassified situations resolve to the safe default.
		return fold()
	}
}

func computeOpen(key DecisionKey, tier HandTier, group PositionGroup) Decision {
	threshold := openingTier[group]

	// A short stack opens tighter; with most of the table still to act,
	// marginal opens lose their edge too.
	if key.Stack == ShortStack && threshold > Strong {
		threshold--
	}
	if key.PlayersBehind >= 5 && threshold > PremiumMedium {
		threshold--
	}

	if tier > threshold {
		// The big blind sees the hand for free when nobody raises.
		if group == BigBlindPosition {
			return check()
		}
		// The button peels wider with the best position postflop.
		if group == LatePosition && tier == Speculative {
			return Decision{Action: Raise, Amount: openSizes[group], Frequency: 0.5}
		}
		return fold()
	}

	// A short stack jams its premiums rather than inviting a reshove.
	if key.Stack == ShortStack && tier == Premium {
		return allIn()
	}
	return raise(openSizes[group])
}

func computeVersusLimp(key DecisionKey, tier HandTier, group PositionGroup) Decision {
	switch {
	case tier <= Medium:
		// Isolate the limper; one extra blind per player still behind.
		return raise(isolateSize + float64(key.PlayersBehind)*0.5)
	case group == BigBlindPosition:
		// The big blind already has its blind in: see the flop for free.
		return check()
	case tier == Speculative:
		return Decision{Action: Limp, Frequency: 1}
	default:
		return fold()
	}
}

func computeVersusRaise(key DecisionKey, tier HandTier) Decision {
	switch tier {
	case Premium:
		if key.Stack == ShortStack {
			return allIn()
		}
		return raise(threeBetSize)
	case Strong:
		// Mixed: mostly 3bet, occasionally flat to keep the calling
		// range protected.
		return Decision{Action: Raise, Amount: threeBetSize, Frequency: 0.7}
	case PremiumMedium:
		return call()
	case Medium:
		if key.Stack == ShortStack {
			return fold()
		}
		return call()
	case Speculative:
		// Set-mining and suited connectors need deep implied odds.
		if key.Stack == DeepStack {
			return call()
		}
		return fold()
	default:
		return fold()
	}
}

func computeVersus3Bet(key DecisionKey, tier HandTier) Decision {
	switch tier {
	case Premium:
		if key.Stack == ShortStack {
			return allIn()
		}
		return raise(fourBetSize)
	case Strong:
		if key.Stack == ShortStack {
			return fold()
		}
		return call()
	case PremiumMedium:
		if key.Stack == DeepStack {
			return call()
		}
		return fold()
	default:
		return fold()
	}
}

func computeVersus4Bet(key DecisionKey, tier HandTier) Decision {
	switch tier {
	case Premium:
		if key.Stack == DeepStack {
			return raise(fiveBetSize)
		}
		return allIn()
	case Strong:
		if key.Stack == DeepStack {
			return call()
		}
		return fold()
	default:
		return fold()
	}
}

func computeVersus5Bet(tier HandTier) Decision {
	if tier == Premium {
		return allIn()
	}
	return fold()
}
