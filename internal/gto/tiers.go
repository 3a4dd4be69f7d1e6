package gto

import (
	"fmt"

	"github.com/cardworks/holdem/internal/deck"
)

// HandTier buckets the 169 starting hands by preflop strength. The
// partition is total: every notation falls into exactly one tier.
type HandTier int

const (
	Premium HandTier = iota
	Strong
	PremiumMedium
	Medium
	Weak
	Speculative
	Trash
)

func (t HandTier) String() string {
	switch t {
	case Premium:
		return "premium"
	case Strong:
		return "strong"
	case PremiumMedium:
		return "premium_medium"
	case Medium:
		return "medium"
	case Weak:
		return "weak"
	case Speculative:
		return "speculative"
	case Trash:
		return "trash"
	default:
		return fmt.Sprintf("HandTier(%d)", int(t))
	}
}

// The top three tiers are small enough to enumerate outright. Everything
// below them classifies by structure and percentile.
var explicitTiers = map[string]HandTier{
	"AA": Premium, "KK": Premium, "QQ": Premium, "AKs": Premium, "AKo": Premium,

	"JJ": Strong, "TT": Strong, "AQs": Strong, "AQo": Strong, "AJs": Strong, "KQs": Strong,

	"99": PremiumMedium, "88": PremiumMedium, "ATs": PremiumMedium, "AJo": PremiumMedium,
	"KJs": PremiumMedium, "KQo": PremiumMedium, "QJs": PremiumMedium, "JTs": PremiumMedium,
}

// TierOf classifies a starting-hand notation. Unknown notations are
// treated as the weakest tier rather than rejected, keeping the decision
// function total.
func TierOf(notation string) HandTier {
	if tier, ok := explicitTiers[notation]; ok {
		return tier
	}

	high, low, suited, err := deck.ParseNotation(notation)
	if err != nil {
		return Trash
	}

	pair := high == low
	gap := int(high) - int(low)
	percentile := deck.Percentile(notation)

	switch {
	case pair && high >= deck.Five:
		// 55 through 77 play fine in most pots.
		return Medium
	case pair:
		// 22 through 44 want cheap flops to set-mine.
		return Speculative
	case suited && high == deck.Ace:
		// Suited aces below ATs: wheel and nut-flush potential.
		return Medium
	case suited && gap <= 1 && low >= deck.Five:
		// Suited connectors 65s and up.
		return Speculative
	case percentile >= 0.80:
		return Medium
	case percentile >= 0.60:
		return Weak
	case suited && gap <= 2 && percentile >= 0.40:
		return Speculative
	case percentile >= 0.45:
		return Weak
	default:
		return Trash
	}
}
