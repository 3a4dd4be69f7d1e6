package advisor

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/cardworks/holdem/internal/game"
	"github.com/cardworks/holdem/internal/gto"
)

// ExternalDecision is a candidate action supplied by an outside decision
// source, typically a language-model collaborator. It is never trusted:
// every field is revalidated against the live hand before use.
type ExternalDecision struct {
	Action string  `json:"action"`
	Amount float64 `json:"amount"`
}

// ValidateExternal funnels an external decision through the same legality
// check the state machine applies. A malformed or illegal decision is
// replaced by the safest legal action for the seat: fold when available,
// otherwise check. The returned action and amount are always applyable.
func ValidateExternal(h *game.HandState, seat int, external ExternalDecision, logger *log.Logger) (game.Action, int) {
	if logger == nil {
		logger = log.Default()
	}

	valid := h.ValidActions(seat)

	parsed, ok := gto.ActionFromString(external.Action)
	if !ok || math.IsNaN(external.Amount) || math.IsInf(external.Amount, 0) || external.Amount < 0 {
		logger.Warn("malformed external decision, substituting safe action",
			"seat", seat, "action", external.Action, "amount", external.Amount)
		return safeAction(valid)
	}
	action := gameAction(parsed)

	for _, va := range valid {
		if va.Action != action {
			continue
		}
		amount := int(external.Amount)
		if amount < va.Min {
			amount = va.Min
		}
		if amount > va.Max {
			amount = va.Max
		}
		return action, amount
	}

	logger.Warn("illegal external decision, substituting safe action",
		"seat", seat, "action", action, "amount", external.Amount)
	return safeAction(valid)
}

// gameAction maps the advisory action vocabulary onto the state
// machine's. A limp is a call of the big blind in engine terms.
func gameAction(a gto.Action) game.Action {
	switch a {
	case gto.Fold:
		return game.Fold
	case gto.Check:
		return game.Check
	case gto.Call, gto.Limp:
		return game.Call
	case gto.Raise:
		return game.Raise
	default:
		return game.AllIn
	}
}

// safeAction picks fold when it is legal, otherwise check.
func safeAction(valid []game.ValidAction) (game.Action, int) {
	for _, va := range valid {
		if va.Action == game.Fold {
			return game.Fold, 0
		}
	}
	return game.Check, 0
}
