// Package advisor wraps the decision engine in the query surface outside
// collaborators consume: plain string fields in, a recommendation with
// its reasoning out. Malformed input degrades to a safe fold rather than
// an error.
package advisor

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/cardworks/holdem/internal/deck"
	"github.com/cardworks/holdem/internal/gto"
)

// Query asks for a preflop recommendation.
type Query struct {
	Hand          string  `json:"hand"`           // 169-combo notation
	Position      string  `json:"position"`       // UTG, UTG+1, ..., BB
	FacingAction  string  `json:"facing_action"`  // none, limp, raise, 3bet, ...
	PlayersBehind int     `json:"players_behind"` // 0-7
	StackBB       float64 `json:"stack_bb"`       // effective stack in big blinds
}

// Response carries the recommendation plus the classification that
// produced it.
type Response struct {
	Action    string  `json:"action"`
	Amount    float64 `json:"amount"`
	Frequency float64 `json:"frequency"`
	HandTier  string  `json:"hand_tier"`
	StackTier string  `json:"stack_tier"`
	Reasoning string  `json:"reasoning"`
}

// Advisor answers queries against a shared decision engine.
type Advisor struct {
	engine *gto.Engine
	logger *log.Logger
}

// New creates an advisor. A nil logger falls back to the process default.
func New(engine *gto.Engine, logger *log.Logger) *Advisor {
	if logger == nil {
		logger = log.Default()
	}
	return &Advisor{engine: engine, logger: logger.WithPrefix("advisor")}
}

// Advise resolves a query. Unknown facing actions and positions never
// fail the call: they produce a fold with the problem noted in the
// reasoning and a logged warning.
func (a *Advisor) Advise(query Query) Response {
	tier := gto.TierOf(query.Hand)
	stack := gto.StackTierFromBB(query.StackBB)

	facing, ok := gto.FacingActionFromString(query.FacingAction)
	if !ok {
		a.logger.Warn("unknown facing action, defaulting to fold",
			"facing_action", query.FacingAction, "hand", query.Hand)
		return Response{
			Action:    gto.Fold.String(),
			Frequency: 1,
			HandTier:  tier.String(),
			StackTier: stack.String(),
			Reasoning: fmt.Sprintf("unrecognized facing action %q: folding as the safe default", query.FacingAction),
		}
	}

	position, ok := gto.PositionFromString(query.Position)
	if !ok {
		a.logger.Warn("unknown position, defaulting to fold",
			"position", query.Position, "hand", query.Hand)
		return Response{
			Action:    gto.Fold.String(),
			Frequency: 1,
			HandTier:  tier.String(),
			StackTier: stack.String(),
			Reasoning: fmt.Sprintf("unrecognized position %q: folding as the safe default", query.Position),
		}
	}

	key := gto.DecisionKey{
		Hand:          query.Hand,
		Position:      position,
		Facing:        facing,
		PlayersBehind: query.PlayersBehind,
		Stack:         stack,
	}
	decision, corrected := a.engine.DecideChecked(key)

	return Response{
		Action:    decision.Action.String(),
		Amount:    decision.Amount,
		Frequency: decision.Frequency,
		HandTier:  tier.String(),
		StackTier: stack.String(),
		Reasoning: reasoning(key, tier, decision, corrected),
	}
}

func reasoning(key gto.DecisionKey, tier gto.HandTier, decision gto.Decision, corrected bool) string {
	var detail string
	switch {
	case corrected:
		detail = "table produced an illegal check against a live raise, corrected to fold"
	case decision.Amount > 0:
		detail = fmt.Sprintf("%s to %.1fbb", decision.Action, decision.Amount)
	default:
		detail = decision.Action.String()
	}
	s := fmt.Sprintf("%s hand in %s facing %s with a %s stack: %s",
		tier, key.Position.Group(), key.Facing, key.Stack, detail)
	if decision.Frequency < 1 {
		s += fmt.Sprintf(" at %.0f%% frequency", decision.Frequency*100)
	}
	// Unknown notations are played as the weakest holdings on purpose.
	if _, _, _, err := deck.ParseNotation(key.Hand); err != nil {
		s += fmt.Sprintf("; hand %q is not a known notation and was rated as the weakest tier", key.Hand)
	}
	return s
}
