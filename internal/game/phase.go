package game

import "errors"

// Phase represents the betting round. Phases only move forward within a
// hand; a new hand starts over at Preflop.
type Phase int

const (
	Preflop Phase = iota
	Flop
	Turn
	River
	Showdown
)

func (p Phase) String() string {
	switch p {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case AllIn:
		return "all_in"
	default:
		return "unknown"
	}
}

// ActionFromString converts an action name to an Action. The second return
// is false for unrecognized names.
func ActionFromString(s string) (Action, bool) {
	switch s {
	case "fold":
		return Fold, true
	case "check":
		return Check, true
	case "call":
		return Call, true
	case "raise", "bet":
		return Raise, true
	case "all_in", "all-in", "allin":
		return AllIn, true
	default:
		return Fold, false
	}
}

// ActionRecord is one entry of the append-only action history. Amount is
// the player's total bet for the round after the action for chip-moving
// actions, and zero for fold and check.
type ActionRecord struct {
	Phase  Phase
	Seat   int
	Action Action
	Amount int
}

// Rejection categories for ApplyAction. The state is unchanged whenever one
// of these is returned; the caller re-prompts with a legal action.
var (
	ErrNotPlayersTurn    = errors.New("not player's turn")
	ErrIllegalAction     = errors.New("action not legal in this state")
	ErrRaiseTooSmall     = errors.New("raise below minimum")
	ErrInsufficientChips = errors.New("insufficient chips")
	ErrHandComplete      = errors.New("hand is complete")
	ErrRoundNotOver      = errors.New("betting round is not over")
)
