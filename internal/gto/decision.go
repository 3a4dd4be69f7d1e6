package gto

import (
	"fmt"
	"strings"
)

// Action is a recommended preflop move.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Limp
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
	case Limp:
		return "limp"
	case Raise:
		return "raise"
	case AllIn:
		return "all_in"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ActionFromString parses an action name.
func ActionFromString(s string) (Action, bool) {
	switch strings.ToLower(s) {
	case "fold":
		return Fold, true
	case "check":
		return Check, true
	case "call":
		return Call, true
	case "limp":
		return Limp, true
	case "raise":
		return Raise, true
	case "all_in", "allin", "all-in":
		return AllIn, true
	}
	return 0, false
}

// Decision is the engine's recommendation for one situation. Amount is in
// big blinds and zero when no sizing applies. Frequency below 1 marks a
// mixed strategy: the caller samples, the engine stays deterministic.
type Decision struct {
	Action    Action
	Amount    float64
	Frequency float64
}

func (d Decision) String() string {
	if d.Amount > 0 {
		return fmt.Sprintf("%s %.1fbb (%.0f%%)", d.Action, d.Amount, d.Frequency*100)
	}
	return fmt.Sprintf("%s (%.0f%%)", d.Action, d.Frequency*100)
}

func fold() Decision  { return Decision{Action: Fold, Frequency: 1} }
func check() Decision { return Decision{Action: Check, Frequency: 1} }
func call() Decision  { return Decision{Action: Call, Frequency: 1} }
func allIn() Decision { return Decision{Action: AllIn, Frequency: 1} }
func raise(bb float64) Decision {
	return Decision{Action: Raise, Amount: bb, Frequency: 1}
}
