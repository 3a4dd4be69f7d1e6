package gto

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a preflop seat label at a nine-max table.
type Position int

const (
	UTG Position = iota
	UTG1
	MP
	MP1
	CO
	BTN
	SB
	BB
)

var positionNames = [...]string{"UTG", "UTG+1", "MP", "MP+1", "CO", "BTN", "SB", "BB"}

func (p Position) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// PositionFromString parses a seat label. Matching is case-insensitive.
func PositionFromString(s string) (Position, bool) {
	for i, name := range positionNames {
		if strings.EqualFold(s, name) {
			return Position(i), true
		}
	}
	return 0, false
}

// PositionGroup coarsens the eight seats into the five strategy groups.
type PositionGroup int

const (
	EarlyPosition PositionGroup = iota
	MiddlePosition
	LatePosition
	SmallBlindPosition
	BigBlindPosition
)

func (g PositionGroup) String() string {
	switch g {
	case EarlyPosition:
		return "early"
	case MiddlePosition:
		return "middle"
	case LatePosition:
		return "late"
	case SmallBlindPosition:
		return "small_blind"
	case BigBlindPosition:
		return "big_blind"
	default:
		return fmt.Sprintf("PositionGroup(%d)", int(g))
	}
}

// Group maps a seat to its strategy group.
func (p Position) Group() PositionGroup {
	switch p {
	case UTG, UTG1:
		return EarlyPosition
	case MP, MP1:
		return MiddlePosition
	case CO, BTN:
		return LatePosition
	case SB:
		return SmallBlindPosition
	default:
		return BigBlindPosition
	}
}

// StackTier buckets effective stack depth in big blinds.
type StackTier int

const (
	ShortStack  StackTier = iota // 40bb and under
	MediumStack                  // over 40bb through 150bb
	DeepStack                    // over 150bb
)

func (t StackTier) String() string {
	switch t {
	case ShortStack:
		return "short"
	case MediumStack:
		return "medium"
	case DeepStack:
		return "deep"
	default:
		return fmt.Sprintf("StackTier(%d)", int(t))
	}
}

// StackTierFromString parses a stack tier name.
func StackTierFromString(s string) (StackTier, bool) {
	switch strings.ToLower(s) {
	case "short":
		return ShortStack, true
	case "medium":
		return MediumStack, true
	case "deep":
		return DeepStack, true
	}
	return 0, false
}

// StackTierFromBB buckets a stack measured in big blinds.
func StackTierFromBB(bb float64) StackTier {
	switch {
	case bb <= 40:
		return ShortStack
	case bb <= 150:
		return MediumStack
	default:
		return DeepStack
	}
}

// FacingAction categorizes the preflop action a player must respond to.
type FacingAction int

const (
	FacingNone FacingAction = iota
	FacingLimp
	FacingRaise
	Facing3Bet
	Facing4Bet
	Facing5Bet
	FacingSqueeze
	FacingIsolation
	FacingCold4Bet
)

var facingNames = [...]string{
	"none", "limp", "raise", "3bet", "4bet", "5bet",
	"squeeze", "isolation_raise", "cold_4bet",
}

func (f FacingAction) String() string {
	if f < 0 || int(f) >= len(facingNames) {
		return fmt.Sprintf("FacingAction(%d)", int(f))
	}
	return facingNames[f]
}

// IsRaise reports whether the facing action has put a bet in front of the
// player. Responding to any of these with a check is never legal.
func (f FacingAction) IsRaise() bool {
	switch f {
	case FacingRaise, Facing3Bet, Facing4Bet, Facing5Bet, FacingSqueeze, FacingIsolation, FacingCold4Bet:
		return true
	}
	return false
}

// FacingActionFromString parses a facing-action category. Sized raise
// labels such as "raise_3bb" collapse to the plain raise category.
func FacingActionFromString(s string) (FacingAction, bool) {
	s = strings.ToLower(s)
	if strings.HasPrefix(s, "raise_") {
		return FacingRaise, true
	}
	for i, name := range facingNames {
		if s == name {
			return FacingAction(i), true
		}
	}
	return 0, false
}

// DecisionKey identifies one preflop situation. Every well-formed key
// resolves to a decision.
type DecisionKey struct {
	Hand          string // 169-combo notation: "AA", "AKs", "72o"
	Position      Position
	Facing        FacingAction
	PlayersBehind int // 0 through 7
	Stack         StackTier
}

// String encodes the key as hand|position|facing|behind|stack.
func (k DecisionKey) String() string {
	return fmt.Sprintf("%s|%s|%s|%d|%s", k.Hand, k.Position, k.Facing, k.PlayersBehind, k.Stack)
}

// ParseKey decodes a key produced by String.
func ParseKey(s string) (DecisionKey, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 5 {
		return DecisionKey{}, fmt.Errorf("gto: malformed key %q", s)
	}

	position, ok := PositionFromString(parts[1])
	if !ok {
		return DecisionKey{}, fmt.Errorf("gto: unknown position %q", parts[1])
	}
	facing, ok := FacingActionFromString(parts[2])
	if !ok {
		return DecisionKey{}, fmt.Errorf("gto: unknown facing action %q", parts[2])
	}
	behind, err := strconv.Atoi(parts[3])
	if err != nil || behind < 0 || behind > 7 {
		return DecisionKey{}, fmt.Errorf("gto: players behind %q out of range", parts[3])
	}
	stack, ok := StackTierFromString(parts[4])
	if !ok {
		return DecisionKey{}, fmt.Errorf("gto: unknown stack tier %q", parts[4])
	}

	return DecisionKey{
		Hand:          parts[0],
		Position:      position,
		Facing:        facing,
		PlayersBehind: behind,
		Stack:         stack,
	}, nil
}

// normalize clamps out-of-range fields so lookups stay total.
func (k DecisionKey) normalize() DecisionKey {
	if k.PlayersBehind < 0 {
		k.PlayersBehind = 0
	}
	if k.PlayersBehind > 7 {
		k.PlayersBehind = 7
	}
	return k
}
