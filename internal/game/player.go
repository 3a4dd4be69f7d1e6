package game

import "github.com/cardworks/holdem/internal/deck"

// Player represents a player in a hand. All fields are mutated only by the
// hand state machine in response to ApplyAction.
type Player struct {
	Seat      int
	Name      string
	Chips     int // stack behind, excluding the current bet
	HoleCards []deck.Card
	Folded    bool
	AllIn     bool
	Bet       int  // bet in the current round
	TotalBet  int  // total contribution this hand, across all rounds
	Acted     bool // has voluntarily acted this round
}

// InHand returns true while the player can still win a pot.
func (p *Player) InHand() bool {
	return !p.Folded
}

// CanAct returns true if the player can still voluntarily act.
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}
