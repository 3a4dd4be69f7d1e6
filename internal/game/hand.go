package game

import (
	"fmt"

	"github.com/cardworks/holdem/internal/deck"
)

// HandState owns all state for a single hand: players, phase, board, bets
// and the action history. Exactly one ApplyAction may be in flight per
// HandState; separate hands are fully independent.
type HandState struct {
	Players      []*Player
	Button       int
	Phase        Phase
	Board        []deck.Card
	CurrentBet   int
	ActivePlayer int // seat to act, -1 when nobody can
	LastRaiser   int
	History      []ActionRecord

	deck       *deck.Deck
	smallBlind int
	bigBlind   int
	lastRaise  int // raise increment this round, 0 until the first raise
	actedCount int // voluntary actions this round
	bbSeat     int // big blind seat, fixed at hand start
	totalChips int // conservation baseline, fixed at hand start
	settled    bool
}

// NewHand creates a hand, posts blinds and deals two hole cards to every
// seat with chips. Blinds rotate from the button skipping zero-chip seats;
// heads-up the button posts the small blind. A blind posted by a short
// stack is capped and that seat starts the hand all-in.
//
// Misuse (too few players, button out of range, non-positive blinds) is a
// programming error and panics.
func NewHand(names []string, button, smallBlind, bigBlind int, opts ...HandOption) *HandState {
	if len(names) < 2 {
		panic("game: at least 2 players required")
	}
	if button < 0 || button >= len(names) {
		panic("game: button position out of range")
	}
	if smallBlind <= 0 || bigBlind <= smallBlind {
		panic("game: blinds must satisfy 0 < small < big")
	}

	cfg := &handConfig{startChips: defaultStartingChips}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.chipCounts != nil && len(cfg.chipCounts) != len(names) {
		panic("game: chip counts must match number of players")
	}
	if cfg.deck == nil {
		if cfg.rng == nil {
			panic("game: an RNG or a prepared deck is required")
		}
		cfg.deck = deck.NewShuffled(cfg.rng)
	}

	h := &HandState{
		Button:       button,
		Phase:        Preflop,
		Board:        make([]deck.Card, 0, 5),
		ActivePlayer: -1,
		LastRaiser:   -1,
		deck:         cfg.deck,
		smallBlind:   smallBlind,
		bigBlind:     bigBlind,
	}

	for seat, name := range names {
		chips := cfg.startChips
		if cfg.chipCounts != nil {
			chips = cfg.chipCounts[seat]
		}
		p := &Player{Seat: seat, Name: name, Chips: chips}
		if chips <= 0 {
			// Busted seats sit the hand out.
			p.Folded = true
		}
		h.Players = append(h.Players, p)
		h.totalChips += chips
	}

	h.postBlinds()
	h.dealHoleCards()
	h.ActivePlayer = h.firstToAct()

	return h
}

// nextFunded walks seats clockwise from the given seat (exclusive) and
// returns the next one able to post chips.
func (h *HandState) nextFunded(from int) int {
	n := len(h.Players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if !h.Players[seat].Folded {
			return seat
		}
	}
	return -1
}

func (h *HandState) postBlinds() {
	var sbSeat, bbSeat int
	if h.fundedCount() == 2 {
		// Heads-up: the button posts the small blind.
		sbSeat = h.Button
		if h.Players[sbSeat].Folded {
			sbSeat = h.nextFunded(h.Button)
		}
		bbSeat = h.nextFunded(sbSeat)
	} else {
		sbSeat = h.nextFunded(h.Button)
		bbSeat = h.nextFunded(sbSeat)
	}

	h.postBlind(sbSeat, h.smallBlind)
	h.postBlind(bbSeat, h.bigBlind)
	h.CurrentBet = h.bigBlind

	h.bbSeat = bbSeat
}

// postBlind moves a blind into the player's bet, capped at their stack.
func (h *HandState) postBlind(seat, amount int) {
	p := h.Players[seat]
	blind := min(amount, p.Chips)
	p.Bet = blind
	p.TotalBet = blind
	p.Chips -= blind
	if p.Chips == 0 {
		p.AllIn = true
	}
}

func (h *HandState) dealHoleCards() {
	for _, p := range h.Players {
		if !p.Folded {
			p.HoleCards = h.deck.Deal(2)
		}
	}
}

// firstToAct returns the first seat after the big blind that can act.
func (h *HandState) firstToAct() int {
	return h.nextActor(h.bbSeat)
}

// nextActor returns the next seat after from that can still voluntarily
// act, or -1 when there is none.
func (h *HandState) nextActor(from int) int {
	n := len(h.Players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if h.Players[seat].CanAct() {
			return seat
		}
	}
	return -1
}

func (h *HandState) fundedCount() int {
	count := 0
	for _, p := range h.Players {
		if !p.Folded {
			count++
		}
	}
	return count
}

// playersInHand counts seats that have not folded.
func (h *HandState) playersInHand() int {
	count := 0
	for _, p := range h.Players {
		if p.InHand() {
			count++
		}
	}
	return count
}

// actorCount counts seats that can still voluntarily act.
func (h *HandState) actorCount() int {
	count := 0
	for _, p := range h.Players {
		if p.CanAct() {
			count++
		}
	}
	return count
}

// ApplyAction validates and applies one action for the given seat. On any
// rejection the state is unchanged and the caller must retry with a legal
// action. Raise amounts are "raise to" totals for the round; Call, Check
// and Fold ignore the amount. ApplyAction never advances the phase: the
// orchestrator checks IsRoundOver and calls AdvancePhase.
func (h *HandState) ApplyAction(seat int, action Action, amount int) error {
	if h.settled || h.Phase == Showdown {
		return ErrHandComplete
	}
	if seat != h.ActivePlayer {
		return fmt.Errorf("%w: seat %d (action is on seat %d)", ErrNotPlayersTurn, seat, h.ActivePlayer)
	}

	va, ok := h.actionAllowed(seat, action)
	if !ok {
		return fmt.Errorf("%w: %s by seat %d", ErrIllegalAction, action, seat)
	}

	p := h.Players[seat]

	switch action {
	case Fold:
		p.Folded = true

	case Check:
		// No chips move.

	case Call:
		h.commit(p, va.Min)

	case Raise:
		stackTotal := p.Chips + p.Bet
		if amount > stackTotal {
			return fmt.Errorf("%w: raise to %d with stack %d", ErrInsufficientChips, amount, stackTotal)
		}
		if amount < va.Min {
			return fmt.Errorf("%w: raise to %d, minimum %d", ErrRaiseTooSmall, amount, va.Min)
		}
		h.commit(p, amount-p.Bet)
		h.registerRaise(seat, p.Bet)

	case AllIn:
		h.commit(p, p.Chips)
		if p.Bet > h.CurrentBet {
			h.registerRaise(seat, p.Bet)
		}
	}

	p.Acted = true
	h.actedCount++
	h.History = append(h.History, ActionRecord{
		Phase:  h.Phase,
		Seat:   seat,
		Action: action,
		Amount: p.Bet,
	})
	if action == Fold || action == Check {
		h.History[len(h.History)-1].Amount = 0
	}

	h.ActivePlayer = h.nextActor(seat)
	h.checkConservation()

	return nil
}

// commit moves chips from the player's stack into their round bet.
func (h *HandState) commit(p *Player, chips int) {
	if chips > p.Chips {
		chips = p.Chips
	}
	p.Chips -= chips
	p.Bet += chips
	p.TotalBet += chips
	if p.Chips == 0 {
		p.AllIn = true
	}
}

// registerRaise records a new table-high bet and re-opens the action:
// every other player who can still act must act again. Short all-in raises
// re-open the action too, but only a full raise moves the minimum-raise
// increment.
func (h *HandState) registerRaise(seat, newBet int) {
	increment := newBet - h.CurrentBet
	if increment > h.lastRaise {
		h.lastRaise = increment
	}
	h.CurrentBet = newBet
	h.LastRaiser = seat

	for _, other := range h.Players {
		if other.Seat != seat && other.CanAct() {
			other.Acted = false
		}
	}
}

// IsRoundOver reports whether the current betting round is finished: at
// least one player has acted this round, every player who can act has
// acted, and every non-folded player has matched the table-high bet or is
// all-in. Immediately after the blinds it is false even though the
// remaining bets may already be equal; the big blind keeps its option.
func (h *HandState) IsRoundOver() bool {
	if h.playersInHand() <= 1 {
		return true
	}
	if h.actorCount() == 0 {
		return true
	}
	if h.actedCount == 0 {
		return false
	}
	for _, p := range h.Players {
		if !p.CanAct() {
			continue
		}
		if !p.Acted || p.Bet != h.CurrentBet {
			return false
		}
	}
	return true
}

// AdvancePhase finishes the current round and moves to the next phase,
// dealing the community cards it owes (3 for the flop, then 1 and 1).
// When at most one player can still voluntarily act, the remaining board
// is dealt in one step and the hand jumps straight to showdown. Phases
// never move backward.
func (h *HandState) AdvancePhase() error {
	if h.settled || h.Phase == Showdown {
		return ErrHandComplete
	}
	if !h.IsRoundOver() {
		return ErrRoundNotOver
	}

	h.collectBets()

	if h.playersInHand() <= 1 {
		h.Phase = Showdown
		h.ActivePlayer = -1
		return nil
	}

	// Fast-forward: nobody left to bet against, run the board out.
	if h.actorCount() <= 1 {
		for len(h.Board) < 5 {
			h.dealStreet()
		}
		h.Phase = Showdown
		h.ActivePlayer = -1
		return nil
	}

	h.dealStreet()
	if h.Phase == Showdown {
		h.ActivePlayer = -1
		return nil
	}

	h.ActivePlayer = h.nextActor(h.Button)
	return nil
}

// dealStreet advances one phase and deals its community cards.
func (h *HandState) dealStreet() {
	switch h.Phase {
	case Preflop:
		h.Phase = Flop
		h.Board = append(h.Board, h.deck.Deal(3)...)
	case Flop:
		h.Phase = Turn
		h.Board = append(h.Board, h.deck.Deal(1)...)
	case Turn:
		h.Phase = River
		h.Board = append(h.Board, h.deck.Deal(1)...)
	case River:
		h.Phase = Showdown
	}
}

// collectBets sweeps round bets and resets the per-round state. Total
// contributions live on each player's TotalBet, which SidePots reads.
func (h *HandState) collectBets() {
	for _, p := range h.Players {
		p.Bet = 0
		p.Acted = false
	}
	h.CurrentBet = 0
	h.lastRaise = 0
	h.LastRaiser = -1
	h.actedCount = 0
}

// Pot returns all chips committed to the hand so far, collected or not.
func (h *HandState) Pot() int {
	return PotTotal(h.Players)
}

// IsComplete reports whether the hand has reached a terminal state.
func (h *HandState) IsComplete() bool {
	return h.settled || h.Phase == Showdown || h.playersInHand() <= 1
}

// checkConservation panics if chips have leaked. Only the hand's own
// mutators move chips, so a mismatch means a caller bypassed them; that is
// fatal, not a recoverable game condition.
func (h *HandState) checkConservation() {
	total := 0
	for _, p := range h.Players {
		total += p.Chips + p.TotalBet
	}
	if total != h.totalChips {
		panic(fmt.Sprintf("game: chip conservation violated: have %d, want %d", total, h.totalChips))
	}
}
