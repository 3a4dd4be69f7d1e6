package game

import "github.com/cardworks/holdem/internal/deck"

// PlayerSnapshot is a read-only public view of one seat. Hole cards are
// omitted; they belong to the seat alone.
type PlayerSnapshot struct {
	Seat     int    `json:"seat"`
	Name     string `json:"name"`
	Chips    int    `json:"chips"`
	Bet      int    `json:"bet"`
	TotalBet int    `json:"total_bet"`
	Folded   bool   `json:"folded"`
	AllIn    bool   `json:"all_in"`
}

// Snapshot is a read-only copy of the table state safe to hand to other
// goroutines or serialize onto the wire.
type Snapshot struct {
	Phase        Phase            `json:"phase"`
	Board        []deck.Card      `json:"board"`
	Pot          int              `json:"pot"`
	CurrentBet   int              `json:"current_bet"`
	MinRaiseTo   int              `json:"min_raise_to"`
	Button       int              `json:"button"`
	ActivePlayer int              `json:"active_player"`
	Players      []PlayerSnapshot `json:"players"`
}

// Snapshot copies the current table state. Later mutations of the hand do
// not show through.
func (h *HandState) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        h.Phase,
		Board:        append([]deck.Card(nil), h.Board...),
		Pot:          h.Pot(),
		CurrentBet:   h.CurrentBet,
		MinRaiseTo:   h.MinRaiseTo(),
		Button:       h.Button,
		ActivePlayer: h.ActivePlayer,
		Players:      make([]PlayerSnapshot, 0, len(h.Players)),
	}
	for _, p := range h.Players {
		snap.Players = append(snap.Players, PlayerSnapshot{
			Seat:     p.Seat,
			Name:     p.Name,
			Chips:    p.Chips,
			Bet:      p.Bet,
			TotalBet: p.TotalBet,
			Folded:   p.Folded,
			AllIn:    p.AllIn,
		})
	}
	return snap
}
