// Package simulator plays table-strategy hands against itself across
// independent concurrent tables and aggregates the tracked seat's
// results. Every hand is reproducible from its seed.
package simulator

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/cardworks/holdem/internal/advisor"
	"github.com/cardworks/holdem/internal/deck"
	"github.com/cardworks/holdem/internal/game"
	"github.com/cardworks/holdem/internal/gto"
	"github.com/cardworks/holdem/internal/randutil"
	"github.com/cardworks/holdem/internal/statistics"
)

// Config controls a simulation run.
type Config struct {
	Hands         int // total hands across all tables
	Tables        int // concurrent independent tables
	Players       int // seats per table, 2 through 8
	SmallBlind    int
	BigBlind      int
	StartingChips int
	Seed          int64
	Logger        *log.Logger
}

func (c *Config) applyDefaults() {
	if c.Hands <= 0 {
		c.Hands = 1000
	}
	if c.Tables <= 0 {
		c.Tables = 4
	}
	if c.Players < 2 {
		c.Players = 6
	}
	if c.Players > 8 {
		c.Players = 8
	}
	if c.SmallBlind <= 0 {
		c.SmallBlind = 5
	}
	if c.BigBlind <= c.SmallBlind {
		c.BigBlind = c.SmallBlind * 2
	}
	if c.StartingChips <= 0 {
		c.StartingChips = 100 * c.BigBlind
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
}

// Simulator runs hands with every seat driven by the decision engine
// preflop and a passive check/call line postflop.
type Simulator struct {
	config Config
	engine *gto.Engine
}

// New creates a simulator. Zero config fields take sensible defaults.
func New(config Config) *Simulator {
	config.applyDefaults()
	return &Simulator{
		config: config,
		engine: gto.NewEngine(config.Logger),
	}
}

// Run plays the configured number of hands, splitting them across the
// configured tables, and returns merged statistics for seat 0. The run
// stops early when ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	perTable := s.config.Hands / s.config.Tables
	remainder := s.config.Hands % s.config.Tables

	results := make([]*statistics.Statistics, s.config.Tables)
	g, ctx := errgroup.WithContext(ctx)

	for table := 0; table < s.config.Tables; table++ {
		hands := perTable
		if table < remainder {
			hands++
		}
		g.Go(func() error {
			stats := statistics.New(s.config.BigBlind)
			for hand := 0; hand < hands; hand++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				// Seeds are disjoint per table so tables stay
				// independent and each hand can be replayed alone.
				seed := s.config.Seed + int64(table)*1_000_000 + int64(hand)
				result, err := s.playHand(seed, hand)
				if err != nil {
					return fmt.Errorf("table %d hand %d (seed %d): %w", table, hand, seed, err)
				}
				stats.Add(result)
			}
			results[table] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := statistics.New(s.config.BigBlind)
	for _, stats := range results {
		merged.Merge(stats)
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return merged, nil
}

// playHand runs one hand to completion and reports seat 0's result. The
// button rotates with the hand index so no seat keeps a position edge.
func (s *Simulator) playHand(seed int64, handIndex int) (statistics.HandResult, error) {
	names := make([]string, s.config.Players)
	for i := range names {
		names[i] = fmt.Sprintf("seat%d", i)
	}
	button := handIndex % s.config.Players

	h := game.NewHand(names, button, s.config.SmallBlind, s.config.BigBlind,
		game.WithRand(randutil.New(seed)),
		game.WithUniformChips(s.config.StartingChips),
	)

	startingChips := s.config.StartingChips
	phaseReached := h.Phase

	for !h.IsComplete() {
		for h.ActivePlayer >= 0 && !h.IsRoundOver() {
			seat := h.ActivePlayer
			external := s.chooseAction(h, seat)
			action, amount := advisor.ValidateExternal(h, seat, external, s.config.Logger)
			if err := h.ApplyAction(seat, action, amount); err != nil {
				return statistics.HandResult{}, fmt.Errorf("seat %d %s %d: %w", seat, action, amount, err)
			}
		}
		if h.Phase == game.Showdown {
			break
		}
		if err := h.AdvancePhase(); err != nil {
			return statistics.HandResult{}, err
		}
		if h.Phase > phaseReached {
			phaseReached = h.Phase
		}
	}

	pot := h.Pot()
	wentToShowdown := showdownReached(h)
	if _, err := h.Settle(); err != nil {
		return statistics.HandResult{}, err
	}

	net := float64(h.Players[0].Chips-startingChips) / float64(s.config.BigBlind)
	return statistics.HandResult{
		NetBB:          net,
		Seed:           seed,
		Position:       positionOf(0, button, s.config.Players),
		WentToShowdown: wentToShowdown,
		FinalPot:       pot,
		PhaseReached:   phaseReached,
	}, nil
}

// chooseAction picks a move for a seat. Preflop comes from the decision
// tables; postflop the seats play a passive check/call line, which keeps
// the run about pot mechanics rather than postflop skill.
func (s *Simulator) chooseAction(h *game.HandState, seat int) advisor.ExternalDecision {
	p := h.Players[seat]

	if h.Phase != game.Preflop {
		if h.CurrentBet > p.Bet {
			return advisor.ExternalDecision{Action: "call"}
		}
		return advisor.ExternalDecision{Action: "check"}
	}

	key := gto.DecisionKey{
		Hand:          deck.Notation(p.HoleCards[0], p.HoleCards[1]),
		Position:      positionOf(seat, h.Button, len(h.Players)),
		Facing:        gto.ClassifyFacing(h.History, seat),
		PlayersBehind: playersBehind(h, seat),
		Stack:         gto.StackTierFromBB(float64(p.Chips+p.Bet) / float64(s.config.BigBlind)),
	}
	decision := s.engine.Decide(key)

	external := advisor.ExternalDecision{Action: decision.Action.String()}
	if decision.Amount > 0 {
		external.Amount = decision.Amount * float64(s.config.BigBlind)
	}
	return external
}

// playersBehind counts the seats still owed a voluntary action after the
// given one this round, capped at the key's range.
func playersBehind(h *game.HandState, seat int) int {
	behind := 0
	for _, p := range h.Players {
		if p.Seat != seat && p.CanAct() && !p.Acted {
			behind++
		}
	}
	if behind > 7 {
		behind = 7
	}
	return behind
}

// showdownReached reports whether more than one player was still in the
// hand when it ended.
func showdownReached(h *game.HandState) bool {
	contenders := 0
	for _, p := range h.Players {
		if p.InHand() {
			contenders++
		}
	}
	return contenders > 1
}

// earlyLabels is the label pool for seats between the big blind and the
// button, assigned so the last seat before the button is always CO.
var earlyLabels = []gto.Position{gto.UTG, gto.UTG1, gto.MP, gto.MP1, gto.CO}

// positionOf labels a seat relative to the button. Short-handed tables
// keep the late labels and drop early ones, so 6-max plays MP/MP+1/CO
// rather than UTG/UTG+1/MP.
func positionOf(seat, button, players int) gto.Position {
	offset := (seat - button + players) % players
	switch {
	case players == 2:
		// Heads-up the button is the small blind.
		if offset == 0 {
			return gto.SB
		}
		return gto.BB
	case offset == 0:
		return gto.BTN
	case offset == 1:
		return gto.SB
	case offset == 2:
		return gto.BB
	default:
		pool := earlyLabels[len(earlyLabels)-(players-3):]
		return pool[offset-3]
	}
}
