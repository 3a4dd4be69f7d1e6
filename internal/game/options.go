package game

import (
	"math/rand/v2"

	"github.com/cardworks/holdem/internal/deck"
)

const defaultStartingChips = 10000

type handConfig struct {
	startChips int
	chipCounts []int
	deck       *deck.Deck
	rng        *rand.Rand
}

// HandOption configures a new hand.
type HandOption func(*handConfig)

// WithUniformChips gives every seat the same starting stack.
func WithUniformChips(chips int) HandOption {
	return func(cfg *handConfig) {
		cfg.startChips = chips
	}
}

// WithChips sets per-seat starting stacks. Seats with zero chips sit the
// hand out. The slice length must match the number of players.
func WithChips(chips ...int) HandOption {
	return func(cfg *handConfig) {
		cfg.chipCounts = chips
	}
}

// WithDeck supplies a prepared deck, typically a deck.Stacked one in
// tests. It takes precedence over WithRand.
func WithDeck(d *deck.Deck) HandOption {
	return func(cfg *handConfig) {
		cfg.deck = d
	}
}

// WithRand supplies the RNG used to shuffle the hand's deck.
func WithRand(rng *rand.Rand) HandOption {
	return func(cfg *handConfig) {
		cfg.rng = rng
	}
}
