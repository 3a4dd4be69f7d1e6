package simulator

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cardworks/holdem/internal/gto"
)

func testConfig(hands, tables int) Config {
	logger := log.New(io.Discard)
	logger.SetLevel(log.FatalLevel)
	return Config{
		Hands:      hands,
		Tables:     tables,
		Players:    6,
		SmallBlind: 5,
		BigBlind:   10,
		Seed:       42,
		Logger:     logger,
	}
}

func TestRunPlaysAllHands(t *testing.T) {
	t.Parallel()

	stats, err := New(testConfig(40, 4)).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Hands != 40 {
		t.Errorf("played %d hands, want 40", stats.Hands)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestRunDeterministicBySeed(t *testing.T) {
	t.Parallel()

	first, err := New(testConfig(30, 3)).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := New(testConfig(30, 3)).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if first.SumBB != second.SumBB {
		t.Errorf("sum = %f then %f, want identical runs for one seed", first.SumBB, second.SumBB)
	}
	if first.ShowdownWins != second.ShowdownWins {
		t.Errorf("showdown wins = %d then %d", first.ShowdownWins, second.ShowdownWins)
	}
	if first.MaxPotChips != second.MaxPotChips {
		t.Errorf("max pot = %d then %d", first.MaxPotChips, second.MaxPotChips)
	}
}

func TestRunDifferentSeedsDiverge(t *testing.T) {
	t.Parallel()

	cfg := testConfig(50, 2)
	first, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	cfg.Seed = 43
	second, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if first.SumBB == second.SumBB && first.MaxPotChips == second.MaxPotChips {
		t.Error("distinct seeds produced identical runs")
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testConfig(100000, 2)).Run(ctx)
	if err == nil {
		t.Fatal("expected a cancellation error")
	}
}

func TestRunHeadsUp(t *testing.T) {
	t.Parallel()

	cfg := testConfig(20, 2)
	cfg.Players = 2
	stats, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Hands != 20 {
		t.Errorf("played %d hands, want 20", stats.Hands)
	}
	// Heads-up the tracked seat alternates small and big blind.
	if stats.ByPosition[gto.SB].Hands+stats.ByPosition[gto.BB].Hands != 20 {
		t.Errorf("position split %+v does not cover all hands", stats.ByPosition)
	}
}

func TestRunTimely(t *testing.T) {
	t.Parallel()

	// A modest run finishes quickly; a hang here means the betting loop
	// stopped making progress.
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := New(testConfig(100, 4)).Run(context.Background()); err != nil {
			t.Error(err)
		}
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("simulation did not finish in time")
	}
}

func TestPositionOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seat, button, players int
		want                  gto.Position
	}{
		{0, 0, 6, gto.BTN},
		{1, 0, 6, gto.SB},
		{2, 0, 6, gto.BB},
		{3, 0, 6, gto.MP},
		{4, 0, 6, gto.MP1},
		{5, 0, 6, gto.CO},
		{0, 3, 8, gto.MP},
		{2, 3, 8, gto.CO},
		{4, 3, 8, gto.SB},
		{0, 0, 2, gto.SB},
		{1, 0, 2, gto.BB},
	}

	for _, tt := range tests {
		got := positionOf(tt.seat, tt.button, tt.players)
		if got != tt.want {
			t.Errorf("positionOf(%d, %d, %d) = %s, want %s", tt.seat, tt.button, tt.players, got, tt.want)
		}
	}
}
