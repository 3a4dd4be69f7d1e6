// Package statistics aggregates per-hand results across a simulation run
// and answers the usual questions about them: win rate in bb/hand, its
// confidence interval, and where the chips actually came from.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/cardworks/holdem/internal/game"
	"github.com/cardworks/holdem/internal/gto"
)

// HandResult is the outcome of one hand from the tracked seat's view.
type HandResult struct {
	NetBB          float64      // net big blinds won or lost
	Seed           int64        // RNG seed, kept for replaying the hand
	Position       gto.Position // tracked seat's preflop position
	WentToShowdown bool
	FinalPot       int        // total pot in chips
	PhaseReached   game.Phase // furthest phase the hand reached
}

// PositionStats accumulates results for one preflop position.
type PositionStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

// Statistics accumulates hand results. Not safe for concurrent use; the
// simulator merges per-table copies after the workers finish.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
	Values []float64

	// Chips won with a showdown versus won by folds tell very different
	// stories about a strategy, so both sides of the ledger are kept.
	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64
	NonShowdownBB   float64
	AllBB           float64

	ByPosition [8]PositionStats // indexed by gto.Position

	MaxPotChips int
	MaxPotBB    float64
	BigPots     int // pots of 50bb or more
	BigPotsBB   float64

	bigBlind int
}

// New creates an accumulator for results measured against the given big
// blind size in chips.
func New(bigBlind int) *Statistics {
	if bigBlind <= 0 {
		bigBlind = 1
	}
	return &Statistics{bigBlind: bigBlind}
}

// Add incorporates one hand result.
func (s *Statistics) Add(result HandResult) {
	netBB := result.NetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)

	if netBB > 0 {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}
	if result.WentToShowdown {
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB

	if result.Position >= gto.UTG && result.Position <= gto.BB {
		ps := &s.ByPosition[result.Position]
		ps.Hands++
		ps.SumBB += netBB
		ps.SumBB2 += netBB * netBB
	}

	potBB := float64(result.FinalPot) / float64(s.bigBlind)
	if result.FinalPot > s.MaxPotChips {
		s.MaxPotChips = result.FinalPot
		s.MaxPotBB = potBB
	}
	if potBB >= 50 {
		s.BigPots++
		s.BigPotsBB += netBB
	}
}

// Merge folds another accumulator into this one.
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.SumBB += other.SumBB
	s.SumBB2 += other.SumBB2
	s.Values = append(s.Values, other.Values...)

	s.ShowdownWins += other.ShowdownWins
	s.NonShowdownWins += other.NonShowdownWins
	s.ShowdownBB += other.ShowdownBB
	s.NonShowdownBB += other.NonShowdownBB
	s.AllBB += other.AllBB

	for i := range s.ByPosition {
		s.ByPosition[i].Hands += other.ByPosition[i].Hands
		s.ByPosition[i].SumBB += other.ByPosition[i].SumBB
		s.ByPosition[i].SumBB2 += other.ByPosition[i].SumBB2
	}

	if other.MaxPotChips > s.MaxPotChips {
		s.MaxPotChips = other.MaxPotChips
		s.MaxPotBB = other.MaxPotBB
	}
	s.BigPots += other.BigPots
	s.BigPotsBB += other.BigPotsBB
}

// Mean returns the average result in big blinds per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of the results.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median result.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the linearly interpolated value at p in [0,1].
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PositionMean returns the mean result for one preflop position.
func (s *Statistics) PositionMean(position gto.Position) float64 {
	if position < gto.UTG || position > gto.BB {
		return 0
	}
	ps := s.ByPosition[position]
	if ps.Hands == 0 {
		return 0
	}
	return ps.SumBB / float64(ps.Hands)
}

// Validate checks the internal accounting for consistency.
func (s *Statistics) Validate() error {
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) > 1e-6 {
		return fmt.Errorf("ledger mismatch: all=%.6f showdown=%.6f non-showdown=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("have %d values for %d hands", len(s.Values), s.Hands)
	}
	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Hands {
		return fmt.Errorf("%d wins exceed %d hands", wins, s.Hands)
	}
	positionHands := 0
	for _, ps := range s.ByPosition {
		positionHands += ps.Hands
	}
	if positionHands != s.Hands {
		return fmt.Errorf("position hands %d do not match total %d", positionHands, s.Hands)
	}
	return nil
}
