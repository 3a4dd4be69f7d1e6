package gto

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/cardworks/holdem/internal/deck"
)

type cachedDecision struct {
	decision  Decision
	corrected bool
}

// Engine answers preflop situations from the strategy tables, memoizing
// by key. The same key always yields the same decision; lookups are safe
// from any number of goroutines.
type Engine struct {
	mu     sync.RWMutex
	cache  map[DecisionKey]cachedDecision
	logger *log.Logger
}

// NewEngine creates an engine with an empty cache. Decisions are computed
// on first lookup; call Warm to materialize the full table up front.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		cache:  make(map[DecisionKey]cachedDecision),
		logger: logger.WithPrefix("gto"),
	}
}

// Decide returns the recommendation for a situation. It never fails: out
// of range fields are clamped and unknown hands resolve to the weakest
// tier's line.
func (e *Engine) Decide(key DecisionKey) Decision {
	decision, _ := e.DecideChecked(key)
	return decision
}

// DecideChecked is Decide plus a flag reporting whether the raw table
// produced an illegal check against a raise and was corrected to a fold.
func (e *Engine) DecideChecked(key DecisionKey) (Decision, bool) {
	key = key.normalize()

	e.mu.RLock()
	entry, ok := e.cache[key]
	e.mu.RUnlock()
	if ok {
		return entry.decision, entry.corrected
	}

	decision := compute(key)

	corrected := false
	if decision.Action == Check && key.Facing.IsRaise() {
		// There is a live bet: checking is impossible. Fold instead and
		// tell the caller the table was wrong here.
		e.logger.Warn("corrected illegal check to fold",
			"hand", key.Hand, "position", key.Position, "facing", key.Facing)
		decision = fold()
		corrected = true
	}

	// Two goroutines may race to compute the same key; both arrive at the
	// same value, so last write wins harmlessly.
	e.mu.Lock()
	e.cache[key] = cachedDecision{decision: decision, corrected: corrected}
	e.mu.Unlock()

	return decision, corrected
}

// Warm materializes every reachable key: 169 hands, 8 positions, all
// facing actions, 0-7 players behind and 3 stack tiers.
func (e *Engine) Warm() int {
	count := 0
	for _, hand := range deck.AllNotations() {
		for position := UTG; position <= BB; position++ {
			for facing := FacingNone; facing <= FacingCold4Bet; facing++ {
				for behind := 0; behind <= 7; behind++ {
					for stack := ShortStack; stack <= DeepStack; stack++ {
						e.Decide(DecisionKey{
							Hand:          hand,
							Position:      position,
							Facing:        facing,
							PlayersBehind: behind,
							Stack:         stack,
						})
						count++
					}
				}
			}
		}
	}
	return count
}

// CacheSize reports how many keys have been resolved so far.
func (e *Engine) CacheSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}
