package gto

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideOpensAcesForTwoAndAHalf(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	decision := engine.Decide(DecisionKey{
		Hand:          "AA",
		Position:      UTG,
		Facing:        FacingNone,
		PlayersBehind: 7,
		Stack:         MediumStack,
	})

	assert.Equal(t, Raise, decision.Action)
	assert.InDelta(t, 2.5, decision.Amount, 0.001)
	assert.Equal(t, 1.0, decision.Frequency)
}

func TestDecideFourBetsAcesVersusThreeBet(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	decision := engine.Decide(DecisionKey{
		Hand:          "AA",
		Position:      CO,
		Facing:        Facing3Bet,
		PlayersBehind: 2,
		Stack:         MediumStack,
	})

	assert.Equal(t, Raise, decision.Action)
	assert.InDelta(t, 22, decision.Amount, 0.001)
}

func TestDecideFoldsTrashVersusRaise(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	for position := UTG; position <= BB; position++ {
		decision := engine.Decide(DecisionKey{
			Hand:          "72o",
			Position:      position,
			Facing:        FacingRaise,
			PlayersBehind: 3,
			Stack:         MediumStack,
		})
		assert.Equal(t, Fold, decision.Action, position.String())
	}
}

func TestDecideShortStackJamsPremiums(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	decision := engine.Decide(DecisionKey{
		Hand:          "KK",
		Position:      MP,
		Facing:        FacingRaise,
		PlayersBehind: 4,
		Stack:         ShortStack,
	})
	assert.Equal(t, AllIn, decision.Action)
}

func TestDecideBigBlindChecksUnopened(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	decision := engine.Decide(DecisionKey{
		Hand:          "72o",
		Position:      BB,
		Facing:        FacingNone,
		PlayersBehind: 0,
		Stack:         MediumStack,
	})
	assert.Equal(t, Check, decision.Action)
}

func TestDecideNeverChecksVersusRaise(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	raiseFacings := []FacingAction{
		FacingRaise, Facing3Bet, Facing4Bet, Facing5Bet,
		FacingSqueeze, FacingIsolation, FacingCold4Bet,
	}

	for _, hand := range []string{"AA", "JTs", "72o", "A5s", "22"} {
		for position := UTG; position <= BB; position++ {
			for _, facing := range raiseFacings {
				for stack := ShortStack; stack <= DeepStack; stack++ {
					decision := engine.Decide(DecisionKey{
						Hand: hand, Position: position, Facing: facing,
						PlayersBehind: 2, Stack: stack,
					})
					assert.NotEqual(t, Check, decision.Action,
						"%s %s vs %s %s", hand, position, facing, stack)
				}
			}
		}
	}
}

func TestDecideDeterministic(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	key := DecisionKey{Hand: "T9s", Position: BTN, Facing: FacingRaise, PlayersBehind: 2, Stack: DeepStack}

	first := engine.Decide(key)
	second := engine.Decide(key)
	assert.Equal(t, first, second)

	// A fresh engine answers identically: the cache never changes results.
	assert.Equal(t, first, NewEngine(nil).Decide(key))
}

func TestDecideCheckedReportsCorrection(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	key := DecisionKey{Hand: "AA", Position: UTG, Facing: Facing3Bet, PlayersBehind: 3, Stack: MediumStack}

	decision, corrected := engine.DecideChecked(key)
	assert.False(t, corrected)
	assert.NotEqual(t, Check, decision.Action)

	// Same answer and flag on the cached path.
	again, correctedAgain := engine.DecideChecked(key)
	assert.Equal(t, decision, again)
	assert.Equal(t, corrected, correctedAgain)
}

func TestDecideClampsPlayersBehind(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	base := DecisionKey{Hand: "QQ", Position: BTN, Facing: FacingNone, Stack: MediumStack}

	low := base
	low.PlayersBehind = -3
	high := base
	high.PlayersBehind = 99

	clampedLow := base
	clampedLow.PlayersBehind = 0
	clampedHigh := base
	clampedHigh.PlayersBehind = 7

	assert.Equal(t, engine.Decide(clampedLow), engine.Decide(low))
	assert.Equal(t, engine.Decide(clampedHigh), engine.Decide(high))
}

func TestDecideConcurrent(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	key := DecisionKey{Hand: "AKs", Position: CO, Facing: FacingRaise, PlayersBehind: 3, Stack: MediumStack}
	want := engine.Decide(key)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, want, engine.Decide(key))
			}
		}()
	}
	wg.Wait()
}

func TestWarmMaterializesFullTable(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	looked := engine.Warm()

	// 169 hands x 8 positions x 9 facing actions x 8 counts x 3 tiers.
	require.Equal(t, 169*8*9*8*3, looked)
	assert.Equal(t, looked, engine.CacheSize())
}
