package abilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
	"github.com/lox/magicalathlete/internal/randutil"
)

// abilityFactory maps every ability name this package implements to its
// constructor, used directly by tests that need a wired *race.Engine
// rather than a bare struct under test.
func abilityFactory(name ids.AbilityName, ownerIdx int) (race.Ability, error) {
	switch name {
	case ids.CentaurTrample:
		return NewTrample(ownerIdx), nil
	case ids.HugeBabyPush:
		return NewHugeBaby(ownerIdx), nil
	case ids.BananaTrip:
		return NewBanana(ownerIdx), nil
	case ids.ScoochStep:
		return NewScoocher(ownerIdx), nil
	case ids.CopyLead:
		return NewCopycat(ownerIdx), nil
	case ids.GunkSlime:
		return NewGunk(ownerIdx), nil
	case ids.PartyPull:
		return NewPartyPull(ownerIdx), nil
	case ids.PartyBoost:
		return NewPartyBoost(ownerIdx), nil
	case ids.BabaYagaTrip:
		return NewBabaYaga(ownerIdx), nil
	case ids.FlipFlopSwap:
		return NewFlipFlop(ownerIdx), nil
	case ids.RomanticMove:
		return NewRomantic(ownerIdx), nil
	case ids.MagicalReroll:
		return NewMagician(ownerIdx), nil
	default:
		return nil, race.ErrUnknownAbility
	}
}

func newTestEngine(t *testing.T, racers []race.RacerSpec) *race.Engine {
	t.Helper()
	board := race.NewBoard(ids.StandardBoard, 1000, 999)
	eng, err := race.NewEngine(racers, board, race.DefaultRules(), abilityFactory, randutil.New(1), nil)
	require.NoError(t, err)
	return eng
}

// newTestEngineWithDummy prepends an ability-less racer at index 0, parked
// far from the board region the given racers occupy. RunTurn always rolls
// dice for the current racer (index 0 here); since the dummy has nothing
// nearby to interact with, its random roll cannot affect assertions made
// about the other racers, whose own reactions are driven by events pushed
// directly onto the queue rather than by a dice roll. Returns the engine
// and the index offset applied to the caller's racer list.
func newTestEngineWithDummy(t *testing.T, racers []race.RacerSpec) (*race.Engine, int) {
	t.Helper()
	dummy := race.RacerSpec{Name: ids.HugeBaby}
	eng := newTestEngine(t, append([]race.RacerSpec{dummy}, racers...))
	eng.State().Racers[0].Position = 500
	return eng, 1
}

func stateWithPositions(positions ...int) *race.GameState {
	racers := make([]*race.RacerState, len(positions))
	for i, p := range positions {
		racers[i] = &race.RacerState{Idx: i, Position: p}
	}
	return &race.GameState{Racers: racers}
}

func TestNearestOtherBreaksTiesByLowestIndex(t *testing.T) {
	state := stateWithPositions(5, 3, 7)
	assert.Equal(t, 1, nearestOther(state, 0))
}

func TestNearestOtherIgnoresInactiveRacers(t *testing.T) {
	state := stateWithPositions(5, 3, 7)
	state.Racers[1].FinishPosition = 1
	assert.Equal(t, 2, nearestOther(state, 0))
}

func TestNearestOtherReturnsMinusOneAlone(t *testing.T) {
	state := stateWithPositions(5)
	assert.Equal(t, -1, nearestOther(state, 0))
}

func TestLeaderIdxPicksFurthestAlong(t *testing.T) {
	state := stateWithPositions(5, 12, 8)
	assert.Equal(t, 1, leaderIdx(state, 0))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1, sign(4))
	assert.Equal(t, -1, sign(-4))
	assert.Equal(t, 0, sign(0))
}

func TestIsLast(t *testing.T) {
	state := stateWithPositions(1, 9, 5)
	assert.True(t, isLast(state, 0))
	assert.False(t, isLast(state, 1))
}

func TestIsLastFalseWhenOwnerNotActive(t *testing.T) {
	state := stateWithPositions(1, 9, 5)
	state.Racers[0].FinishPosition = 1
	assert.False(t, isLast(state, 0))
}

func TestAheadOfPicksNearestGreaterPosition(t *testing.T) {
	state := stateWithPositions(1, 9, 5)
	assert.Equal(t, 2, aheadOf(state, 0))
}

func TestAheadOfReturnsMinusOneWhenInFront(t *testing.T) {
	state := stateWithPositions(9, 1, 5)
	assert.Equal(t, -1, aheadOf(state, 0))
}
