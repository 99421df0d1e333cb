package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
	"github.com/lox/magicalathlete/internal/randutil"
)

func newTestEngine(t *testing.T) *race.Engine {
	t.Helper()
	board := race.NewBoard(ids.StandardBoard, 100, 99)
	factory := func(ids.AbilityName, int) (race.Ability, error) { return nil, race.ErrUnknownAbility }
	eng, err := race.NewEngine([]race.RacerSpec{
		{Name: ids.Centaur},
		{Name: ids.Banana},
	}, board, race.DefaultRules(), factory, randutil.New(1), nil)
	require.NoError(t, err)
	return eng
}

func TestMetricsAggregatorTalliesAbilityTriggersSplitBySelfAndOther(t *testing.T) {
	eng := newTestEngine(t)
	m := NewMetricsAggregator(eng)

	m.OnEvent(race.AbilityTriggeredEvent{Ability: ids.ScoochStep, Responsible: 0, Target: 0}, 0)
	m.OnEvent(race.AbilityTriggeredEvent{Ability: ids.ScoochStep, Responsible: 0, Target: 0}, 0)
	m.OnEvent(race.AbilityTriggeredEvent{Ability: ids.CentaurTrample, Responsible: 0, Target: 1}, 0)

	results := m.Finalize()
	require.Len(t, results, 2)
	assert.Equal(t, 2, results[0].AbilityTriggers[ids.ScoochStep])
	assert.Equal(t, 2, results[0].SelfTargetCount[ids.ScoochStep])
	assert.Equal(t, 1, results[0].AbilityTriggers[ids.CentaurTrample])
	assert.Equal(t, 0, results[0].SelfTargetCount[ids.CentaurTrample])
}

func TestMetricsAggregatorCountsTripRecoveriesAndDiceRolls(t *testing.T) {
	eng := newTestEngine(t)
	m := NewMetricsAggregator(eng)

	m.OnEvent(race.TripRecoveryEvent{RacerIdx: 1}, 0)
	m.OnEvent(race.RollAndMainMoveEvent{RacerIdx: 1}, 0)
	m.OnEvent(race.RollAndMainMoveEvent{RacerIdx: 1}, 1)

	results := m.Finalize()
	assert.Equal(t, 1, results[1].TripRecoveries)
	assert.Equal(t, 2, results[1].DiceRolled)
}

func TestMetricsAggregatorCountsTurnsAtTurnEndBeforeCursorAdvances(t *testing.T) {
	eng := newTestEngine(t)
	m := NewMetricsAggregator(eng)

	m.OnTurnEnd(eng.State())
	m.OnTurnEnd(eng.State())

	results := m.Finalize()
	assert.Equal(t, 2, results[0].TurnsTaken)
	assert.Equal(t, 0, results[1].TurnsTaken)
}

func TestMetricsAggregatorReportsFinishedAndEliminatedAlongsideSnapshots(t *testing.T) {
	eng := newTestEngine(t)
	m := NewMetricsAggregator(eng)

	state := eng.State()
	state.Racers[0].FinishPosition = 1
	state.Racers[1].Eliminated = true

	results := m.Finalize()
	require.Len(t, results, 2)
	assert.True(t, results[0].Finished)
	assert.False(t, results[0].Eliminated)
	assert.False(t, results[1].Finished)
	assert.True(t, results[1].Eliminated)
}

func TestMetricsAggregatorFinalizeIsSortedByRacerIndex(t *testing.T) {
	eng := newTestEngine(t)
	m := NewMetricsAggregator(eng)
	results := m.Finalize()
	require.Len(t, results, 2)
	assert.Equal(t, 0, results[0].Idx)
	assert.Equal(t, 1, results[1].Idx)
}
