package abilities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// TestScoocherIgnoresItsOwnTrigger mirrors the original source's
// AbilityScoochStep.execute(), which bails out when the triggering
// event's responsible racer is the ability's own owner: Scoocher does
// not chain off of its own hop.
func TestScoocherIgnoresItsOwnTrigger(t *testing.T) {
	eng, off := newTestEngineWithDummy(t, []race.RacerSpec{
		{Name: ids.Scoocher, Abilities: []ids.AbilityName{ids.ScoochStep}},
	})
	scoocher := off + 0
	state := eng.State()
	start := state.Racers[scoocher].Position

	eng.PushMove(scoocher, 1, ids.AbilitySource(ids.ScoochStep), scoocher, race.PhaseMove, race.EmitAfterResolution)
	eng.RunTurn()

	assert.Equal(t, start+1, state.Racers[scoocher].Position)
}

// TestScoocherReactsToAnotherRacersTrigger confirms the owner-equality
// guard only excludes Scoocher's own resolution, not reactions to
// other racers' triggers.
func TestScoocherReactsToAnotherRacersTrigger(t *testing.T) {
	eng, off := newTestEngineWithDummy(t, []race.RacerSpec{
		{Name: ids.Scoocher, Abilities: []ids.AbilityName{ids.ScoochStep}},
		{Name: ids.Centaur},
	})
	scoocher, other := off+0, off+1
	state := eng.State()
	start := state.Racers[scoocher].Position

	eng.PushMove(other, 1, ids.AbilitySource(ids.CentaurTrample), other, race.PhaseMove, race.EmitAfterResolution)
	eng.RunTurn()

	assert.Equal(t, start+1, state.Racers[scoocher].Position)
}

func TestScoochStepSubscribesToAbilityTriggered(t *testing.T) {
	s := NewScoocher(3)
	assert.Equal(t, []race.EventKind{race.KindAbilityTriggered}, s.Triggers())
	assert.Equal(t, ids.ScoochStep, s.Name())
	assert.Equal(t, 3, s.OwnerIdx())
}
