package abilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

func TestCopycatAdoptsLeadersAbilitiesAtTurnStartButKeepsItself(t *testing.T) {
	eng := newTestEngine(t, []race.RacerSpec{
		{Name: ids.Copycat, Abilities: []ids.AbilityName{ids.CopyLead}},
		{Name: ids.Centaur, Abilities: []ids.AbilityName{ids.CentaurTrample}},
	})
	state := eng.State()
	state.Racers[0].Position = 1
	state.Racers[1].Position = 9 // racer 1 leads

	eng.RunTurn()

	abilities := state.Racers[0].Abilities()
	require.Len(t, abilities, 2)
	assert.Contains(t, abilities, ids.CopyLead)
	assert.Contains(t, abilities, ids.CentaurTrample)

	_, hasCopy := state.Racers[0].ActiveAbilities[ids.CopyLead].(*Copycat)
	assert.True(t, hasCopy)
}

func TestCopycatDoesNothingWithoutAnotherRacer(t *testing.T) {
	eng := newTestEngine(t, []race.RacerSpec{
		{Name: ids.Copycat, Abilities: []ids.AbilityName{ids.CopyLead}},
	})
	state := eng.State()
	eng.RunTurn()
	assert.Equal(t, []ids.AbilityName{ids.CopyLead}, state.Racers[0].Abilities())
}
