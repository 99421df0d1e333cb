package abilities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

func TestMagicianRerollsOnceWhenBaseRollIsLow(t *testing.T) {
	eng := newTestEngine(t, []race.RacerSpec{
		{Name: ids.Magician, Abilities: []ids.AbilityName{ids.MagicalReroll}},
	})
	m, ok := eng.GetRacer(0).ActiveAbilities[ids.MagicalReroll].(*Magician)
	if !ok {
		t.Fatal("expected *Magician ability")
	}

	query := &race.RollQuery{RacerIdx: 0, BaseValue: 1}
	m.ModifyRoll(query, 0, eng)

	racer := eng.GetRacer(0)
	assert.Equal(t, 1, racer.RerollCount)
	assert.GreaterOrEqual(t, query.BaseValue, 1)
	assert.LessOrEqual(t, query.BaseValue, 6)
}

func TestMagicianDoesNotRerollOnAHighBaseRoll(t *testing.T) {
	eng := newTestEngine(t, []race.RacerSpec{
		{Name: ids.Magician, Abilities: []ids.AbilityName{ids.MagicalReroll}},
	})
	m, _ := eng.GetRacer(0).ActiveAbilities[ids.MagicalReroll].(*Magician)

	query := &race.RollQuery{RacerIdx: 0, BaseValue: 5}
	m.ModifyRoll(query, 0, eng)

	assert.Equal(t, 0, eng.GetRacer(0).RerollCount)
	assert.Equal(t, 5, query.BaseValue)
}

func TestMagicianRerollsOnlyOncePerRace(t *testing.T) {
	eng := newTestEngine(t, []race.RacerSpec{
		{Name: ids.Magician, Abilities: []ids.AbilityName{ids.MagicalReroll}},
	})
	m, _ := eng.GetRacer(0).ActiveAbilities[ids.MagicalReroll].(*Magician)
	eng.GetRacer(0).RerollCount = 1

	query := &race.RollQuery{RacerIdx: 0, BaseValue: 1}
	m.ModifyRoll(query, 0, eng)

	assert.Equal(t, 1, eng.GetRacer(0).RerollCount)
	assert.Equal(t, 1, query.BaseValue)
}

func TestMagicianIgnoresOtherRacersRolls(t *testing.T) {
	eng := newTestEngine(t, []race.RacerSpec{
		{Name: ids.Magician, Abilities: []ids.AbilityName{ids.MagicalReroll}},
		{Name: ids.Scoocher},
	})
	m, _ := eng.GetRacer(0).ActiveAbilities[ids.MagicalReroll].(*Magician)

	query := &race.RollQuery{RacerIdx: 1, BaseValue: 1}
	m.ModifyRoll(query, 0, eng)

	assert.Equal(t, 0, eng.GetRacer(0).RerollCount)
	assert.Equal(t, 1, query.BaseValue)
}

func TestMagicianHasNoTurnStartTriggers(t *testing.T) {
	m := NewMagician(0)
	assert.Empty(t, m.Triggers())
}
