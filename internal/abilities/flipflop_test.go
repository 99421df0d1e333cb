package abilities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// The swap itself is scheduled at PhaseAbility during the owner's own
// TurnStart, strictly before that owner's dice-driven main move at
// PhaseMove, so the racer it swaps with lands on the owner's pre-roll
// tile regardless of how the owner's own roll later resolves.
func TestFlipFlopSwapsWithTheRacerAheadWhenLast(t *testing.T) {
	eng := newTestEngine(t, []race.RacerSpec{
		{Name: ids.FlipFlop, Abilities: []ids.AbilityName{ids.FlipFlopSwap}},
		{Name: ids.Scoocher},
	})
	state := eng.State()
	state.Racers[0].Position = 2
	state.Racers[1].Position = 9

	eng.RunTurn()

	assert.Equal(t, 2, state.Racers[1].Position)
}

func TestFlipFlopDoesNothingWhenNotLast(t *testing.T) {
	eng := newTestEngine(t, []race.RacerSpec{
		{Name: ids.FlipFlop, Abilities: []ids.AbilityName{ids.FlipFlopSwap}},
		{Name: ids.Scoocher},
	})
	state := eng.State()
	state.Racers[0].Position = 9
	state.Racers[1].Position = 2

	eng.RunTurn()

	assert.Equal(t, 2, state.Racers[1].Position)
}

func TestFlipFlopTriggersOnlyOnTurnStart(t *testing.T) {
	f := NewFlipFlop(0)
	assert.Equal(t, []race.EventKind{race.KindTurnStart}, f.Triggers())
}
