package abilities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

func TestBananaTripsWhoeverPassesItsTile(t *testing.T) {
	eng, off := newTestEngineWithDummy(t, []race.RacerSpec{
		{Name: ids.Banana, Abilities: []ids.AbilityName{ids.BananaTrip}},
		{Name: ids.Scoocher},
	})
	peel, mover := off+0, off+1

	state := eng.State()
	state.Racers[peel].Position = 5
	state.Racers[mover].Position = 3

	eng.PushMove(mover, 4, ids.SystemSource, mover, race.PhaseMove, race.EmitNever)
	eng.RunTurn()

	assert.Equal(t, 7, state.Racers[mover].Position)
	assert.True(t, state.Racers[mover].Tripped)
	assert.False(t, state.Racers[peel].Tripped)
}

func TestBananaIgnoresPassingThatTargetsSomeoneElse(t *testing.T) {
	b := NewBanana(0)
	ev := race.PassingEvent{Responsible: 1, Target: 2, Tile: 4}
	assert.Equal(t, 2, ev.TargetRacer())
	assert.NotEqual(t, 0, ev.TargetRacer())
	assert.Equal(t, []race.EventKind{race.KindPassing}, b.Triggers())
	// Execute must return before touching the engine, so a nil engine is safe.
	assert.NotPanics(t, func() { b.Execute(nil, ev) })
}
