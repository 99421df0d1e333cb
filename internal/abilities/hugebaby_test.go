package abilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

func TestHugeBabyBlockerFollowsOwnerAndIgnoresOwner(t *testing.T) {
	eng := newTestEngine(t, []race.RacerSpec{
		{Name: ids.HugeBaby, Abilities: []ids.AbilityName{ids.HugeBabyPush}},
		{Name: ids.Banana},
	})
	board := eng.State().Board

	// OnAttach placed the blocker at the owner's starting tile, 0.
	assert.Equal(t, -1, board.ResolvePosition(0, 1, eng))
	assert.Equal(t, 0, board.ResolvePosition(0, 0, eng))

	eng.State().Racers[0].Position = 7
	hb, ok := eng.GetRacer(0).ActiveAbilities[ids.HugeBabyPush].(*HugeBaby)
	require.True(t, ok)
	hb.Execute(eng, race.PostMoveEvent{RacerIdx: 0, Start: 0, End: 7})

	assert.Equal(t, 6, board.ResolvePosition(7, 1, eng))
	assert.Equal(t, 7, board.ResolvePosition(7, 0, eng))

	hb.OnDetach(eng, 0)
	assert.Equal(t, 7, board.ResolvePosition(7, 1, eng))
}

func TestHugeBabyIgnoresEventsForOtherRacers(t *testing.T) {
	hb := NewHugeBaby(0)
	assert.Equal(t, []race.EventKind{race.KindPostMove, race.KindPostWarp}, hb.Triggers())

	// A move by racer 1 is not the owner's; Execute must return before
	// touching the engine, so a nil engine is safe.
	assert.NotPanics(t, func() { hb.Execute(nil, race.PostMoveEvent{RacerIdx: 1, Start: 0, End: 3}) })
}
