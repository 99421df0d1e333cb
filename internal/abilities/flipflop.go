package abilities

import (
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// FlipFlop swaps places with whoever is immediately ahead of it
// whenever it starts its turn in last place.
type FlipFlop struct {
	base
}

func NewFlipFlop(ownerIdx int) *FlipFlop {
	return &FlipFlop{base{name: ids.FlipFlopSwap, owner: ownerIdx}}
}

func (f *FlipFlop) Triggers() []race.EventKind {
	return []race.EventKind{race.KindTurnStart}
}

func (f *FlipFlop) Execute(engine *race.Engine, event race.Event) {
	ev, ok := event.(race.TurnStartEvent)
	if !ok || ev.RacerIdx != f.owner {
		return
	}
	state := engine.State()
	if !isLast(state, f.owner) {
		return
	}
	ahead := aheadOf(state, f.owner)
	if ahead == -1 {
		return
	}
	ownerPos := state.Racers[f.owner].Position
	aheadPos := state.Racers[ahead].Position
	engine.PushSimultaneousWarp([]race.WarpPair{
		{RacerIdx: f.owner, Tile: aheadPos},
		{RacerIdx: ahead, Tile: ownerPos},
	}, ids.AbilitySource(ids.FlipFlopSwap), f.owner, race.PhaseAbility, race.EmitAfterResolution)
}
