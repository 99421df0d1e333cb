package abilities

import (
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// Romantic steps one tile toward the nearest other racer at the start
// of its turn.
type Romantic struct {
	base
}

func NewRomantic(ownerIdx int) *Romantic {
	return &Romantic{base{name: ids.RomanticMove, owner: ownerIdx}}
}

func (r *Romantic) Triggers() []race.EventKind {
	return []race.EventKind{race.KindTurnStart}
}

func (r *Romantic) Execute(engine *race.Engine, event race.Event) {
	ev, ok := event.(race.TurnStartEvent)
	if !ok || ev.RacerIdx != r.owner {
		return
	}
	state := engine.State()
	nearest := nearestOther(state, r.owner)
	if nearest == -1 {
		return
	}
	owner := state.Racers[r.owner]
	other := state.Racers[nearest]
	delta := sign(other.Position - owner.Position)
	if delta == 0 {
		return
	}
	engine.PushMove(r.owner, delta, ids.AbilitySource(ids.RomanticMove), r.owner, race.PhaseAbility, race.EmitAfterResolution)
}
