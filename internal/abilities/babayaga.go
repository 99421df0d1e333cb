package abilities

import (
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// BabaYaga trips whoever passes its hut, and the hut itself creeps
// forward one tile every time it does.
type BabaYaga struct {
	base
}

func NewBabaYaga(ownerIdx int) *BabaYaga {
	return &BabaYaga{base{name: ids.BabaYagaTrip, owner: ownerIdx}}
}

func (b *BabaYaga) Triggers() []race.EventKind {
	return []race.EventKind{race.KindPassing}
}

func (b *BabaYaga) Execute(engine *race.Engine, event race.Event) {
	ev, ok := event.(race.PassingEvent)
	if !ok || ev.TargetRacer() != b.owner {
		return
	}
	engine.PushTrip(ev.ResponsibleRacer(), ids.AbilitySource(ids.BabaYagaTrip), b.owner, race.PhaseAbility, race.EmitAfterResolution)
	engine.PushMove(b.owner, 1, ids.AbilitySource(ids.BabaYagaTrip), b.owner, race.PhaseAbility, race.EmitNever)
}
