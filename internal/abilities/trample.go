package abilities

import (
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// Trample pushes whoever it passes back two tiles.
type Trample struct {
	base
}

// NewTrample constructs a CentaurTrample instance owned by ownerIdx.
func NewTrample(ownerIdx int) *Trample {
	return &Trample{base{name: ids.CentaurTrample, owner: ownerIdx}}
}

func (t *Trample) Triggers() []race.EventKind {
	return []race.EventKind{race.KindPassing}
}

func (t *Trample) Execute(engine *race.Engine, event race.Event) {
	ev, ok := event.(race.PassingEvent)
	if !ok || ev.ResponsibleRacer() != t.owner {
		return
	}
	engine.PushMove(ev.TargetRacer(), -2, ids.AbilitySource(ids.CentaurTrample), t.owner, race.PhaseAbility, race.EmitAfterResolution)
}
