package abilities

import (
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// Scoocher hops forward one tile every time another ability triggers.
type Scoocher struct {
	base
}

func NewScoocher(ownerIdx int) *Scoocher {
	return &Scoocher{base{name: ids.ScoochStep, owner: ownerIdx}}
}

func (s *Scoocher) Triggers() []race.EventKind {
	return []race.EventKind{race.KindAbilityTriggered}
}

func (s *Scoocher) Execute(engine *race.Engine, event race.Event) {
	ev, ok := event.(race.AbilityTriggeredEvent)
	if !ok || ev.ResponsibleRacer() == s.owner {
		return
	}
	engine.PushMove(s.owner, 1, ids.AbilitySource(ids.ScoochStep), s.owner, race.PhaseMove, race.EmitAfterResolution)
}
