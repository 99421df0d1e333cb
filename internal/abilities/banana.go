package abilities

import (
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// Banana trips whoever passes through its tile.
type Banana struct {
	base
}

func NewBanana(ownerIdx int) *Banana {
	return &Banana{base{name: ids.BananaTrip, owner: ownerIdx}}
}

func (b *Banana) Triggers() []race.EventKind {
	return []race.EventKind{race.KindPassing}
}

func (b *Banana) Execute(engine *race.Engine, event race.Event) {
	ev, ok := event.(race.PassingEvent)
	if !ok || ev.TargetRacer() != b.owner {
		return
	}
	engine.PushTrip(ev.ResponsibleRacer(), ids.AbilitySource(ids.BananaTrip), b.owner, race.PhaseAbility, race.EmitAfterResolution)
}
