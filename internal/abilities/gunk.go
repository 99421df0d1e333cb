package abilities

import (
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// Gunk installs a slime modifier on attach that slows every other
// racer's roll; it has no reactions of its own.
type Gunk struct {
	base
}

func NewGunk(ownerIdx int) *Gunk {
	return &Gunk{base{name: ids.GunkSlime, owner: ownerIdx}}
}

func (g *Gunk) Triggers() []race.EventKind { return nil }

func (g *Gunk) Execute(engine *race.Engine, event race.Event) {}

func (g *Gunk) OnAttach(engine *race.Engine, ownerIdx int) {
	racer := engine.GetRacer(ownerIdx)
	racer.Modifiers = append(racer.Modifiers, &SlimeModifier{owner: ownerIdx})
}

func (g *Gunk) OnDetach(engine *race.Engine, ownerIdx int) {
	racer := engine.GetRacer(ownerIdx)
	kept := racer.Modifiers[:0]
	for _, m := range racer.Modifiers {
		if m.Name() == ids.GunkSlimeModifier && m.OwnerIdx() == ownerIdx {
			continue
		}
		kept = append(kept, m)
	}
	racer.Modifiers = kept
}

// SlimeModifier reduces every other racer's roll by one while Gunk is
// active.
type SlimeModifier struct {
	owner int
}

func (s *SlimeModifier) Name() ids.ModifierName { return ids.GunkSlimeModifier }
func (s *SlimeModifier) OwnerIdx() int          { return s.owner }

func (s *SlimeModifier) ModifyRoll(query *race.RollQuery, ownerIdx int, engine *race.Engine) {
	if query.RacerIdx == ownerIdx {
		return
	}
	query.AddDelta(-1)
}
