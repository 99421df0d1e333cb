package abilities

import (
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// HugeBaby maintains a blocker that follows its own position, bouncing
// back anyone who tries to approach the tile it sits on.
type HugeBaby struct {
	base
}

func NewHugeBaby(ownerIdx int) *HugeBaby {
	return &HugeBaby{base{name: ids.HugeBabyPush, owner: ownerIdx}}
}

func (h *HugeBaby) Triggers() []race.EventKind {
	return []race.EventKind{race.KindPostMove, race.KindPostWarp}
}

func (h *HugeBaby) Execute(engine *race.Engine, event race.Event) {
	if event.TargetRacer() != h.owner {
		return
	}
	owner := engine.GetRacer(h.owner)
	engine.State().Board.MoveDynamic(ids.HugeBabyBlocker, h.owner, owner.Position)
}

func (h *HugeBaby) OnAttach(engine *race.Engine, ownerIdx int) {
	owner := engine.GetRacer(ownerIdx)
	engine.State().Board.PlaceDynamic(owner.Position, &Blocker{owner: ownerIdx})
}

func (h *HugeBaby) OnDetach(engine *race.Engine, ownerIdx int) {
	engine.State().Board.RemoveDynamic(ids.HugeBabyBlocker, ownerIdx)
}

// Blocker is HugeBaby's dynamic space modifier: it bounces any other
// racer approaching its tile back by one.
type Blocker struct {
	owner int
}

func (b *Blocker) Name() ids.ModifierName { return ids.HugeBabyBlocker }
func (b *Blocker) Priority() int          { return 5 }
func (b *Blocker) OwnerIdx() int          { return b.owner }

func (b *Blocker) OnApproach(target, moverIdx int, engine *race.Engine) int {
	if moverIdx == b.owner {
		return target
	}
	return target - 1
}
