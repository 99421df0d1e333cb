package abilities

import (
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// PartyPull drags every other active racer one tile toward the owner at
// the start of the owner's turn.
type PartyPull struct {
	base
}

func NewPartyPull(ownerIdx int) *PartyPull {
	return &PartyPull{base{name: ids.PartyPull, owner: ownerIdx}}
}

func (p *PartyPull) Triggers() []race.EventKind {
	return []race.EventKind{race.KindTurnStart}
}

func (p *PartyPull) Execute(engine *race.Engine, event race.Event) {
	ev, ok := event.(race.TurnStartEvent)
	if !ok || ev.RacerIdx != p.owner {
		return
	}
	state := engine.State()
	owner := state.Racers[p.owner]
	for _, r := range state.Racers {
		if r.Idx == p.owner || !r.Active() {
			continue
		}
		delta := sign(owner.Position - r.Position)
		if delta == 0 {
			continue
		}
		engine.PushMove(r.Idx, delta, ids.AbilitySource(ids.PartyPull), p.owner, race.PhaseAbility, race.EmitAfterResolution)
	}
}

// PartyBoost installs a self-roll modifier on attach that rewards the
// owner for every other racer standing on its tile.
type PartyBoost struct {
	base
}

func NewPartyBoost(ownerIdx int) *PartyBoost {
	return &PartyBoost{base{name: ids.PartyBoost, owner: ownerIdx}}
}

func (p *PartyBoost) Triggers() []race.EventKind { return nil }

func (p *PartyBoost) Execute(engine *race.Engine, event race.Event) {}

func (p *PartyBoost) OnAttach(engine *race.Engine, ownerIdx int) {
	racer := engine.GetRacer(ownerIdx)
	racer.Modifiers = append(racer.Modifiers, &SelfBoostModifier{owner: ownerIdx})
}

func (p *PartyBoost) OnDetach(engine *race.Engine, ownerIdx int) {
	racer := engine.GetRacer(ownerIdx)
	kept := racer.Modifiers[:0]
	for _, m := range racer.Modifiers {
		if m.Name() == ids.PartySelfBoost && m.OwnerIdx() == ownerIdx {
			continue
		}
		kept = append(kept, m)
	}
	racer.Modifiers = kept
}

// SelfBoostModifier adds one to the owner's own roll per co-located
// racer.
type SelfBoostModifier struct {
	owner int
}

func (s *SelfBoostModifier) Name() ids.ModifierName { return ids.PartySelfBoost }
func (s *SelfBoostModifier) OwnerIdx() int          { return s.owner }

func (s *SelfBoostModifier) ModifyRoll(query *race.RollQuery, ownerIdx int, engine *race.Engine) {
	if query.RacerIdx != ownerIdx {
		return
	}
	owner := engine.GetRacer(ownerIdx)
	count := 0
	for _, idx := range engine.RacersAt(owner.Position) {
		if idx != ownerIdx {
			count++
		}
	}
	query.AddDelta(count)
}
