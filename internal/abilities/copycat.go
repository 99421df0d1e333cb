package abilities

import (
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// Copycat re-aliases itself to the current leader's ability set at the
// start of every one of its turns, always retaining CopyLead itself so
// it keeps copying on subsequent turns.
type Copycat struct {
	base
}

func NewCopycat(ownerIdx int) *Copycat {
	return &Copycat{base{name: ids.CopyLead, owner: ownerIdx}}
}

func (c *Copycat) Triggers() []race.EventKind {
	return []race.EventKind{race.KindTurnStart}
}

func (c *Copycat) Execute(engine *race.Engine, event race.Event) {
	ev, ok := event.(race.TurnStartEvent)
	if !ok || ev.RacerIdx != c.owner {
		return
	}
	state := engine.State()
	leader := leaderIdx(state, c.owner)
	if leader == -1 {
		return
	}

	newAbilities := []ids.AbilityName{ids.CopyLead}
	for _, name := range state.Racers[leader].Abilities() {
		if name == ids.CopyLead {
			continue
		}
		newAbilities = append(newAbilities, name)
	}

	_ = engine.ReplaceAbilities(c.owner, newAbilities)
}
