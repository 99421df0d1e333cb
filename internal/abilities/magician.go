package abilities

import (
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// magicianRerollThreshold is the base roll below which Magician offers
// a reroll.
const magicianRerollThreshold = 3

// Magician rerolls its own base roll once per race if it comes in low.
// Unlike Gunk or PartyBoost, it participates in the roll pipeline
// directly rather than through a separate racer modifier, since the
// named modifier roster has no dedicated reroll modifier.
type Magician struct {
	base
}

func NewMagician(ownerIdx int) *Magician {
	return &Magician{base{name: ids.MagicalReroll, owner: ownerIdx}}
}

func (m *Magician) Triggers() []race.EventKind { return nil }

func (m *Magician) Execute(engine *race.Engine, event race.Event) {}

func (m *Magician) ModifyRoll(query *race.RollQuery, ownerIdx int, engine *race.Engine) {
	if query.RacerIdx != ownerIdx {
		return
	}
	racer := engine.GetRacer(ownerIdx)
	if racer.RerollCount > 0 {
		return
	}
	if query.BaseValue >= magicianRerollThreshold {
		return
	}
	query.Reroll(engine)
	racer.RerollCount++
}
