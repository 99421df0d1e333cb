// Package roster wires concrete racer names to their ability kits and
// concrete ability names to constructors, replacing the reflective
// subclass-scanning of the original prototype's registry with explicit
// compile-time tables (see the internal/roster entry in DESIGN.md).
package roster

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/magicalathlete/internal/abilities"
	"github.com/lox/magicalathlete/internal/boards"
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// racerAbilities maps a racer name to the ability names it starts with.
// Reserved names (Skipper, Genius, Legs, Hare) are absent and so fail
// fast in Abilities and BuildEngine.
var racerAbilities = map[ids.RacerName][]ids.AbilityName{
	ids.Centaur:     {ids.CentaurTrample},
	ids.HugeBaby:    {ids.HugeBabyPush},
	ids.Scoocher:    {ids.ScoochStep},
	ids.Banana:      {ids.BananaTrip},
	ids.Copycat:     {ids.CopyLead},
	ids.Gunk:        {ids.GunkSlime},
	ids.PartyAnimal: {ids.PartyPull, ids.PartyBoost},
	ids.BabaYaga:    {ids.BabaYagaTrip},
	ids.FlipFlop:    {ids.FlipFlopSwap},
	ids.Romantic:    {ids.RomanticMove},
	ids.Magician:    {ids.MagicalReroll},
}

// abilityConstructors maps an ability name to its constructor. Every
// constructor takes the owning racer's index and returns a fresh
// instance; Copycat re-aliasing calls back into this same table.
var abilityConstructors = map[ids.AbilityName]func(ownerIdx int) race.Ability{
	ids.CentaurTrample: func(i int) race.Ability { return abilities.NewTrample(i) },
	ids.HugeBabyPush:   func(i int) race.Ability { return abilities.NewHugeBaby(i) },
	ids.ScoochStep:     func(i int) race.Ability { return abilities.NewScoocher(i) },
	ids.BananaTrip:     func(i int) race.Ability { return abilities.NewBanana(i) },
	ids.CopyLead:       func(i int) race.Ability { return abilities.NewCopycat(i) },
	ids.GunkSlime:      func(i int) race.Ability { return abilities.NewGunk(i) },
	ids.PartyPull:      func(i int) race.Ability { return abilities.NewPartyPull(i) },
	ids.PartyBoost:     func(i int) race.Ability { return abilities.NewPartyBoost(i) },
	ids.BabaYagaTrip:   func(i int) race.Ability { return abilities.NewBabaYaga(i) },
	ids.FlipFlopSwap:   func(i int) race.Ability { return abilities.NewFlipFlop(i) },
	ids.RomanticMove:   func(i int) race.Ability { return abilities.NewRomantic(i) },
	ids.MagicalReroll:  func(i int) race.Ability { return abilities.NewMagician(i) },
}

// AbilityFactory is the race.AbilityFactory backed by
// abilityConstructors, exported so callers needing a custom roster
// (e.g. a racer with a non-default ability set) can still reuse it.
func AbilityFactory(name ids.AbilityName, ownerIdx int) (race.Ability, error) {
	ctor, ok := abilityConstructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", race.ErrUnknownAbility, name)
	}
	return ctor(ownerIdx), nil
}

// Abilities returns the default ability kit for a racer name, or an
// error if the name has no wired kit (reserved extension names, or an
// unrecognized value).
func Abilities(name ids.RacerName) ([]ids.AbilityName, error) {
	kit, ok := racerAbilities[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", race.ErrUnknownRacer, name)
	}
	return kit, nil
}

// BuildEngine constructs a fully wired Engine for the given racer
// names and board, using each racer's default ability kit. rng and
// logger are passed straight through to race.NewEngine; logger may be
// nil.
func BuildEngine(names []ids.RacerName, boardName ids.BoardName, rules race.Rules, rng *rand.Rand, logger *log.Logger) (*race.Engine, error) {
	board, err := boards.Build(boardName)
	if err != nil {
		return nil, err
	}

	specs := make([]race.RacerSpec, 0, len(names))
	for _, name := range names {
		kit, err := Abilities(name)
		if err != nil {
			return nil, err
		}
		specs = append(specs, race.RacerSpec{Name: name, Abilities: kit})
	}

	return race.NewEngine(specs, board, rules, AbilityFactory, rng, logger)
}
