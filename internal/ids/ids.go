// Package ids defines the closed enumerations of names used throughout
// the engine: racers, abilities, modifiers, boards, and event sources.
package ids

// RacerName identifies a playable racer archetype.
type RacerName int

const (
	UnknownRacer RacerName = iota
	Centaur
	HugeBaby
	Scoocher
	Banana
	Copycat
	Gunk
	PartyAnimal
	BabaYaga
	FlipFlop
	Romantic
	Magician

	// Reserved for extension: named in the source material but with no
	// wired ability. Constructing a roster with one of these fails fast.
	Skipper
	Genius
	Legs
	Hare
)

func (r RacerName) String() string {
	switch r {
	case Centaur:
		return "Centaur"
	case HugeBaby:
		return "HugeBaby"
	case Scoocher:
		return "Scoocher"
	case Banana:
		return "Banana"
	case Copycat:
		return "Copycat"
	case Gunk:
		return "Gunk"
	case PartyAnimal:
		return "PartyAnimal"
	case BabaYaga:
		return "BabaYaga"
	case FlipFlop:
		return "FlipFlop"
	case Romantic:
		return "Romantic"
	case Magician:
		return "Magician"
	case Skipper:
		return "Skipper"
	case Genius:
		return "Genius"
	case Legs:
		return "Legs"
	case Hare:
		return "Hare"
	default:
		return "UnknownRacer"
	}
}

// AbilityName identifies a registered ability behavior.
type AbilityName int

const (
	UnknownAbility AbilityName = iota
	CentaurTrample
	HugeBabyPush
	BananaTrip
	ScoochStep
	CopyLead
	GunkSlime
	PartyPull
	PartyBoost
	BabaYagaTrip
	FlipFlopSwap
	RomanticMove
	MagicalReroll
)

func (a AbilityName) String() string {
	switch a {
	case CentaurTrample:
		return "CentaurTrample"
	case HugeBabyPush:
		return "HugeBabyPush"
	case BananaTrip:
		return "BananaTrip"
	case ScoochStep:
		return "ScoochStep"
	case CopyLead:
		return "CopyLead"
	case GunkSlime:
		return "GunkSlime"
	case PartyPull:
		return "PartyPull"
	case PartyBoost:
		return "PartyBoost"
	case BabaYagaTrip:
		return "BabaYagaTrip"
	case FlipFlopSwap:
		return "FlipFlopSwap"
	case RomanticMove:
		return "RomanticMove"
	case MagicalReroll:
		return "MagicalReroll"
	default:
		return "UnknownAbility"
	}
}

// ModifierName identifies a registered modifier behavior, either
// racer-scoped or space-scoped.
type ModifierName int

const (
	UnknownModifier ModifierName = iota
	GunkSlimeModifier
	HugeBabyBlocker
	MoveDeltaTile
	PartySelfBoost
	TripTile
	VictoryPointTile
)

func (m ModifierName) String() string {
	switch m {
	case GunkSlimeModifier:
		return "GunkSlimeModifier"
	case HugeBabyBlocker:
		return "HugeBabyBlocker"
	case MoveDeltaTile:
		return "MoveDeltaTile"
	case PartySelfBoost:
		return "PartySelfBoost"
	case TripTile:
		return "TripTile"
	case VictoryPointTile:
		return "VictoryPointTile"
	default:
		return "UnknownModifier"
	}
}

// BoardName identifies a board factory.
type BoardName int

const (
	UnknownBoard BoardName = iota
	StandardBoard
	SprintBoard
)

func (b BoardName) String() string {
	switch b {
	case StandardBoard:
		return "Standard"
	case SprintBoard:
		return "Sprint"
	default:
		return "UnknownBoard"
	}
}

// SourceKind distinguishes the origin tag carried on every event: a
// named ability, a named modifier, or one of two fixed system sources.
type SourceKind int

const (
	SourceUnknown SourceKind = iota
	SourceAbility
	SourceModifier
	SourceBoard
	SourceSystem
)

// Source is the tagged origin of an event or scheduled command. Exactly
// one of Ability/Modifier is meaningful, selected by Kind; SourceBoard
// and SourceSystem carry no payload.
type Source struct {
	Kind     SourceKind
	Ability  AbilityName
	Modifier ModifierName
}

func AbilitySource(a AbilityName) Source { return Source{Kind: SourceAbility, Ability: a} }
func ModifierSource(m ModifierName) Source {
	return Source{Kind: SourceModifier, Modifier: m}
}

var BoardSource = Source{Kind: SourceBoard}
var SystemSource = Source{Kind: SourceSystem}

func (s Source) String() string {
	switch s.Kind {
	case SourceAbility:
		return s.Ability.String()
	case SourceModifier:
		return s.Modifier.String()
	case SourceBoard:
		return "Board"
	case SourceSystem:
		return "System"
	default:
		return "UnknownSource"
	}
}
