package race

import "github.com/lox/magicalathlete/internal/ids"

// Phase is a coarse ordering tier for scheduled events. Lower phases
// dispatch before higher ones within the same turn.
type Phase int

const (
	PhaseSystem  Phase = 0
	PhaseBoard   Phase = 10
	PhaseAbility Phase = 20
	PhaseMove    Phase = 30
	PhaseCleanup Phase = 100
)

// EmitMode controls whether a command event, once resolved successfully,
// schedules an AbilityTriggered marker for the ability that caused it.
type EmitMode int

const (
	EmitNever EmitMode = iota
	EmitAfterResolution
)

// EventKind is the closed tag over every event variant the engine knows
// how to schedule or publish.
type EventKind int

const (
	KindTurnStart EventKind = iota
	KindRollAndMainMove
	KindMoveCmd
	KindWarpCmd
	KindSimultaneousWarpCmd
	KindTripCmd
	KindPreMove
	KindPostMove
	KindPreWarp
	KindPostWarp
	KindPassing
	KindAbilityTriggered
	KindTripRecovery
	numEventKinds
)

func (k EventKind) String() string {
	switch k {
	case KindTurnStart:
		return "TurnStart"
	case KindRollAndMainMove:
		return "RollAndMainMove"
	case KindMoveCmd:
		return "MoveCmd"
	case KindWarpCmd:
		return "WarpCmd"
	case KindSimultaneousWarpCmd:
		return "SimultaneousWarpCmd"
	case KindTripCmd:
		return "TripCmd"
	case KindPreMove:
		return "PreMove"
	case KindPostMove:
		return "PostMove"
	case KindPreWarp:
		return "PreWarp"
	case KindPostWarp:
		return "PostWarp"
	case KindPassing:
		return "Passing"
	case KindAbilityTriggered:
		return "AbilityTriggered"
	case KindTripRecovery:
		return "TripRecovery"
	default:
		return "UnknownEventKind"
	}
}

const noRacer = -1

// Event is an immutable tagged record dispatched by the scheduler or
// published synchronously to subscribers.
type Event interface {
	Kind() EventKind
	Phase() Phase
	TargetRacer() int       // noRacer if not applicable
	ResponsibleRacer() int  // noRacer if not applicable
	Source() ids.Source
	EmitMode() EmitMode
}

// TurnStartEvent fires once per turn, before rolling. Never scheduled;
// published synchronously by the turn driver.
type TurnStartEvent struct {
	RacerIdx int
}

func (e TurnStartEvent) Kind() EventKind      { return KindTurnStart }
func (e TurnStartEvent) Phase() Phase         { return PhaseSystem }
func (e TurnStartEvent) TargetRacer() int     { return e.RacerIdx }
func (e TurnStartEvent) ResponsibleRacer() int { return e.RacerIdx }
func (e TurnStartEvent) Source() ids.Source   { return ids.SystemSource }
func (e TurnStartEvent) EmitMode() EmitMode   { return EmitNever }

// RollAndMainMoveEvent triggers the dice roll and resulting main move.
type RollAndMainMoveEvent struct {
	RacerIdx int
}

func (e RollAndMainMoveEvent) Kind() EventKind      { return KindRollAndMainMove }
func (e RollAndMainMoveEvent) Phase() Phase         { return PhaseSystem }
func (e RollAndMainMoveEvent) TargetRacer() int     { return e.RacerIdx }
func (e RollAndMainMoveEvent) ResponsibleRacer() int { return e.RacerIdx }
func (e RollAndMainMoveEvent) Source() ids.Source   { return ids.SystemSource }
func (e RollAndMainMoveEvent) EmitMode() EmitMode   { return EmitNever }

// MoveCmdEvent requests moving a racer by a signed distance.
type MoveCmdEvent struct {
	Target       int
	Distance     int
	Src          ids.Source
	Responsible  int
	Ph           Phase
	Emit         EmitMode
}

func (e MoveCmdEvent) Kind() EventKind      { return KindMoveCmd }
func (e MoveCmdEvent) Phase() Phase         { return e.Ph }
func (e MoveCmdEvent) TargetRacer() int     { return e.Target }
func (e MoveCmdEvent) ResponsibleRacer() int { return e.Responsible }
func (e MoveCmdEvent) Source() ids.Source   { return e.Src }
func (e MoveCmdEvent) EmitMode() EmitMode   { return e.Emit }

// WarpCmdEvent teleports a racer to an absolute tile.
type WarpCmdEvent struct {
	Target      int
	TargetTile  int
	Src         ids.Source
	Responsible int
	Ph          Phase
	Emit        EmitMode
}

func (e WarpCmdEvent) Kind() EventKind      { return KindWarpCmd }
func (e WarpCmdEvent) Phase() Phase         { return e.Ph }
func (e WarpCmdEvent) TargetRacer() int     { return e.Target }
func (e WarpCmdEvent) ResponsibleRacer() int { return e.Responsible }
func (e WarpCmdEvent) Source() ids.Source   { return e.Src }
func (e WarpCmdEvent) EmitMode() EmitMode   { return e.Emit }

// WarpPair is one (racer, destination tile) entry of a simultaneous warp.
type WarpPair struct {
	RacerIdx int
	Tile     int
}

// SimultaneousWarpCmdEvent atomically warps several racers at once.
type SimultaneousWarpCmdEvent struct {
	Warps       []WarpPair
	Src         ids.Source
	Responsible int
	Ph          Phase
	Emit        EmitMode
}

func (e SimultaneousWarpCmdEvent) Kind() EventKind      { return KindSimultaneousWarpCmd }
func (e SimultaneousWarpCmdEvent) Phase() Phase         { return e.Ph }
func (e SimultaneousWarpCmdEvent) TargetRacer() int     { return noRacer }
func (e SimultaneousWarpCmdEvent) ResponsibleRacer() int { return e.Responsible }
func (e SimultaneousWarpCmdEvent) Source() ids.Source   { return e.Src }
func (e SimultaneousWarpCmdEvent) EmitMode() EmitMode   { return e.Emit }

// TripCmdEvent marks a racer tripped.
type TripCmdEvent struct {
	Target      int
	Src         ids.Source
	Responsible int
	Ph          Phase
	Emit        EmitMode
}

func (e TripCmdEvent) Kind() EventKind      { return KindTripCmd }
func (e TripCmdEvent) Phase() Phase         { return e.Ph }
func (e TripCmdEvent) TargetRacer() int     { return e.Target }
func (e TripCmdEvent) ResponsibleRacer() int { return e.Responsible }
func (e TripCmdEvent) Source() ids.Source   { return e.Src }
func (e TripCmdEvent) EmitMode() EmitMode   { return e.Emit }

// PreMoveEvent is a synchronous departure notification for MoveCmd.
type PreMoveEvent struct {
	RacerIdx int
	Start    int
	Distance int
}

func (e PreMoveEvent) Kind() EventKind      { return KindPreMove }
func (e PreMoveEvent) Phase() Phase         { return PhaseMove }
func (e PreMoveEvent) TargetRacer() int     { return e.RacerIdx }
func (e PreMoveEvent) ResponsibleRacer() int { return e.RacerIdx }
func (e PreMoveEvent) Source() ids.Source   { return ids.SystemSource }
func (e PreMoveEvent) EmitMode() EmitMode   { return EmitNever }

// PostMoveEvent is a synchronous arrival notification for MoveCmd.
type PostMoveEvent struct {
	RacerIdx int
	Start    int
	End      int
}

func (e PostMoveEvent) Kind() EventKind      { return KindPostMove }
func (e PostMoveEvent) Phase() Phase         { return PhaseMove }
func (e PostMoveEvent) TargetRacer() int     { return e.RacerIdx }
func (e PostMoveEvent) ResponsibleRacer() int { return e.RacerIdx }
func (e PostMoveEvent) Source() ids.Source   { return ids.SystemSource }
func (e PostMoveEvent) EmitMode() EmitMode   { return EmitNever }

// PreWarpEvent is a synchronous departure notification for WarpCmd.
type PreWarpEvent struct {
	RacerIdx int
	Start    int
	Target   int
}

func (e PreWarpEvent) Kind() EventKind      { return KindPreWarp }
func (e PreWarpEvent) Phase() Phase         { return PhaseMove }
func (e PreWarpEvent) TargetRacer() int     { return e.RacerIdx }
func (e PreWarpEvent) ResponsibleRacer() int { return e.RacerIdx }
func (e PreWarpEvent) Source() ids.Source   { return ids.SystemSource }
func (e PreWarpEvent) EmitMode() EmitMode   { return EmitNever }

// PostWarpEvent is a synchronous arrival notification for WarpCmd.
type PostWarpEvent struct {
	RacerIdx int
	Start    int
	End      int
}

func (e PostWarpEvent) Kind() EventKind      { return KindPostWarp }
func (e PostWarpEvent) Phase() Phase         { return PhaseMove }
func (e PostWarpEvent) TargetRacer() int     { return e.RacerIdx }
func (e PostWarpEvent) ResponsibleRacer() int { return e.RacerIdx }
func (e PostWarpEvent) Source() ids.Source   { return ids.SystemSource }
func (e PostWarpEvent) EmitMode() EmitMode   { return EmitNever }

// PassingEvent fires when a mover passes through a tile occupied by
// another racer. Scheduled (not synchronous); dispatched via pub/sub.
type PassingEvent struct {
	Responsible int
	Target      int
	Tile        int
	Ph          Phase
	Src         ids.Source
}

func (e PassingEvent) Kind() EventKind      { return KindPassing }
func (e PassingEvent) Phase() Phase         { return e.Ph }
func (e PassingEvent) TargetRacer() int     { return e.Target }
func (e PassingEvent) ResponsibleRacer() int { return e.Responsible }
func (e PassingEvent) Source() ids.Source   { return e.Src }
func (e PassingEvent) EmitMode() EmitMode   { return EmitNever }

// AbilityTriggeredEvent is a marker event used to chain reactions and
// count triggers. Scheduled; dispatched via pub/sub.
type AbilityTriggeredEvent struct {
	Ability     ids.AbilityName
	Responsible int
	Target      int
}

func (e AbilityTriggeredEvent) Kind() EventKind      { return KindAbilityTriggered }
func (e AbilityTriggeredEvent) Phase() Phase         { return PhaseAbility }
func (e AbilityTriggeredEvent) TargetRacer() int     { return e.Target }
func (e AbilityTriggeredEvent) ResponsibleRacer() int { return e.Responsible }
func (e AbilityTriggeredEvent) Source() ids.Source   { return ids.AbilitySource(e.Ability) }
func (e AbilityTriggeredEvent) EmitMode() EmitMode   { return EmitNever }

// TripRecoveryEvent fires on the turn a racer recovers from tripped.
type TripRecoveryEvent struct {
	RacerIdx int
}

func (e TripRecoveryEvent) Kind() EventKind      { return KindTripRecovery }
func (e TripRecoveryEvent) Phase() Phase         { return PhaseSystem }
func (e TripRecoveryEvent) TargetRacer() int     { return e.RacerIdx }
func (e TripRecoveryEvent) ResponsibleRacer() int { return e.RacerIdx }
func (e TripRecoveryEvent) Source() ids.Source   { return ids.SystemSource }
func (e TripRecoveryEvent) EmitMode() EmitMode   { return EmitNever }
