// Package telemetry implements the snapshot and metrics collectors
// described in SPEC_FULL.md §6, consuming only the Engine's exported
// observability hooks (never reaching into engine internals).
package telemetry

import (
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// SnapshotPolicy controls which event kinds get captured and whether
// every turn is guaranteed at least one snapshot.
type SnapshotPolicy struct {
	Kinds               map[race.EventKind]bool
	EnsureOnePerTurn    bool
}

// DefaultSnapshotPolicy captures movement and finish-relevant events.
func DefaultSnapshotPolicy() SnapshotPolicy {
	return SnapshotPolicy{
		Kinds: map[race.EventKind]bool{
			race.KindPostMove:        true,
			race.KindPostWarp:        true,
			race.KindTripRecovery:    true,
			race.KindAbilityTriggered: true,
		},
		EnsureOnePerTurn: true,
	}
}

// RacerSnapshot is one racer's observable state at the moment a
// StepSnapshot was captured.
type RacerSnapshot struct {
	Idx            int
	Name           ids.RacerName
	Position       int
	VictoryPoints  int
	Tripped        bool
	Finished       bool
	FinishPosition int
	Eliminated     bool
	Abilities      []ids.AbilityName
}

// StepSnapshot is one captured moment: the kind of event that caused it
// (KindTripRecovery for the end-of-turn capture added by OnTurnEnd), the
// turn it occurred in, and every racer's state at that instant.
type StepSnapshot struct {
	TurnIndex int
	Kind      race.EventKind
	Racers    []RacerSnapshot
}

// SnapshotRecorder accumulates StepSnapshots according to a policy. It
// holds a reference to the engine it observes solely to read State()
// when an event fires, since race.EventObserver carries no state
// parameter of its own.
type SnapshotRecorder struct {
	policy    SnapshotPolicy
	engine    *race.Engine
	snapshots []StepSnapshot
	capturedThisTurn bool
}

func NewSnapshotRecorder(policy SnapshotPolicy, engine *race.Engine) *SnapshotRecorder {
	return &SnapshotRecorder{policy: policy, engine: engine}
}

// Snapshots returns every snapshot captured so far.
func (r *SnapshotRecorder) Snapshots() []StepSnapshot { return r.snapshots }

// OnEvent is a race.EventObserver: install it via Engine.SetObservers.
func (r *SnapshotRecorder) OnEvent(event race.Event, turnIndex int) {
	if !r.policy.Kinds[event.Kind()] {
		return
	}
	r.capture(turnIndex, event.Kind(), r.engine.State())
}

// OnTurnEnd is a race.TurnEndObserver: ensures at least one snapshot per
// turn when the policy requires it, then resets the per-turn flag.
func (r *SnapshotRecorder) OnTurnEnd(state *race.GameState) {
	if r.policy.EnsureOnePerTurn && !r.capturedThisTurn {
		r.capture(state.TurnIndex, race.KindTripRecovery, state)
	}
	r.capturedThisTurn = false
}

func (r *SnapshotRecorder) capture(turnIndex int, kind race.EventKind, state *race.GameState) {
	racers := make([]RacerSnapshot, 0, len(state.Racers))
	for _, rc := range state.Racers {
		racers = append(racers, RacerSnapshot{
			Idx:            rc.Idx,
			Name:           rc.Name,
			Position:       rc.Position,
			VictoryPoints:  rc.VictoryPoints,
			Tripped:        rc.Tripped,
			Finished:       rc.Finished(),
			FinishPosition: rc.FinishPosition,
			Eliminated:     rc.Eliminated,
			Abilities:      rc.Abilities(),
		})
	}
	r.snapshots = append(r.snapshots, StepSnapshot{TurnIndex: turnIndex, Kind: kind, Racers: racers})
	r.capturedThisTurn = true
}
