package race

import (
	"sort"

	"github.com/lox/magicalathlete/internal/ids"
)

// TimingMode selects how the scheduler orders reaction chains.
type TimingMode int

const (
	// Priority is the default: a single priority queue over (phase,
	// reactor distance, serial).
	Priority TimingMode = iota
	// DFS is accepted in Rules and hashed by ConfigFingerprint, but the
	// scheduler does not read TimingMode: events dispatch in Priority
	// order under either mode. See the open question in §9.
	DFS
)

// Rules configures the embedder-controlled policy knobs named in §6.
type Rules struct {
	TimingMode                       TimingMode
	CountZeroMovesForAbilityTriggered bool
	FinishTriggerCount               int // race ends when this many racers have finished; default 2
	MaxPositionalRepeats             int
	EventWindowSize                  int
	MaxEventFrequency                int
	MaxDepth                         int
}

// DefaultRules returns the rules described in §4.7 and §6.
func DefaultRules() Rules {
	return Rules{
		TimingMode:            Priority,
		FinishTriggerCount:    2,
		MaxPositionalRepeats:  3,
		EventWindowSize:       50,
		MaxEventFrequency:     10,
		MaxDepth:              150,
	}
}

// RollState is the process-local ephemeral record of the in-progress
// main-move dice query.
type RollState struct {
	SerialID   int64
	BaseValue  int
	FinalValue int
}

// RacerState is the mutable race state of one participant.
type RacerState struct {
	Idx            int
	Name           ids.RacerName
	Position       int
	VictoryPoints  int
	Tripped        bool
	RerollCount    int
	FinishPosition int // 0 means unset; 1-based ordinal otherwise
	Eliminated     bool

	Modifiers        []RacerModifier
	ActiveAbilities  map[ids.AbilityName]Ability
}

// Finished reports whether the racer has crossed the finish line.
func (r *RacerState) Finished() bool { return r.FinishPosition != 0 }

// Active reports whether the racer can still act or be acted upon.
func (r *RacerState) Active() bool { return !r.Finished() && !r.Eliminated }

// Abilities returns the racer's current ability name set.
func (r *RacerState) Abilities() []ids.AbilityName {
	names := make([]ids.AbilityName, 0, len(r.ActiveAbilities))
	for name := range r.ActiveAbilities {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// GameState owns the full observable state of a race: racers, board,
// roll state, rules, the current-racer cursor, and the race-over flag.
// The scheduler's queue and the loop-detection state are held alongside
// it on Engine, not here, since they are dispatch machinery rather than
// observable game state (see StateHash).
type GameState struct {
	Racers          []*RacerState
	Board           *Board
	Roll            RollState
	Rules           Rules
	CurrentRacerIdx int
	RaceOver        bool
	Aborted         bool
	TurnIndex       int
	FinishOrder     []int
}

// ActiveCount returns the number of racers that are neither finished nor
// eliminated.
func (g *GameState) ActiveCount() int {
	n := 0
	for _, r := range g.Racers {
		if r.Active() {
			n++
		}
	}
	return n
}

// StateHash is the canonical fingerprint described in §6: for each racer
// (idx, position, tripped, finish_position, eliminated, vp, sorted
// ability set, sorted racer-modifier name set) and for each tile its
// sorted dynamic-modifier name set. It never reads the clock or logger,
// so it is stable across runs with identical inputs.
func (g *GameState) StateHash() uint64 {
	h := newFNVAccumulator()

	for _, r := range g.Racers {
		h.writeInt(r.Idx)
		h.writeInt(r.Position)
		h.writeBool(r.Tripped)
		h.writeInt(r.FinishPosition)
		h.writeBool(r.Eliminated)
		h.writeInt(r.VictoryPoints)
		for _, a := range r.Abilities() {
			h.writeInt(int(a))
		}
		names := make([]int, 0, len(r.Modifiers))
		for _, m := range r.Modifiers {
			names = append(names, int(m.Name()))
		}
		sort.Ints(names)
		for _, n := range names {
			h.writeInt(n)
		}
	}

	tiles := make([]int, 0, len(g.Board.dynamicModifiers))
	for t := range g.Board.dynamicModifiers {
		tiles = append(tiles, t)
	}
	sort.Ints(tiles)
	for _, t := range tiles {
		h.writeInt(t)
		names := make([]int, 0, len(g.Board.dynamicModifiers[t]))
		for _, m := range g.Board.dynamicModifiers[t] {
			names = append(names, int(m.Name()))
		}
		sort.Ints(names)
		for _, n := range names {
			h.writeInt(n)
		}
	}

	return h.sum()
}

// positionsOnlyHash hashes just (per-racer position, tripped), with no
// current-racer or phase component. Used for the level-2 positional
// repetition count, which may legitimately recur a bounded number of
// times during a reaction chain.
func (g *GameState) positionsOnlyHash() uint64 {
	h := newFNVAccumulator()
	for _, r := range g.Racers {
		h.writeInt(r.Position)
		h.writeBool(r.Tripped)
	}
	return h.sum()
}

// stateSignature is the level-1 loop-detection signature: (per-racer
// position, active, tripped) plus current racer and top-of-queue phase.
// It deliberately excludes VP and abilities, which may legitimately
// change during a reaction chain without constituting a repeated state
// for loop purposes.
func (g *GameState) stateSignature(topPhase int) uint64 {
	h := newFNVAccumulator()
	for _, r := range g.Racers {
		h.writeInt(r.Idx)
		h.writeInt(r.Position)
		h.writeBool(r.Active())
		h.writeBool(r.Tripped)
	}
	h.writeInt(g.CurrentRacerIdx)
	h.writeInt(topPhase)
	return h.sum()
}
