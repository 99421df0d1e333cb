// Package abilities implements the concrete ability and modifier
// behaviors wired into an Engine through internal/roster. It imports
// internal/race one-directionally: race only knows the Ability,
// SpaceModifier, and RacerModifier interfaces, never these concrete
// types.
package abilities

import (
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// base holds the fields every ability shares: its name and owning
// racer. Concrete abilities embed it and add behavior.
type base struct {
	name  ids.AbilityName
	owner int
}

func (b base) Name() ids.AbilityName { return b.name }
func (b base) OwnerIdx() int         { return b.owner }

// nearestOther returns the index of the active racer (other than
// ownerIdx) whose position is closest to ownerIdx's, breaking ties by
// lowest index. It returns -1 if no other active racer exists.
func nearestOther(state *race.GameState, ownerIdx int) int {
	owner := state.Racers[ownerIdx]
	best := -1
	bestDist := -1
	for _, r := range state.Racers {
		if r.Idx == ownerIdx || !r.Active() {
			continue
		}
		dist := r.Position - owner.Position
		if dist < 0 {
			dist = -dist
		}
		if best == -1 || dist < bestDist {
			best = r.Idx
			bestDist = dist
		}
	}
	return best
}

// leaderIdx returns the active racer (other than ownerIdx) furthest
// along the board, breaking ties by lowest index.
func leaderIdx(state *race.GameState, ownerIdx int) int {
	best := -1
	bestPos := -1
	for _, r := range state.Racers {
		if r.Idx == ownerIdx || !r.Active() {
			continue
		}
		if best == -1 || r.Position > bestPos {
			best = r.Idx
			bestPos = r.Position
		}
	}
	return best
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// isLast reports whether ownerIdx has the lowest position among active,
// unfinished racers.
func isLast(state *race.GameState, ownerIdx int) bool {
	owner := state.Racers[ownerIdx]
	if !owner.Active() {
		return false
	}
	for _, r := range state.Racers {
		if r.Idx == ownerIdx || !r.Active() {
			continue
		}
		if r.Position < owner.Position {
			return false
		}
	}
	return true
}

// aheadOf returns the active racer with the smallest position strictly
// greater than ownerIdx's, or -1 if none.
func aheadOf(state *race.GameState, ownerIdx int) int {
	owner := state.Racers[ownerIdx]
	best := -1
	bestPos := -1
	for _, r := range state.Racers {
		if r.Idx == ownerIdx || !r.Active() {
			continue
		}
		if r.Position <= owner.Position {
			continue
		}
		if best == -1 || r.Position < bestPos {
			best = r.Idx
			bestPos = r.Position
		}
	}
	return best
}
