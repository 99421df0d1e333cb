package race

import "github.com/lox/magicalathlete/internal/ids"

// SpaceModifier is attached to a tile. Every space modifier carries a
// Name and Priority (lower runs first); it implements zero or more of
// the hook mixins below, checked with a type assertion at call sites
// (the Go analogue of the original's multiple-inheritance mixins).
type SpaceModifier interface {
	Name() ids.ModifierName
	Priority() int
	OwnerIdx() int // -1 for board-static modifiers
}

// ApproachHook redirects a target tile before a mover arrives at it.
// Implementations must guarantee eventual convergence: see
// (*Board).ResolvePosition.
type ApproachHook interface {
	OnApproach(target, moverIdx int, engine *Engine) int
}

// LandingHook runs once a racer has committed to a tile.
type LandingHook interface {
	OnLand(tile, racerIdx int, phase Phase, engine *Engine)
}

// RacerModifier is attached to a racer (not a tile). Equality is by
// (Name, OwnerIdx), matching §3's Modifier equality rule.
type RacerModifier interface {
	Name() ids.ModifierName
	OwnerIdx() int
}

// RollHook is a RacerModifier that participates in the dice-roll
// pipeline (§4.5).
type RollHook interface {
	ModifyRoll(query *RollQuery, ownerIdx int, engine *Engine)
}

// maxApproachIterations bounds the fixed-point iteration in
// ResolvePosition so that a buggy or adversarial modifier chain cannot
// hang the engine; see §4.4 and the Design Notes on board composition.
const maxApproachIterations = 64

// Board is an ordered sequence of tiles of fixed length plus a mapping
// from tile index to the space modifiers covering it. staticModifiers
// are fixed at construction (trip/VP/delta tiles); dynamicModifiers are
// placed and moved by abilities at runtime (blockers).
type Board struct {
	Name             ids.BoardName
	Length           int
	FinishTile       int
	staticModifiers  map[int][]SpaceModifier
	dynamicModifiers map[int][]SpaceModifier
}

// NewBoard constructs an empty board of the given length and finish
// tile. Static modifiers are added with AddStatic before the board is
// handed to an Engine.
func NewBoard(name ids.BoardName, length, finishTile int) *Board {
	return &Board{
		Name:             name,
		Length:           length,
		FinishTile:       finishTile,
		staticModifiers:  make(map[int][]SpaceModifier),
		dynamicModifiers: make(map[int][]SpaceModifier),
	}
}

// AddStatic attaches a board-static space modifier to a tile.
func (b *Board) AddStatic(tile int, m SpaceModifier) {
	b.staticModifiers[tile] = append(b.staticModifiers[tile], m)
}

// PlaceDynamic adds a dynamic modifier (e.g. a blocker) to a tile, used
// by abilities whose modifier follows their owner. It appends without
// removing any modifier already there.
func (b *Board) PlaceDynamic(tile int, m SpaceModifier) {
	b.dynamicModifiers[tile] = append(b.dynamicModifiers[tile], m)
}

// RemoveDynamic removes a dynamic modifier owned by ownerIdx, named
// name, from every tile it is placed on.
func (b *Board) RemoveDynamic(name ids.ModifierName, ownerIdx int) {
	for tile, mods := range b.dynamicModifiers {
		kept := mods[:0]
		for _, m := range mods {
			if m.Name() == name && m.OwnerIdx() == ownerIdx {
				continue
			}
			kept = append(kept, m)
		}
		if len(kept) == 0 {
			delete(b.dynamicModifiers, tile)
		} else {
			b.dynamicModifiers[tile] = kept
		}
	}
}

// MoveDynamic relocates a dynamic modifier owned by ownerIdx from
// wherever it currently sits to newTile, used by HugeBabyPush's
// following blocker.
func (b *Board) MoveDynamic(name ids.ModifierName, ownerIdx, newTile int) {
	var found SpaceModifier
	for _, mods := range b.dynamicModifiers {
		for _, m := range mods {
			if m.Name() == name && m.OwnerIdx() == ownerIdx {
				found = m
			}
		}
	}
	if found == nil {
		return
	}
	b.RemoveDynamic(name, ownerIdx)
	b.PlaceDynamic(newTile, found)
}

func (b *Board) modifiersAt(tile int) []SpaceModifier {
	all := make([]SpaceModifier, 0, len(b.staticModifiers[tile])+len(b.dynamicModifiers[tile]))
	all = append(all, b.staticModifiers[tile]...)
	all = append(all, b.dynamicModifiers[tile]...)
	sortByPriority(all)
	return all
}

func sortByPriority(mods []SpaceModifier) {
	for i := 1; i < len(mods); i++ {
		j := i
		for j > 0 && mods[j-1].Priority() > mods[j].Priority() {
			mods[j-1], mods[j] = mods[j], mods[j-1]
			j--
		}
	}
}

// ResolvePosition walks on_approach hooks of any space modifier covering
// the intended tile, in priority order, until a fixed point: each
// application must not revisit the same (tile, mover) pair twice within
// one resolution call, and the loop is bounded by
// maxApproachIterations regardless.
func (b *Board) ResolvePosition(intended, moverIdx int, engine *Engine) int {
	visited := make(map[int]bool, 4)
	current := intended
	for i := 0; i < maxApproachIterations; i++ {
		if visited[current] {
			return current
		}
		visited[current] = true

		redirected := current
		for _, m := range b.modifiersAt(current) {
			hook, ok := m.(ApproachHook)
			if !ok {
				continue
			}
			redirected = hook.OnApproach(redirected, moverIdx, engine)
		}
		if redirected == current {
			return current
		}
		current = redirected
	}
	return current
}

// TriggerOnLand runs every landing hook at tile, in priority order.
func (b *Board) TriggerOnLand(tile, racerIdx int, phase Phase, engine *Engine) {
	for _, m := range b.modifiersAt(tile) {
		if hook, ok := m.(LandingHook); ok {
			hook.OnLand(tile, racerIdx, phase, engine)
		}
	}
}
