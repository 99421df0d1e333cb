package race

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/magicalathlete/internal/ids"
)

type redirectModifier struct {
	tile, to, priority int
}

func (r *redirectModifier) Name() ids.ModifierName         { return ids.MoveDeltaTile }
func (r *redirectModifier) Priority() int                  { return r.priority }
func (r *redirectModifier) OwnerIdx() int                   { return noRacer }
func (r *redirectModifier) OnApproach(target, moverIdx int, engine *Engine) int {
	if target != r.tile {
		return target
	}
	return r.to
}

func TestResolvePositionFollowsChainToFixedPoint(t *testing.T) {
	b := NewBoard(ids.StandardBoard, 21, 20)
	b.AddStatic(5, &redirectModifier{tile: 5, to: 8})
	b.AddStatic(8, &redirectModifier{tile: 8, to: 12})

	end := b.ResolvePosition(5, 0, nil)
	assert.Equal(t, 12, end)
}

func TestResolvePositionStopsOnRevisitedTile(t *testing.T) {
	b := NewBoard(ids.StandardBoard, 21, 20)
	b.AddStatic(5, &redirectModifier{tile: 5, to: 8})
	b.AddStatic(8, &redirectModifier{tile: 8, to: 5})

	end := b.ResolvePosition(5, 0, nil)
	assert.True(t, end == 5 || end == 8)
}

func TestModifiersAtSortsByPriority(t *testing.T) {
	b := NewBoard(ids.StandardBoard, 21, 20)
	b.AddStatic(4, &redirectModifier{tile: 4, to: 4, priority: 9})
	b.AddStatic(4, &redirectModifier{tile: 4, to: 4, priority: 1})
	mods := b.modifiersAt(4)
	assert.Equal(t, 1, mods[0].Priority())
	assert.Equal(t, 9, mods[1].Priority())
}

func TestPlaceMoveRemoveDynamic(t *testing.T) {
	b := NewBoard(ids.StandardBoard, 21, 20)
	blocker := &redirectModifier{tile: 5, to: 5, priority: 5}
	b.PlaceDynamic(5, blocker)
	assert.Len(t, b.dynamicModifiers[5], 1)

	b.MoveDynamic(ids.MoveDeltaTile, noRacer, 9)
	assert.Empty(t, b.dynamicModifiers[5])
	assert.Len(t, b.dynamicModifiers[9], 1)

	b.RemoveDynamic(ids.MoveDeltaTile, noRacer)
	assert.Empty(t, b.dynamicModifiers[9])
}
