// Package boards provides named board factories, grounded on the
// standard board defined in the original prototype (finish tile 20,
// trip tiles at 4/10/18, a victory-point tile, and delta tiles) plus a
// shorter sprint variant for fast property tests.
package boards

import (
	"fmt"

	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

const (
	standardLength     = 21
	standardFinishTile = 20
	victoryPointTile   = 14
	victoryPointAward  = 1

	sprintLength     = 11
	sprintFinishTile = 10
)

var standardTripTiles = []int{4, 10, 18}

type deltaTile struct {
	tile  int
	delta int
}

var standardDeltaTiles = []deltaTile{
	{tile: 8, delta: 2},
	{tile: 16, delta: -3},
}

// Build returns a freshly constructed board for name, or an error if
// name is not a known board.
func Build(name ids.BoardName) (*race.Board, error) {
	switch name {
	case ids.StandardBoard:
		return buildStandard(), nil
	case ids.SprintBoard:
		return buildSprint(), nil
	default:
		return nil, fmt.Errorf("boards: unknown board %s", name)
	}
}

func buildStandard() *race.Board {
	b := race.NewBoard(ids.StandardBoard, standardLength, standardFinishTile)
	for _, t := range standardTripTiles {
		b.AddStatic(t, &TripTile{tile: t})
	}
	b.AddStatic(victoryPointTile, &VictoryPointTile{tile: victoryPointTile, award: victoryPointAward})
	for _, dt := range standardDeltaTiles {
		b.AddStatic(dt.tile, &MoveDeltaTile{tile: dt.tile, delta: dt.delta})
	}
	return b
}

func buildSprint() *race.Board {
	b := race.NewBoard(ids.SprintBoard, sprintLength, sprintFinishTile)
	b.AddStatic(3, &TripTile{tile: 3})
	return b
}
