package boards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
	"github.com/lox/magicalathlete/internal/randutil"
)

func noAbilities(name ids.AbilityName, ownerIdx int) (race.Ability, error) {
	return nil, race.ErrUnknownAbility
}

func newTestEngine(t *testing.T, board *race.Board) *race.Engine {
	t.Helper()
	eng, err := race.NewEngine([]race.RacerSpec{{Name: ids.Banana}}, board, race.DefaultRules(), noAbilities, randutil.New(1), nil)
	require.NoError(t, err)
	return eng
}

func TestBuildStandardSetsDimensionsAndTripTiles(t *testing.T) {
	b, err := Build(ids.StandardBoard)
	require.NoError(t, err)
	assert.Equal(t, standardLength, b.Length)
	assert.Equal(t, standardFinishTile, b.FinishTile)

	eng := newTestEngine(t, b)
	for _, tile := range standardTripTiles {
		b.TriggerOnLand(tile, 0, race.PhaseMove, eng)
		assert.True(t, eng.GetRacer(0).Tripped, "tile %d should trip", tile)
		eng.GetRacer(0).Tripped = false
	}
}

func TestBuildStandardVictoryPointTileAwardsOnEveryLanding(t *testing.T) {
	b, err := Build(ids.StandardBoard)
	require.NoError(t, err)
	eng := newTestEngine(t, b)

	b.TriggerOnLand(victoryPointTile, 0, race.PhaseMove, eng)
	assert.Equal(t, victoryPointAward, eng.GetRacer(0).VictoryPoints)

	b.TriggerOnLand(victoryPointTile, 0, race.PhaseMove, eng)
	assert.Equal(t, 2*victoryPointAward, eng.GetRacer(0).VictoryPoints)
}

func TestBuildSprintIsShorterWithASingleTripTile(t *testing.T) {
	b, err := Build(ids.SprintBoard)
	require.NoError(t, err)
	assert.Equal(t, sprintLength, b.Length)
	assert.Equal(t, sprintFinishTile, b.FinishTile)

	eng := newTestEngine(t, b)
	b.TriggerOnLand(3, 0, race.PhaseMove, eng)
	assert.True(t, eng.GetRacer(0).Tripped)
}

func TestBuildRejectsUnknownBoardName(t *testing.T) {
	_, err := Build(ids.BoardName(999))
	assert.Error(t, err)
}
