package boards

import (
	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

const noRacer = -1

// TripTile trips whoever lands on it.
type TripTile struct {
	tile int
}

func (t *TripTile) Name() ids.ModifierName { return ids.TripTile }
func (t *TripTile) Priority() int          { return 5 }
func (t *TripTile) OwnerIdx() int          { return noRacer }

func (t *TripTile) OnLand(tile, racerIdx int, phase race.Phase, engine *race.Engine) {
	engine.PushTrip(racerIdx, ids.BoardSource, noRacer, phase, race.EmitNever)
}

// VictoryPointTile awards a fixed number of victory points once per
// visit to whoever lands on it.
type VictoryPointTile struct {
	tile  int
	award int
}

func (v *VictoryPointTile) Name() ids.ModifierName { return ids.VictoryPointTile }
func (v *VictoryPointTile) Priority() int          { return 5 }
func (v *VictoryPointTile) OwnerIdx() int          { return noRacer }

func (v *VictoryPointTile) OnLand(tile, racerIdx int, phase race.Phase, engine *race.Engine) {
	racer := engine.GetRacer(racerIdx)
	racer.VictoryPoints += v.award
}

// MoveDeltaTile chains a further move by a fixed signed delta whenever
// a racer lands on it. The move is scheduled as a separate MoveCmd, so it
// runs through the movement pipeline's approach resolution again when
// the queue dispatches it.
type MoveDeltaTile struct {
	tile  int
	delta int
}

func (m *MoveDeltaTile) Name() ids.ModifierName { return ids.MoveDeltaTile }
func (m *MoveDeltaTile) Priority() int          { return 5 }
func (m *MoveDeltaTile) OwnerIdx() int          { return noRacer }

func (m *MoveDeltaTile) OnLand(tile, racerIdx int, phase race.Phase, engine *race.Engine) {
	engine.PushMove(racerIdx, m.delta, ids.BoardSource, noRacer, phase, race.EmitNever)
}
