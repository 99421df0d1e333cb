package race

import "github.com/lox/magicalathlete/internal/ids"

// PushMove schedules a MoveCmd. This is the entry point abilities and
// board hooks use to move a racer by a signed distance.
func (e *Engine) PushMove(target, distance int, source ids.Source, responsible int, phase Phase, emit EmitMode) {
	e.pushScheduled(phase, responsible, MoveCmdEvent{
		Target: target, Distance: distance, Src: source, Responsible: responsible, Ph: phase, Emit: emit,
	})
}

// PushWarp schedules a WarpCmd to an absolute tile.
func (e *Engine) PushWarp(target, tile int, source ids.Source, responsible int, phase Phase, emit EmitMode) {
	e.pushScheduled(phase, responsible, WarpCmdEvent{
		Target: target, TargetTile: tile, Src: source, Responsible: responsible, Ph: phase, Emit: emit,
	})
}

// PushSimultaneousWarp schedules an atomic multi-racer warp.
func (e *Engine) PushSimultaneousWarp(warps []WarpPair, source ids.Source, responsible int, phase Phase, emit EmitMode) {
	e.pushScheduled(phase, responsible, SimultaneousWarpCmdEvent{
		Warps: warps, Src: source, Responsible: responsible, Ph: phase, Emit: emit,
	})
}

// PushTrip schedules a TripCmd.
func (e *Engine) PushTrip(target int, source ids.Source, responsible int, phase Phase, emit EmitMode) {
	e.pushScheduled(phase, responsible, TripCmdEvent{
		Target: target, Src: source, Responsible: responsible, Ph: phase, Emit: emit,
	})
}

func (e *Engine) handleMoveCmd(ev MoveCmdEvent) {
	racer := e.state.Racers[ev.Target]
	if !racer.Active() {
		return
	}
	if ev.Distance == 0 {
		if e.state.Rules.CountZeroMovesForAbilityTriggered {
			e.maybeEmitAbilityTriggered(ev)
		}
		return
	}

	start := racer.Position
	e.publishToSubscribers(PreMoveEvent{RacerIdx: ev.Target, Start: start, Distance: ev.Distance})

	intended := start + ev.Distance
	end := e.state.Board.ResolvePosition(intended, ev.Target, e)
	if end < 0 {
		e.logger.Info("clamped move below zero", "racer", ev.Target, "intended", intended)
		end = 0
	}

	if end == start {
		if ev.Emit == EmitAfterResolution && e.state.Rules.CountZeroMovesForAbilityTriggered {
			e.maybeEmitAbilityTriggered(ev)
		}
		return
	}

	e.emitPassingEvents(start, end, ev.Target)

	racer.Position = end
	if e.checkFinish(racer) {
		e.maybeEmitAbilityTriggered(ev)
		return
	}

	e.state.Board.TriggerOnLand(end, ev.Target, ev.Ph, e)
	e.publishToSubscribers(PostMoveEvent{RacerIdx: ev.Target, Start: start, End: end})
	e.maybeEmitAbilityTriggered(ev)
}

// emitPassingEvents schedules a Passing event for every active racer
// strictly between start and end (exclusive of end, per §4.4 step 6),
// other than the mover itself, in the direction of travel. Passing
// events always schedule at PhaseAbility regardless of the triggering
// command's own phase.
func (e *Engine) emitPassingEvents(start, end, moverIdx int) {
	step := 1
	if end < start {
		step = -1
	}
	for tile := start + step; tile != end; tile += step {
		for _, r := range e.state.Racers {
			if r.Idx == moverIdx || r.Position != tile || !r.Active() {
				continue
			}
			e.pushScheduled(PhaseAbility, moverIdx, PassingEvent{
				Responsible: moverIdx, Target: r.Idx, Tile: tile, Ph: PhaseAbility, Src: ids.SystemSource,
			})
		}
	}
}

func (e *Engine) handleWarpCmd(ev WarpCmdEvent) {
	racer := e.state.Racers[ev.Target]
	if !racer.Active() {
		return
	}
	start := racer.Position
	e.publishToSubscribers(PreWarpEvent{RacerIdx: ev.Target, Start: start, Target: ev.TargetTile})

	end := e.state.Board.ResolvePosition(ev.TargetTile, ev.Target, e)
	if end < 0 {
		end = 0
	}
	racer.Position = end
	if e.checkFinish(racer) {
		e.maybeEmitAbilityTriggered(ev)
		return
	}
	e.state.Board.TriggerOnLand(end, ev.Target, ev.Ph, e)
	e.publishToSubscribers(PostWarpEvent{RacerIdx: ev.Target, Start: start, End: end})
	e.maybeEmitAbilityTriggered(ev)
}

func (e *Engine) handleSimultaneousWarpCmd(ev SimultaneousWarpCmdEvent) {
	type resolved struct {
		idx   int
		start int
		end   int
	}
	var survivors []resolved
	for _, w := range ev.Warps {
		racer := e.state.Racers[w.RacerIdx]
		if !racer.Active() {
			continue
		}
		end := e.state.Board.ResolvePosition(w.Tile, w.RacerIdx, e)
		if end < 0 {
			end = 0
		}
		if end == racer.Position {
			continue
		}
		survivors = append(survivors, resolved{idx: w.RacerIdx, start: racer.Position, end: end})
	}

	for _, s := range survivors {
		e.publishToSubscribers(PreWarpEvent{RacerIdx: s.idx, Start: s.start, Target: s.end})
	}

	for _, s := range survivors {
		e.state.Racers[s.idx].Position = s.end
	}

	for _, s := range survivors {
		racer := e.state.Racers[s.idx]
		if e.checkFinish(racer) {
			continue
		}
		e.state.Board.TriggerOnLand(s.end, s.idx, ev.Ph, e)
		e.publishToSubscribers(PostWarpEvent{RacerIdx: s.idx, Start: s.start, End: s.end})
	}

	if len(survivors) > 0 {
		e.maybeEmitAbilityTriggered(ev)
	}
}

func (e *Engine) handleTripCmd(ev TripCmdEvent) {
	racer := e.state.Racers[ev.Target]
	if !racer.Active() || racer.Tripped {
		return
	}
	racer.Tripped = true
	e.logger.Info("racer tripped", "racer", ev.Target, "source", ev.Src.String())
	e.maybeEmitAbilityTriggered(ev)
}

// checkFinish marks racer finished if it has reached the finish tile,
// per §4.6. It returns whether the racer is finished, including one that
// had already finished before this call.
func (e *Engine) checkFinish(racer *RacerState) bool {
	if racer.Finished() {
		return true
	}
	if racer.Position < e.state.Board.FinishTile {
		return false
	}
	racer.Position = e.state.Board.FinishTile
	racer.FinishPosition = len(e.state.FinishOrder) + 1
	e.state.FinishOrder = append(e.state.FinishOrder, racer.Idx)

	if racer.FinishPosition == 1 {
		racer.VictoryPoints += winVictoryPoints
	}

	if len(e.state.FinishOrder) >= e.state.Rules.FinishTriggerCount {
		e.state.RaceOver = true
		e.sched.clear()
	}
	return true
}

// winVictoryPoints is the standard board's award for finishing first,
// per §4.6 ("the standard board awards WIN_VP=5 to first place").
const winVictoryPoints = 5

func (e *Engine) handleRollAndMainMove(ev RollAndMainMoveEvent) {
	base := 1 + int(e.rng.IntN(6))
	e.state.Roll = RollState{SerialID: e.sched.serial, BaseValue: base}

	query := &RollQuery{RacerIdx: ev.RacerIdx, BaseValue: base}

	n := len(e.state.Racers)
	for i := 0; i < n; i++ {
		idx := (ev.RacerIdx + i) % n
		owner := e.state.Racers[idx]
		if !owner.Active() {
			continue
		}
		for _, m := range owner.Modifiers {
			if hook, ok := m.(RollHook); ok {
				hook.ModifyRoll(query, idx, e)
			}
		}
		// Abilities may themselves implement RollHook (e.g. MagicalReroll)
		// without installing a separate racer modifier. Iterate the sorted
		// name slice, not the map, so behavior stays deterministic if a
		// racer is ever given more than one roll-hook ability.
		for _, name := range owner.Abilities() {
			if hook, ok := owner.ActiveAbilities[name].(RollHook); ok {
				hook.ModifyRoll(query, idx, e)
			}
		}
	}

	final := query.FinalValue()
	e.state.Roll.FinalValue = final

	if final > 0 {
		e.PushMove(ev.RacerIdx, final, ids.SystemSource, ev.RacerIdx, PhaseMove, EmitNever)
	}
}
