package race

// RunTurn advances the current racer through the Idle/Recovering/Acting/
// Advance states described in §4.6, then rotates the cursor.
func (e *Engine) RunTurn() {
	if e.state.RaceOver {
		return
	}
	e.loop.clearForNewTurn()
	e.currentDepth = 0

	racer := e.state.Racers[e.state.CurrentRacerIdx]

	if !racer.Active() {
		e.endTurn()
		return
	}

	if racer.Tripped {
		racer.Tripped = false
		e.publishToSubscribers(TripRecoveryEvent{RacerIdx: racer.Idx})
		e.endTurn()
		return
	}

	e.publishToSubscribers(TurnStartEvent{RacerIdx: racer.Idx})
	if e.state.RaceOver {
		return
	}

	e.sched.push(PhaseSystem, 0, 0, RollAndMainMoveEvent{RacerIdx: racer.Idx})
	e.drainQueue()
	e.endTurn()
}

// drainQueue pops and dispatches scheduled events until the queue is
// empty or the race ends, per §4.2 and §5.
func (e *Engine) drainQueue() {
	for !e.sched.empty() {
		if e.state.RaceOver {
			e.sched.clear()
			return
		}
		se := e.sched.pop()
		e.currentDepth = se.Depth

		if skip, reason := e.loop.check(e.state, se); skip {
			e.logger.Warn("event skipped by loop detection", "reason", reason, "kind", se.Event.Kind().String())
			continue
		}

		e.dispatch(se.Event)
	}
}

// dispatch routes one popped event to its handler. Command kinds
// (MoveCmd/WarpCmd/SimultaneousWarpCmd/TripCmd/RollAndMainMove) run a
// dedicated built-in handler; reaction/notification kinds run through
// the generic pub/sub registry.
func (e *Engine) dispatch(event Event) {
	switch ev := event.(type) {
	case MoveCmdEvent:
		e.handleMoveCmd(ev)
	case WarpCmdEvent:
		e.handleWarpCmd(ev)
	case SimultaneousWarpCmdEvent:
		e.handleSimultaneousWarpCmd(ev)
	case TripCmdEvent:
		e.handleTripCmd(ev)
	case RollAndMainMoveEvent:
		e.handleRollAndMainMove(ev)
	case PassingEvent, AbilityTriggeredEvent, TripRecoveryEvent:
		e.publishToSubscribers(event)
		return
	default:
		e.logger.Warn("unexpected event kind on queue", "kind", event.Kind().String())
		return
	}
	e.notify(event)
}

// endTurn invokes the per-turn-end observer and advances the cursor.
func (e *Engine) endTurn() {
	if e.onTurnEnd != nil {
		e.onTurnEnd(e.state)
	}
	e.advance()
}

// advance rotates current_racer_idx to the next active racer, per the
// Advance state in §4.6. If the race is already over it is a no-op.
func (e *Engine) advance() {
	if e.state.RaceOver {
		return
	}
	n := len(e.state.Racers)
	for i := 1; i <= n; i++ {
		idx := (e.state.CurrentRacerIdx + i) % n
		if e.state.Racers[idx].Active() {
			e.state.CurrentRacerIdx = idx
			break
		}
	}
	e.state.TurnIndex++
}

// RunRace loops RunTurn until race_over or maxTurns is reached. A
// maxTurns of zero or less means unbounded, matching §6's "max turns
// per race (optional; otherwise unbounded)". When the limit is hit
// before race_over, the run is marked Aborted without further mutation,
// per §7.
func (e *Engine) RunRace(maxTurns int) {
	turns := 0
	for !e.state.RaceOver {
		if maxTurns > 0 && turns >= maxTurns {
			e.state.Aborted = true
			return
		}
		e.RunTurn()
		turns++
	}
}
