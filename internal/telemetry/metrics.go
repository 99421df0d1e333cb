package telemetry

import (
	"sort"

	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// abilityTriggerCounter tallies how often one ability fired, and how
// often it targeted its own owner versus someone else.
type abilityTriggerCounter struct {
	Triggers   int
	SelfTarget int
	OtherCount int
}

// RacerResult is the per-racer summary produced by finalize.
type RacerResult struct {
	Idx             int
	Name            ids.RacerName
	Finished        bool
	Eliminated      bool
	FinishPosition  int
	VictoryPoints   int
	TurnsTaken      int
	TripRecoveries  int
	DiceRolled      int
	AbilityTriggers map[ids.AbilityName]int
	SelfTargetCount map[ids.AbilityName]int
}

// MetricsAggregator accumulates per-racer counters across a race by
// observing every dispatched event. Install OnEvent/OnTurnEnd via
// Engine.SetObservers.
type MetricsAggregator struct {
	engine *race.Engine

	triggers       map[int]map[ids.AbilityName]*abilityTriggerCounter
	tripRecoveries map[int]int
	turnsTaken     map[int]int
	diceRolled     map[int]int
}

// NewMetricsAggregator initializes per-racer counters for every racer
// currently in engine's state.
func NewMetricsAggregator(engine *race.Engine) *MetricsAggregator {
	m := &MetricsAggregator{
		engine:         engine,
		triggers:       make(map[int]map[ids.AbilityName]*abilityTriggerCounter),
		tripRecoveries: make(map[int]int),
		turnsTaken:     make(map[int]int),
		diceRolled:     make(map[int]int),
	}
	for _, r := range engine.State().Racers {
		m.triggers[r.Idx] = make(map[ids.AbilityName]*abilityTriggerCounter)
	}
	return m
}

// OnEvent is a race.EventObserver.
func (m *MetricsAggregator) OnEvent(event race.Event, turnIndex int) {
	switch ev := event.(type) {
	case race.AbilityTriggeredEvent:
		counters := m.triggers[ev.Responsible]
		c, ok := counters[ev.Ability]
		if !ok {
			c = &abilityTriggerCounter{}
			counters[ev.Ability] = c
		}
		c.Triggers++
		if ev.Target == ev.Responsible {
			c.SelfTarget++
		} else {
			c.OtherCount++
		}
	case race.TripRecoveryEvent:
		m.tripRecoveries[ev.RacerIdx]++
	case race.RollAndMainMoveEvent:
		m.diceRolled[ev.RacerIdx]++
	}
}

// OnTurnEnd is a race.TurnEndObserver: the acting racer for the turn
// just finished is still CurrentRacerIdx, since endTurn calls this
// before advance() rotates the cursor.
func (m *MetricsAggregator) OnTurnEnd(state *race.GameState) {
	m.turnsTaken[state.CurrentRacerIdx]++
}

// Finalize produces one RacerResult per racer, sorted by index.
func (m *MetricsAggregator) Finalize() []RacerResult {
	state := m.engine.State()
	results := make([]RacerResult, 0, len(state.Racers))
	for _, r := range state.Racers {
		triggerCounts := make(map[ids.AbilityName]int)
		selfCounts := make(map[ids.AbilityName]int)
		for name, c := range m.triggers[r.Idx] {
			triggerCounts[name] = c.Triggers
			selfCounts[name] = c.SelfTarget
		}
		results = append(results, RacerResult{
			Idx:             r.Idx,
			Name:            r.Name,
			Finished:        r.Finished(),
			Eliminated:      r.Eliminated,
			FinishPosition:  r.FinishPosition,
			VictoryPoints:   r.VictoryPoints,
			TurnsTaken:      m.turnsTaken[r.Idx],
			TripRecoveries:  m.tripRecoveries[r.Idx],
			DiceRolled:      m.diceRolled[r.Idx],
			AbilityTriggers: triggerCounts,
			SelfTargetCount: selfCounts,
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Idx < results[j].Idx })
	return results
}
