package race

// eventSignature identifies a (event kind, target racer, source) triple
// for the level-3 frequency guard.
type eventSignature struct {
	kind   EventKind
	target int
	source string
}

// loopDetectionState implements the four-level guard from §4.7. It is
// cleared at every TurnStart and never raises; a hit only causes the
// offending event to be skipped.
type loopDetectionState struct {
	fullStateHistory map[uint64]bool
	positionalCount  map[uint64]int
	eventSerials     map[eventSignature][]int64

	maxPositionalRepeats int
	eventWindowSize      int
	maxEventFrequency    int
	maxDepth             int
}

func newLoopDetectionState(rules Rules) *loopDetectionState {
	return &loopDetectionState{
		fullStateHistory:     make(map[uint64]bool),
		positionalCount:      make(map[uint64]int),
		eventSerials:         make(map[eventSignature][]int64),
		maxPositionalRepeats: rules.MaxPositionalRepeats,
		eventWindowSize:      rules.EventWindowSize,
		maxEventFrequency:    rules.MaxEventFrequency,
		maxDepth:             rules.MaxDepth,
	}
}

func (l *loopDetectionState) clearForNewTurn() {
	l.fullStateHistory = make(map[uint64]bool)
	l.positionalCount = make(map[uint64]int)
	l.eventSerials = make(map[eventSignature][]int64)
}

// check runs the four layers in order and returns (skip, reason). Each
// layer records its observation before testing it; a hit returns at
// once, so the layers after the one that skipped the event do not
// record it.
func (l *loopDetectionState) check(state *GameState, se *ScheduledEvent) (bool, string) {
	if se.Depth > l.maxDepth {
		return true, "max depth exceeded"
	}

	full := state.stateSignature(int(se.Phase))
	if l.fullStateHistory[full] {
		return true, "exact state repetition"
	}
	l.fullStateHistory[full] = true

	positional := state.positionsOnlyHash()
	l.positionalCount[positional]++
	if l.positionalCount[positional] > l.maxPositionalRepeats {
		return true, "positional repetition limit exceeded"
	}

	sig := eventSignature{kind: se.Event.Kind(), target: se.Event.TargetRacer(), source: se.Event.Source().String()}
	l.eventSerials[sig] = append(l.eventSerials[sig], se.Serial)
	cutoff := se.Serial - int64(l.eventWindowSize)
	serials := l.eventSerials[sig]
	i := 0
	for i < len(serials) && serials[i] < cutoff {
		i++
	}
	serials = serials[i:]
	l.eventSerials[sig] = serials
	if len(serials) > l.maxEventFrequency {
		return true, "event frequency window exceeded"
	}

	return false, ""
}
