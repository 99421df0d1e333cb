package race

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/magicalathlete/internal/ids"
)

// RacerSpec is one construction-time roster entry.
type RacerSpec struct {
	Name      ids.RacerName
	Abilities []ids.AbilityName
}

// AbilityFactory constructs a fresh Ability instance for ownerIdx. It is
// supplied by the roster package, which is the only package that knows
// about concrete ability implementations; race itself only knows the
// Ability interface. Engine keeps a reference so it can re-run the
// factory at runtime (Copycat re-aliasing).
type AbilityFactory func(name ids.AbilityName, ownerIdx int) (Ability, error)

// EventObserver is invoked after every dispatched event, scheduled or
// synchronous, with the current turn index (§6 observability hooks).
type EventObserver func(event Event, turnIndex int)

// TurnEndObserver is invoked once the queue drains and before advance.
type TurnEndObserver func(state *GameState)

// Engine ties together state, scheduler, registry, loop detection, and
// the turn driver into one single-threaded, deterministic simulator.
type Engine struct {
	state    *GameState
	sched    *scheduler
	reg      *registry
	loop     *loopDetectionState
	rng      *rand.Rand
	logger   *log.Logger
	clock    quartz.Clock
	factory  AbilityFactory

	currentDepth int

	onEvent   EventObserver
	onTurnEnd TurnEndObserver
}

// NewEngine constructs an Engine from explicit construction inputs. No
// file, socket, or process resource is touched here or anywhere else in
// the package (§5, §6). logger may be nil (discarded). The engine's
// clock starts as quartz.NewReal() and can be replaced with SetClock;
// nothing in the package reads it, so it never affects StateHash.
func NewEngine(racers []RacerSpec, board *Board, rules Rules, factory AbilityFactory, rng *rand.Rand, logger *log.Logger) (*Engine, error) {
	if len(racers) == 0 {
		return nil, ErrEmptyRoster
	}
	if logger == nil {
		logger = log.New(discardWriter{})
	}

	state := &GameState{
		Racers: make([]*RacerState, 0, len(racers)),
		Board:  board,
		Rules:  rules,
	}
	for i, spec := range racers {
		state.Racers = append(state.Racers, &RacerState{
			Idx:             i,
			Name:            spec.Name,
			ActiveAbilities: make(map[ids.AbilityName]Ability),
		})
	}

	eng := &Engine{
		state:   state,
		sched:   newScheduler(),
		reg:     newRegistry(),
		loop:    newLoopDetectionState(rules),
		rng:     rng,
		logger:  logger,
		clock:   quartz.NewReal(),
		factory: factory,
	}

	for i, spec := range racers {
		for _, name := range spec.Abilities {
			if err := eng.attachAbility(i, name); err != nil {
				return nil, err
			}
		}
	}

	return eng, nil
}

// SetClock overrides the engine's clock (for example with a
// quartz.Mock).
func (e *Engine) SetClock(c quartz.Clock) { e.clock = c }

// SetObservers installs the telemetry hooks described in §6.
func (e *Engine) SetObservers(onEvent EventObserver, onTurnEnd TurnEndObserver) {
	e.onEvent = onEvent
	e.onTurnEnd = onTurnEnd
}

// State returns the read-only-by-convention game state view.
func (e *Engine) State() *GameState { return e.state }

// GetRacer returns the racer at idx.
func (e *Engine) GetRacer(idx int) *RacerState { return e.state.Racers[idx] }

// RacersAt returns the indices of every racer currently on tile.
func (e *Engine) RacersAt(tile int) []int {
	var out []int
	for _, r := range e.state.Racers {
		if r.Position == tile {
			out = append(out, r.Idx)
		}
	}
	return out
}

// TurnIndex returns the current turn counter.
func (e *Engine) TurnIndex() int { return e.state.TurnIndex }

func (e *Engine) attachAbility(ownerIdx int, name ids.AbilityName) error {
	a, err := e.factory(name, ownerIdx)
	if err != nil {
		return fmt.Errorf("attach %s to racer %d: %w", name, ownerIdx, err)
	}
	e.state.Racers[ownerIdx].ActiveAbilities[name] = a
	e.reg.subscribe(a)
	if hook, ok := a.(AttachHook); ok {
		hook.OnAttach(e, ownerIdx)
	}
	return nil
}

func (e *Engine) detachAbility(ownerIdx int, name ids.AbilityName) {
	racer := e.state.Racers[ownerIdx]
	a, ok := racer.ActiveAbilities[name]
	if !ok {
		return
	}
	if hook, ok := a.(DetachHook); ok {
		hook.OnDetach(e, ownerIdx)
	}
	delete(racer.ActiveAbilities, name)
}

// ReplaceAbilities atomically re-aliases a racer's ability set: every
// current ability is detached, then every name in newAbilities is
// constructed and attached. Used by Copycat. Detach/attach happens as
// one pass so the registry never observes a partially-updated racer.
func (e *Engine) ReplaceAbilities(ownerIdx int, newAbilities []ids.AbilityName) error {
	racer := e.state.Racers[ownerIdx]
	for _, name := range racer.Abilities() {
		e.detachAbility(ownerIdx, name)
	}
	e.reg.unsubscribeAll(ownerIdx)
	for _, name := range newAbilities {
		if err := e.attachAbility(ownerIdx, name); err != nil {
			return err
		}
	}
	return nil
}

// pushScheduled computes the reactor distance from the current racer
// cursor and the next depth from the dispatch in progress, then heap-
// pushes the event.
func (e *Engine) pushScheduled(phase Phase, responsible int, event Event) {
	dist := reactorDistance(responsible, e.state.CurrentRacerIdx, len(e.state.Racers))
	e.sched.push(phase, dist, e.currentDepth+1, event)
}

// publishToSubscribers synchronously invokes every ability subscribed
// to event's kind, in reactor-distance order from the current racer,
// skipping inactive owners (§4.3).
func (e *Engine) publishToSubscribers(event Event) {
	subs := e.reg.subscribers[event.Kind()]
	if len(subs) == 0 {
		e.notify(event)
		return
	}
	ordered := make([]Ability, len(subs))
	copy(ordered, subs)
	n := len(e.state.Racers)
	sort.SliceStable(ordered, func(i, j int) bool {
		di := reactorDistance(ordered[i].OwnerIdx(), e.state.CurrentRacerIdx, n)
		dj := reactorDistance(ordered[j].OwnerIdx(), e.state.CurrentRacerIdx, n)
		return di < dj
	})
	for _, a := range ordered {
		owner := e.state.Racers[a.OwnerIdx()]
		if !owner.Active() {
			continue
		}
		a.Execute(e, event)
	}
	e.notify(event)
}

// notify invokes the per-event observability hook, if installed.
func (e *Engine) notify(event Event) {
	if e.onEvent != nil {
		e.onEvent(event, e.state.TurnIndex)
	}
}

// maybeEmitAbilityTriggered schedules an AbilityTriggered marker for
// event's source ability, if event.EmitMode() requests it and the
// command actually resolved (callers only invoke this on success).
func (e *Engine) maybeEmitAbilityTriggered(event Event) {
	if event.EmitMode() != EmitAfterResolution {
		return
	}
	src := event.Source()
	if src.Kind != ids.SourceAbility {
		return
	}
	e.pushScheduled(PhaseAbility, event.ResponsibleRacer(), AbilityTriggeredEvent{
		Ability:     src.Ability,
		Responsible: event.ResponsibleRacer(),
		Target:      event.TargetRacer(),
	})
}

// ConfigFingerprint is the canonical configuration fingerprint described
// in §6: a pure function of (sorted racer names, board name, seed,
// max_turns, rules), used by embedders to deduplicate runs. It is never
// consulted by the engine itself.
func ConfigFingerprint(names []ids.RacerName, board ids.BoardName, seed int64, maxTurns int, rules Rules) uint64 {
	sorted := make([]int, len(names))
	for i, n := range names {
		sorted[i] = int(n)
	}
	sort.Ints(sorted)

	h := newFNVAccumulator()
	for _, n := range sorted {
		h.writeInt(n)
	}
	h.writeInt(int(board))
	h.writeInt64(seed)
	h.writeInt(maxTurns)
	h.writeInt(int(rules.TimingMode))
	h.writeBool(rules.CountZeroMovesForAbilityTriggered)
	h.writeInt(rules.FinishTriggerCount)
	h.writeInt(rules.MaxPositionalRepeats)
	h.writeInt(rules.EventWindowSize)
	h.writeInt(rules.MaxEventFrequency)
	h.writeInt(rules.MaxDepth)
	return h.sum()
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
