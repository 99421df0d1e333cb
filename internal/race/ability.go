package race

import "github.com/lox/magicalathlete/internal/ids"

// Ability is a behavior object keyed by name, owned by exactly one
// racer for its lifetime. It registers subscriptions on attach and
// unregisters on detach (see Engine.ReplaceAbilities).
type Ability interface {
	Name() ids.AbilityName
	OwnerIdx() int
	// Triggers returns the event kinds this ability reacts to. The
	// registry subscribes the ability to each on attach.
	Triggers() []EventKind
	// Execute runs the ability's reaction to event. Implementations
	// push further command events through engine rather than mutating
	// state directly, so movement and loop-detection stay centralized.
	Execute(engine *Engine, event Event)
}

// AttachHook is implemented by abilities that install a persistent
// modifier (racer-scoped or space-scoped) when they attach, such as
// GunkSlime or HugeBabyPush.
type AttachHook interface {
	OnAttach(engine *Engine, ownerIdx int)
}

// DetachHook is the inverse of AttachHook, used to tear down any
// modifier an ability installed.
type DetachHook interface {
	OnDetach(engine *Engine, ownerIdx int)
}

// registry is the pub/sub subscription table described in §4.3: a
// fixed-size table indexed by event kind, each slot holding the
// abilities subscribed to that kind (§9 Design Notes).
type registry struct {
	subscribers [numEventKinds][]Ability
}

func newRegistry() *registry {
	return &registry{}
}

// subscribe adds ability to every kind it declares via Triggers.
func (r *registry) subscribe(a Ability) {
	for _, k := range a.Triggers() {
		r.subscribers[k] = append(r.subscribers[k], a)
	}
}

// unsubscribeAll removes every subscription owned by racerIdx, used
// when an ability detaches (e.g. Copycat re-aliasing).
func (r *registry) unsubscribeAll(racerIdx int) {
	for k := range r.subscribers {
		kept := r.subscribers[k][:0]
		for _, a := range r.subscribers[k] {
			if a.OwnerIdx() == racerIdx {
				continue
			}
			kept = append(kept, a)
		}
		r.subscribers[k] = kept
	}
}

// subscriptionOwners reports, per event kind, how many subscriptions
// are active for racerIdx.
func (r *registry) subscriptionOwners(racerIdx int) map[EventKind]int {
	counts := make(map[EventKind]int)
	for k := range r.subscribers {
		for _, a := range r.subscribers[EventKind(k)] {
			if a.OwnerIdx() == racerIdx {
				counts[EventKind(k)]++
			}
		}
	}
	return counts
}
