// Package race implements a deterministic, single-threaded event-driven
// simulator for a turn-based racing board game.
//
// # Basic usage
//
// Constructing an Engine directly means assembling a Board and an
// AbilityFactory by hand; most callers instead go through
// internal/roster, which wires the name-to-constructor registries this
// package only defines interfaces for:
//
//	rng := randutil.New(42)
//	eng, err := roster.BuildEngine(
//	    []ids.RacerName{ids.Centaur, ids.Banana, ids.Magician},
//	    ids.StandardBoard, race.DefaultRules(), rng, nil)
//	if err != nil {
//	    // unknown racer, ability, or board name, fails fast
//	}
//	eng.RunRace(200) // max turns
//	hash := eng.State().StateHash()
//
// # Determinism
//
// Given identical construction inputs and PRNG seed, two Engines produce
// byte-identical event traces and StateHash values after every dispatch.
// The engine owns its own PRNG handle and never reads process-wide
// randomness; embedders running many seeds in parallel must give each
// worker its own Engine and *rand.Rand.
//
// # Architecture
//
// Engine ties together:
//   - GameState: racers, board, roll state, rules, current-racer cursor
//   - scheduler: a priority queue ordering reactions by (phase, reactor
//     distance, serial)
//   - registry: pub/sub subscriptions keyed by event kind
//   - loop detection: a four-layer guard bounding reaction chains
//   - the turn driver: Idle/Recovering/Acting/Advance state transitions
//
// Concrete ability and modifier behaviors live in a downstream package
// and are wired into an Engine via a name-to-constructor roster; this
// package only defines the interfaces they implement.
package race
