package race

import "errors"

// ErrUnknownRacer and ErrUnknownAbility are construction-time errors:
// the caller asked for a name the engine has no constructor for. Per
// §7 these fail fast rather than silently skipping the racer/ability.
var (
	ErrUnknownRacer   = errors.New("race: unknown racer name")
	ErrUnknownAbility = errors.New("race: unknown ability name")
	ErrEmptyRoster    = errors.New("race: roster must have at least one racer")
	ErrInvariant      = errors.New("race: invariant violation")
)
