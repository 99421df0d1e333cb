package race

// RollQuery is the in-flight dice-roll record passed through every
// registered roll modifier during the pipeline in §4.5. RacerIdx is the
// racer whose turn it is; BaseValue is the raw die result. Modifiers
// append signed deltas, or call Reroll to resample the base value
// entirely (used by MagicalReroll).
type RollQuery struct {
	RacerIdx  int
	BaseValue int
	Deltas    []int
	rerolled  bool
}

// FinalValue sums the base value and every recorded delta, clamped to
// zero, matching the pipeline's step 4.
func (q *RollQuery) FinalValue() int {
	total := q.BaseValue
	for _, d := range q.Deltas {
		total += d
	}
	if total < 0 {
		return 0
	}
	return total
}

// AddDelta appends a signed modifier to the query.
func (q *RollQuery) AddDelta(d int) { q.Deltas = append(q.Deltas, d) }

// Reroll resamples BaseValue from engine's PRNG once per query; it is a
// no-op on a second call within the same query, so a modifier may call
// it unconditionally.
func (q *RollQuery) Reroll(engine *Engine) {
	if q.rerolled {
		return
	}
	q.rerolled = true
	q.BaseValue = 1 + int(engine.rng.IntN(6))
}
