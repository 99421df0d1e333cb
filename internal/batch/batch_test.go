package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

func standardJob(seed int64) Job {
	return Job{
		Seed:     seed,
		Racers:   []ids.RacerName{ids.Centaur, ids.Banana, ids.Scoocher},
		Board:    ids.StandardBoard,
		Rules:    race.DefaultRules(),
		MaxTurns: 200,
	}
}

func TestRunExecutesEveryJobAndPreservesOrder(t *testing.T) {
	jobs := []Job{standardJob(1), standardJob(2), standardJob(3)}
	results, err := Run(context.Background(), jobs, nil)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	for i, r := range results {
		assert.Equal(t, jobs[i].Seed, r.Seed, "result %d should match its job's seed", i)
		assert.NotEmpty(t, r.Racers)
	}
}

func TestRunIsDeterministicForAGivenSeed(t *testing.T) {
	jobs := []Job{standardJob(42)}
	first, err := Run(context.Background(), jobs, nil)
	require.NoError(t, err)
	second, err := Run(context.Background(), jobs, nil)
	require.NoError(t, err)

	assert.Equal(t, first[0].Turns, second[0].Turns)
	assert.Equal(t, first[0].Aborted, second[0].Aborted)
	assert.Equal(t, first[0].Racers, second[0].Racers)
}

func TestRunPropagatesAJobConstructionError(t *testing.T) {
	jobs := []Job{standardJob(1), {Seed: 2, Racers: []ids.RacerName{ids.Skipper}, Board: ids.StandardBoard, Rules: race.DefaultRules()}}
	_, err := Run(context.Background(), jobs, nil)
	assert.ErrorIs(t, err, race.ErrUnknownRacer)
}

func TestRunWithNoJobsReturnsEmptyResults(t *testing.T) {
	results, err := Run(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunRespectsMaxTurnsByAborting(t *testing.T) {
	job := standardJob(1)
	job.MaxTurns = 1
	results, err := Run(context.Background(), []Job{job}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Aborted)
	assert.Equal(t, 1, results[0].Turns)
}
