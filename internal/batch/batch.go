// Package batch runs many independent races across worker goroutines,
// mirroring the parallel Monte Carlo pattern the teacher uses for
// equity estimation: bounded worker count, job indices handed out over
// a channel, workers joined with errgroup. Each job gets its own RNG
// seeded from the job's seed, and its result is stored at the job's
// index.
package batch

import (
	"context"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
	"github.com/lox/magicalathlete/internal/randutil"
	"github.com/lox/magicalathlete/internal/roster"
	"github.com/lox/magicalathlete/internal/telemetry"
)

// maxWorkers caps parallelism for diminishing-returns reasons, same as
// the teacher's equity estimator.
const maxWorkers = 8

// Job describes one race run.
type Job struct {
	Seed     int64
	Racers   []ids.RacerName
	Board    ids.BoardName
	Rules    race.Rules
	MaxTurns int
}

// Result is one race's outcome.
type Result struct {
	Seed     int64
	Aborted  bool
	Turns    int
	Racers   []telemetry.RacerResult
}

// Run executes every job, distributing them across min(maxWorkers,
// runtime.NumCPU(), len(jobs)) goroutines. Returns one Result per job,
// in the same order jobs was given, or the first worker error.
func Run(ctx context.Context, jobs []Job, logger *log.Logger) ([]Result, error) {
	workers := runtime.NumCPU()
	if workers > maxWorkers {
		workers = maxWorkers
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers == 0 {
		return nil, nil
	}

	results := make([]Result, len(jobs))
	jobCh := make(chan int, len(jobs))
	for i := range jobs {
		jobCh <- i
	}
	close(jobCh)

	g, _ := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobCh {
				r, err := runOne(jobs[i], logger)
				if err != nil {
					return err
				}
				results[i] = r
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(job Job, logger *log.Logger) (Result, error) {
	rng := randutil.New(job.Seed)

	eng, err := roster.BuildEngine(job.Racers, job.Board, job.Rules, rng, logger)
	if err != nil {
		return Result{}, err
	}

	metrics := telemetry.NewMetricsAggregator(eng)
	eng.SetObservers(metrics.OnEvent, metrics.OnTurnEnd)

	eng.RunRace(job.MaxTurns)

	return Result{
		Seed:    job.Seed,
		Aborted: eng.State().Aborted,
		Turns:   eng.State().TurnIndex,
		Racers:  metrics.Finalize(),
	}, nil
}
