package main

import (
	"fmt"

	"github.com/lox/magicalathlete/internal/batch"
	"github.com/lox/magicalathlete/internal/config"
)

// BatchCmd simulates many independent races, one per seed, in parallel.
type BatchCmd struct {
	Config    string `kong:"help='HCL race config file (optional; a built-in default is used if absent)'"`
	Seeds     int    `kong:"default='100',help='Number of seeds to run, starting at --first-seed'"`
	FirstSeed int64  `kong:"default='1',help='First seed in the run'"`
	MaxTurns  int    `kong:"help='Override the config max_turns (0 keeps the config value)'"`
	Debug     bool   `kong:"help='Enable debug logging'"`
}

func (c *BatchCmd) Run() error {
	logger := newLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	board, err := cfg.BoardName()
	if err != nil {
		return err
	}
	names, err := cfg.RacerNames()
	if err != nil {
		return err
	}
	maxTurns := cfg.Race.MaxTurns
	if c.MaxTurns != 0 {
		maxTurns = c.MaxTurns
	}

	jobs := make([]batch.Job, c.Seeds)
	for i := range jobs {
		jobs[i] = batch.Job{
			Seed:     c.FirstSeed + int64(i),
			Racers:   names,
			Board:    board,
			Rules:    cfg.Rules(),
			MaxTurns: maxTurns,
		}
	}

	ctx := setupSignalHandler()
	results, err := batch.Run(ctx, jobs, logger)
	if err != nil {
		return fmt.Errorf("batch run: %w", err)
	}

	finishes := make(map[string]int)
	aborted := 0
	for _, r := range results {
		if r.Aborted {
			aborted++
		}
		for _, rr := range r.Racers {
			if rr.FinishPosition == 1 {
				finishes[rr.Name.String()]++
			}
		}
	}

	logger.Info("batch finished", "races", len(results), "aborted", aborted)
	for name, wins := range finishes {
		logger.Info("win tally", "racer", name, "wins", wins)
	}

	return nil
}
