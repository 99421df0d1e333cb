package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/magicalathlete/internal/config"
	"github.com/lox/magicalathlete/internal/randutil"
	"github.com/lox/magicalathlete/internal/roster"
	"github.com/lox/magicalathlete/internal/telemetry"
)

// RunCmd simulates a single race and prints a per-racer summary.
type RunCmd struct {
	Config   string `kong:"help='HCL race config file (optional; a built-in default is used if absent)'"`
	Seed     int64  `kong:"help='Override the config seed (0 keeps the config value)'"`
	MaxTurns int    `kong:"help='Override the config max_turns (0 keeps the config value)'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *RunCmd) Run() error {
	logger := newLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	seed := cfg.Race.Seed
	if c.Seed != 0 {
		seed = c.Seed
	}
	maxTurns := cfg.Race.MaxTurns
	if c.MaxTurns != 0 {
		maxTurns = c.MaxTurns
	}

	board, err := cfg.BoardName()
	if err != nil {
		return err
	}
	names, err := cfg.RacerNames()
	if err != nil {
		return err
	}

	rng := randutil.New(seed)
	eng, err := roster.BuildEngine(names, board, cfg.Rules(), rng, logger)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	metrics := telemetry.NewMetricsAggregator(eng)
	eng.SetObservers(metrics.OnEvent, metrics.OnTurnEnd)

	eng.RunRace(maxTurns)

	state := eng.State()
	logger.Info("race finished", "turns", state.TurnIndex, "aborted", state.Aborted, "state_hash", state.StateHash())
	for _, r := range metrics.Finalize() {
		logger.Info("racer result",
			"idx", r.Idx,
			"name", r.Name.String(),
			"finish_position", r.FinishPosition,
			"victory_points", r.VictoryPoints,
			"turns_taken", r.TurnsTaken,
			"trip_recoveries", r.TripRecoveries,
			"dice_rolled", r.DiceRolled,
		)
	}

	return nil
}

func newLogger(debug bool) *log.Logger {
	opts := log.Options{Level: log.InfoLevel}
	if debug {
		opts.Level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, opts)
}
