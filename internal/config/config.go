// Package config loads a race's construction parameters from an HCL
// file, in the same decode-then-apply-defaults style the teacher uses
// for its server configuration.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/magicalathlete/internal/ids"
	"github.com/lox/magicalathlete/internal/race"
)

// RaceConfig is the complete top-level shape of a race definition file.
type RaceConfig struct {
	Race       RaceSettings   `hcl:"race,block"`
	RulesBlock *RulesSettings `hcl:"rules,block"`
}

// RaceSettings names the racers, board, seed, and turn cap.
type RaceSettings struct {
	Board    string   `hcl:"board,optional"`
	Racers   []string `hcl:"racers"`
	Seed     int64    `hcl:"seed,optional"`
	MaxTurns int      `hcl:"max_turns,optional"`
}

// RulesSettings overrides DefaultRules field by field; a nil *RulesSettings
// in RaceConfig means "use DefaultRules() unmodified".
type RulesSettings struct {
	TimingMode                        string `hcl:"timing_mode,optional"`
	CountZeroMovesForAbilityTriggered bool   `hcl:"count_zero_moves_for_ability_triggered,optional"`
	FinishTriggerCount                int    `hcl:"finish_trigger_count,optional"`
	MaxPositionalRepeats              int    `hcl:"max_positional_repeats,optional"`
	EventWindowSize                   int    `hcl:"event_window_size,optional"`
	MaxEventFrequency                 int    `hcl:"max_event_frequency,optional"`
	MaxDepth                          int    `hcl:"max_depth,optional"`
}

// DefaultRaceConfig returns a config for the standard board with a
// fixed two-racer roster, used when no file is given.
func DefaultRaceConfig() *RaceConfig {
	return &RaceConfig{
		Race: RaceSettings{
			Board:    "standard",
			Racers:   []string{"Centaur", "Banana"},
			Seed:     1,
			MaxTurns: 0,
		},
	}
}

// Load reads and decodes filename, defaulting a blank board to
// "standard"; other fields left out keep their zero value. A missing
// file is not an error: it yields DefaultRaceConfig().
func Load(filename string) (*RaceConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultRaceConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}

	var cfg RaceConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", filename, diags.Error())
	}

	if cfg.Race.Board == "" {
		cfg.Race.Board = "standard"
	}
	if len(cfg.Race.Racers) == 0 {
		return nil, fmt.Errorf("race config %s: at least one racer required", filename)
	}
	if cfg.RulesBlock != nil && cfg.RulesBlock.FinishTriggerCount > len(cfg.Race.Racers) {
		return nil, fmt.Errorf("race config %s: finish_trigger_count exceeds racer count", filename)
	}

	return &cfg, nil
}

// BoardName resolves the configured board string to an ids.BoardName.
func (c *RaceConfig) BoardName() (ids.BoardName, error) {
	switch c.Race.Board {
	case "standard":
		return ids.StandardBoard, nil
	case "sprint":
		return ids.SprintBoard, nil
	default:
		return ids.UnknownBoard, fmt.Errorf("unknown board %q", c.Race.Board)
	}
}

// RacerNames resolves every configured racer string to an ids.RacerName.
func (c *RaceConfig) RacerNames() ([]ids.RacerName, error) {
	out := make([]ids.RacerName, 0, len(c.Race.Racers))
	for _, s := range c.Race.Racers {
		n, err := racerNameByString(s)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Rules materializes the configured rule overrides on top of
// DefaultRules(), or DefaultRules() itself when no rules block was
// given.
func (c *RaceConfig) Rules() race.Rules {
	rules := race.DefaultRules()
	if c.RulesBlock == nil {
		return rules
	}
	r := c.RulesBlock
	if r.TimingMode == "dfs" {
		rules.TimingMode = race.DFS
	}
	rules.CountZeroMovesForAbilityTriggered = r.CountZeroMovesForAbilityTriggered
	if r.FinishTriggerCount > 0 {
		rules.FinishTriggerCount = r.FinishTriggerCount
	}
	if r.MaxPositionalRepeats > 0 {
		rules.MaxPositionalRepeats = r.MaxPositionalRepeats
	}
	if r.EventWindowSize > 0 {
		rules.EventWindowSize = r.EventWindowSize
	}
	if r.MaxEventFrequency > 0 {
		rules.MaxEventFrequency = r.MaxEventFrequency
	}
	if r.MaxDepth > 0 {
		rules.MaxDepth = r.MaxDepth
	}
	return rules
}

func racerNameByString(s string) (ids.RacerName, error) {
	for n := ids.Centaur; n <= ids.Magician; n++ {
		if n.String() == s {
			return n, nil
		}
	}
	return ids.UnknownRacer, fmt.Errorf("unknown racer %q", s)
}
