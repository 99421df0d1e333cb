package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build.
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Run     RunCmd           `cmd:"" help:"Simulate a single race"`
	Batch   BatchCmd         `cmd:"" help:"Simulate many races in parallel across seeds"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("race"),
		kong.Description("Deterministic event-driven racing board game simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
