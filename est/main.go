package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/estimate/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion. Only acts when invoked through the shell completion
	// hook, otherwise it is a no-op.
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"estimate-file": nil,
			"currency":      nil,
		},
		Sub: map[string]*complete.Command{
			"show":   {Flags: map[string]complete.Predictor{"url": nil, "fallback": nil, "title": nil}},
			"total":  {Flags: map[string]complete.Predictor{"raw": nil}},
			"set":    {Flags: map[string]complete.Predictor{"s": nil, "i": nil, "qty": nil, "cost": nil}},
			"fetch":  {Flags: map[string]complete.Predictor{"url": nil, "fallback": nil, "o": nil}},
			"topic":  {},
			"assist": {Flags: map[string]complete.Predictor{"model": nil}},
		},
	}
	completion.Complete("est")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
