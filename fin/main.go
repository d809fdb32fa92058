package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/homefin/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion for fin. It is a no-op unless the
// shell invoked the binary as a completion helper.
func completion() {
	dated := map[string]complete.Predictor{"d": predict.Nothing}
	kinds := predict.Set{"bills", "accounts", "cards", "mortgages", "investments", "deadlines", "activities", "payments"}
	topics := predict.Set{"readme", "dates", "records", "interpreter", "import", "assist", "*"}

	fin := &complete.Command{
		Flags: map[string]complete.Predictor{
			"book-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"ask":            {Flags: map[string]complete.Predictor{"d": predict.Nothing, "n": predict.Nothing}},
			"repl":           {Flags: dated},
			"assist":         {},
			"add-bill":       {},
			"add-account":    {},
			"add-card":       {},
			"add-mortgage":   {},
			"add-investment": {},
			"add-deadline":   {},
			"add-activity":   {},
			"pay":            {Flags: map[string]complete.Predictor{"amount": predict.Nothing, "d": predict.Nothing}},
			"done":           {Flags: dated},
			"due":            {Flags: dated},
			"balances":       {},
			"networth":       {},
			"schedule":       {Flags: dated},
			"summary":        {Flags: dated},
			"list":           {Args: kinds},
			"fmt":            {},
			"import":         {Flags: map[string]complete.Predictor{"rules": predict.Files("*.json")}, Args: predict.Files("*.json")},
			"topic":          {Args: topics},
		},
	}
	fin.Complete("fin")
}
