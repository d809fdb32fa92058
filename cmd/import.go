package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/homefin"
	"github.com/google/subcommands"
)

type importCmd struct {
	rulesFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import account balances from a bank export file" }
func (*importCmd) Usage() string {
	return `fin import -rules <rules.json> <export.json>

  Reads a JSON bank export and updates account balances in the book. The
  rules file maps each account name to a jsonpath expression locating its
  balance in the export, see 'fin topic import'.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rulesFile, "rules", "", "Path to the import rules file (required)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.rulesFile == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: the -rules flag and one export file are required.")
		return subcommands.ExitUsageError
	}

	rulesData, err := os.ReadFile(c.rulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading rules file: %v\n", err)
		return subcommands.ExitFailure
	}
	var rules []homefin.ImportRule
	if err := json.Unmarshal(rulesData, &rules); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing rules file %q: %v\n", c.rulesFile, err)
		return subcommands.ExitFailure
	}

	export, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer export.Close()

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	updated, err := book.ImportBalances(export, rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing balances: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeBookFile(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Successfully updated %d account balances.\n", updated)
	return subcommands.ExitSuccess
}
