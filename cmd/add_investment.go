package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/homefin"
	"github.com/google/subcommands"
)

type addInvestmentCmd struct {
	name  string
	typ   string
	value string
}

func (*addInvestmentCmd) Name() string     { return "add-investment" }
func (*addInvestmentCmd) Synopsis() string { return "add an investment account to the book" }
func (*addInvestmentCmd) Usage() string {
	return `fin add-investment -name <name> [-type <type>] [-value <amount>]

  Adds an investment account:
  - name: The investment's name (e.g., "401k"). Must be unique among investments.
  - type: Free-form kind of investment (e.g., "401k", "brokerage").
  - value: Current market value.
`
}

func (c *addInvestmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Investment name (required)")
	f.StringVar(&c.typ, "type", "", "Kind of investment")
	f.StringVar(&c.value, "value", "0", "Current value")
}

func (c *addInvestmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name flag is required.")
		return subcommands.ExitUsageError
	}
	value, err := parseMoney(c.value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	if book.FindByName(homefin.KindInvestment, c.name) != nil {
		fmt.Fprintf(os.Stderr, "Error: investment %q already exists in the book.\n", c.name)
		return subcommands.ExitFailure
	}
	return AppendRecord(homefin.NewInvestment(c.name, c.typ, value))
}
