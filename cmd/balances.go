package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/homefin/renderer"
	"github.com/google/subcommands"
)

type balancesCmd struct{}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "display account and card balances" }
func (*balancesCmd) Usage() string {
	return `fin balances

  Displays the current balance of every bank account and credit card.
`
}

func (*balancesCmd) SetFlags(f *flag.FlagSet) {}

func (c *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BalancesMarkdown(book.Balances()))
	return subcommands.ExitSuccess
}
