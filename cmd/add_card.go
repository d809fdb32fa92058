package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/homefin"
	"github.com/google/subcommands"
)

type addCardCmd struct {
	name    string
	balance string
	limit   string
}

func (*addCardCmd) Name() string     { return "add-card" }
func (*addCardCmd) Synopsis() string { return "add a credit card to the book" }
func (*addCardCmd) Usage() string {
	return `fin add-card -name <name> [-balance <amount>] [-limit <amount>]

  Adds a credit card:
  - name: The card's name (e.g., "Visa"). Must be unique among cards.
  - balance: Current outstanding balance.
  - limit: Credit limit.
`
}

func (c *addCardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Card name (required)")
	f.StringVar(&c.balance, "balance", "0", "Current outstanding balance")
	f.StringVar(&c.limit, "limit", "0", "Credit limit")
}

func (c *addCardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name flag is required.")
		return subcommands.ExitUsageError
	}
	balance, err := parseMoney(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	limit, err := parseMoney(c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	if book.FindByName(homefin.KindCard, c.name) != nil {
		fmt.Fprintf(os.Stderr, "Error: card %q already exists in the book.\n", c.name)
		return subcommands.ExitFailure
	}
	return AppendRecord(homefin.NewCard(c.name, balance, limit))
}
