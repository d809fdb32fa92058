package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/homefin"
	"github.com/google/subcommands"
)

type addAccountCmd struct {
	name    string
	typ     string
	balance string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "add a bank account to the book" }
func (*addAccountCmd) Usage() string {
	return `fin add-account -name <name> [-type <type>] [-balance <amount>]

  Adds a bank account:
  - name: The account's name (e.g., "Checking"). Must be unique among accounts.
  - type: Free-form account type (e.g., "checking", "savings").
  - balance: Current balance.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name (required)")
	f.StringVar(&c.typ, "type", "checking", "Account type")
	f.StringVar(&c.balance, "balance", "0", "Current balance")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name flag is required.")
		return subcommands.ExitUsageError
	}
	balance, err := parseMoney(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	if book.FindByName(homefin.KindAccount, c.name) != nil {
		fmt.Fprintf(os.Stderr, "Error: account %q already exists in the book.\n", c.name)
		return subcommands.ExitFailure
	}
	return AppendRecord(homefin.NewAccount(c.name, c.typ, balance))
}
