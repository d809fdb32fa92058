package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/homefin"
	"github.com/google/subcommands"
)

type addMortgageCmd struct {
	name    string
	lender  string
	balance string
	payment string
}

func (*addMortgageCmd) Name() string     { return "add-mortgage" }
func (*addMortgageCmd) Synopsis() string { return "add a mortgage to the book" }
func (*addMortgageCmd) Usage() string {
	return `fin add-mortgage -name <name> [-lender <lender>] [-balance <amount>] [-payment <amount>]

  Adds a mortgage:
  - name: The mortgage's name (e.g., "Home"). Must be unique among mortgages.
  - lender: The lending institution.
  - balance: Remaining principal.
  - payment: Regular monthly payment.
`
}

func (c *addMortgageCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Mortgage name (required)")
	f.StringVar(&c.lender, "lender", "", "Lending institution")
	f.StringVar(&c.balance, "balance", "0", "Remaining principal")
	f.StringVar(&c.payment, "payment", "0", "Monthly payment")
}

func (c *addMortgageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name flag is required.")
		return subcommands.ExitUsageError
	}
	balance, err := parseMoney(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	payment, err := parseMoney(c.payment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	if book.FindByName(homefin.KindMortgage, c.name) != nil {
		fmt.Fprintf(os.Stderr, "Error: mortgage %q already exists in the book.\n", c.name)
		return subcommands.ExitFailure
	}
	return AppendRecord(homefin.NewMortgage(c.name, c.lender, balance, payment))
}
