package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/homefin"
	"github.com/etnz/homefin/date"
	"github.com/google/subcommands"
)

type addBillCmd struct {
	name      string
	amount    string
	dueDay    int
	frequency string
}

func (*addBillCmd) Name() string     { return "add-bill" }
func (*addBillCmd) Synopsis() string { return "add a recurring bill to the book" }
func (*addBillCmd) Usage() string {
	return `fin add-bill -name <name> -amount <amount> [-due <day>] [-freq <period>]

  Adds a recurring bill:
  - name: The bill's name (e.g., "Electric"). Must be unique among bills.
  - amount: The usual amount (e.g., "142.50").
  - due: Day of the month it is due; 0 means end of month.
  - freq: Recurrence, one of daily, weekly, monthly, quarterly, yearly.
`
}

func (c *addBillCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Bill name (required)")
	f.StringVar(&c.amount, "amount", "", "Usual amount (required)")
	f.IntVar(&c.dueDay, "due", 0, "Due day of the month, 0 for end of month")
	f.StringVar(&c.frequency, "freq", "monthly", "Recurrence period")
}

func (c *addBillCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -amount flags are required.")
		return subcommands.ExitUsageError
	}
	amount, err := parseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	freq, err := date.ParsePeriod(c.frequency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	res, err := homefin.Execute(book, homefin.NewCreateBill(c.name, amount, c.dueDay, freq, date.Today()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return AppendRecord(res.Record)
}
