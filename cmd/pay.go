package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/homefin"
	"github.com/google/subcommands"
)

type payCmd struct {
	amount string
	date   string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment against a bill or a card" }
func (*payCmd) Usage() string {
	return `fin pay [-amount <amount>] [-d <date>] <name>

  Records a payment. The name is looked up among bills first, then cards:
  - a bill payment defaults to the bill's usual amount;
  - a card payment requires -amount and reduces the card's balance.

Usage Examples:
$ fin pay Electric
$ fin pay -amount 500 Visa
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount paid (defaults to the bill's usual amount)")
	f.StringVar(&c.date, "d", "", "Payment date (defaults to today)")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.Join(f.Args(), " ")
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: the name of a bill or card is required.")
		return subcommands.ExitUsageError
	}
	var amount homefin.Money
	if c.amount != "" {
		var err error
		if amount, err = parseMoney(c.amount); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	var cmd homefin.Command
	if rec := book.FindByName(homefin.KindBill, name); rec != nil {
		cmd = homefin.NewPayBill(rec.Ref(), amount, on)
	} else if rec := book.FindByName(homefin.KindCard, name); rec != nil {
		cmd = homefin.NewPayCard(rec.Ref(), amount, on)
	} else {
		fmt.Fprintf(os.Stderr, "Error: no bill or card named %q in the book.\n", name)
		return subcommands.ExitFailure
	}

	res, err := homefin.Execute(book, cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeBookFile(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(res.Message)
	return subcommands.ExitSuccess
}
