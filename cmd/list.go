package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/homefin"
	"github.com/etnz/homefin/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list records of one kind" }
func (*listCmd) Usage() string {
	return `fin list <kind>

  Lists every record of the given kind. Kinds: bill, account, card, mortgage,
  investment, deadline, activity, payment.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one record kind is required.")
		return subcommands.ExitUsageError
	}
	// Accept the plural too, "fin list bills" reads better.
	kind, err := homefin.ParseKind(strings.TrimSuffix(f.Arg(0), "s"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	var records []homefin.Record
	for _, rec := range book.Records() {
		if rec.What() == kind {
			records = append(records, rec)
		}
	}
	printMarkdown(renderer.RecordsMarkdown(kind, records))
	return subcommands.ExitSuccess
}
