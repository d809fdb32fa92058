package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/homefin/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a household financial summary" }
func (*summaryCmd) Usage() string {
	return `fin summary [-d <date>]

  Displays a one-page summary: net worth, estimated monthly bills, what is
  due this week, and every balance.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for the report (defaults to today)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.SummaryMarkdown(renderer.NewSummary(book, on)))
	return subcommands.ExitSuccess
}
