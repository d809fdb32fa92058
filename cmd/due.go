package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/homefin/date"
	"github.com/etnz/homefin/renderer"
	"github.com/google/subcommands"
)

type dueCmd struct {
	date string
	days int
}

func (*dueCmd) Name() string     { return "due" }
func (*dueCmd) Synopsis() string { return "display upcoming bills and deadlines" }
func (*dueCmd) Usage() string {
	return `fin due [-d <date>] [-days <n>]

  Displays the bills and deadlines due within the next n days, and anything
  already overdue.
`
}

func (c *dueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for the report (defaults to today)")
	f.IntVar(&c.days, "days", 7, "How many days ahead to look")
}

func (c *dueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	window := date.Range{From: now, To: now.Add(c.days)}
	printMarkdown(renderer.DueMarkdown(window, book.DueWithin(window), book.Overdue(now)))
	return subcommands.ExitSuccess
}
