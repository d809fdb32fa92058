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

type scheduleCmd struct {
	date string
	days int
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "display family activities and upcoming obligations" }
func (*scheduleCmd) Usage() string {
	return `fin schedule [-d <date>] [-days <n>]

  Displays the recurring family activities along with the bills and deadlines
  due within the next n days.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for the report (defaults to today)")
	f.IntVar(&c.days, "days", 14, "How many days ahead to look")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.ScheduleMarkdown(window, book.Activities(), book.DueWithin(window)))
	return subcommands.ExitSuccess
}
