package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/homefin"
	"github.com/etnz/homefin/date"
	"github.com/google/subcommands"
)

type addDeadlineCmd struct {
	due string
}

func (*addDeadlineCmd) Name() string     { return "add-deadline" }
func (*addDeadlineCmd) Synopsis() string { return "add a one-off deadline to the book" }
func (*addDeadlineCmd) Usage() string {
	return `fin add-deadline -due <date> <title>

  Adds a one-off deadline:
  - title: What has to happen (e.g., "Passport Renewal").
  - due: When it is due; an ISO date or a phrase like "next friday".
`
}

func (c *addDeadlineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.due, "due", "", "Due date (required)")
}

func (c *addDeadlineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	title := strings.Join(f.Args(), " ")
	if title == "" || c.due == "" {
		fmt.Fprintln(os.Stderr, "Error: a title and the -due flag are required.")
		return subcommands.ExitUsageError
	}
	due, err := parseDate(c.due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	res, err := homefin.Execute(book, homefin.NewCreateDeadline(title, due, date.Today()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return AppendRecord(res.Record)
}
