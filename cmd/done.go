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

type doneCmd struct {
	date string
}

func (*doneCmd) Name() string     { return "done" }
func (*doneCmd) Synopsis() string { return "mark a deadline as completed" }
func (*doneCmd) Usage() string {
	return `fin done [-d <date>] <title>

  Marks the named deadline as completed. A completed deadline stops showing
  up in due and overdue reports.
`
}

func (c *doneCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Completion date (defaults to today)")
}

func (c *doneCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	title := strings.Join(f.Args(), " ")
	if title == "" {
		fmt.Fprintln(os.Stderr, "Error: the title of a deadline is required.")
		return subcommands.ExitUsageError
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
	rec := book.FindByName(homefin.KindDeadline, title)
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: no deadline titled %q in the book.\n", title)
		return subcommands.ExitFailure
	}

	res, err := homefin.Execute(book, homefin.NewCompleteDeadline(rec.Ref(), on))
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
