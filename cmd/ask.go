package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/homefin"
	"github.com/etnz/homefin/date"
	"github.com/etnz/homefin/interp"
	"github.com/etnz/homefin/renderer"
	"github.com/google/subcommands"
)

type askCmd struct {
	date   string
	dryRun bool
}

func (*askCmd) Name() string     { return "ask" }
func (*askCmd) Synopsis() string { return "interpret one plain-English sentence" }
func (*askCmd) Usage() string {
	return `fin ask [-d <date>] [-n] <sentence>

  Interprets a single plain-English sentence against the book. An action
  ("paid electric bill $142") is executed and saved; a question ("what bills
  are due this week?") prints a report. When the interpreter is unsure it
  asks a narrow follow-up question instead of guessing.

Usage Examples:
$ fin ask paid electric bill \$142
$ fin ask what bills are due this week?
`
}

func (c *askCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for relative phrases like 'tomorrow' (defaults to today)")
	f.BoolVar(&c.dryRun, "n", false, "Interpret and report, but do not save anything")
}

func (c *askCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text := strings.Join(f.Args(), " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "Error: a sentence to interpret is required.")
		return subcommands.ExitUsageError
	}
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
	return runLine(book, text, now, c.dryRun)
}

// runLine interprets one sentence against the book and handles every
// outcome. It is shared by the ask and repl commands.
func runLine(book *homefin.Book, text string, now date.Date, dryRun bool) subcommands.ExitStatus {
	r, err := interp.New(book).Interpret(text, now)
	if err != nil {
		var unrecognized *interp.UnrecognizedQueryError
		if errors.As(err, &unrecognized) {
			fmt.Println("I could not map that question to a known report. Try 'fin assist' for free-form questions.")
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch r.Outcome {
	case interp.OutConfidentAction:
		res, err := homefin.Execute(book, r.Command)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if dryRun {
			fmt.Println(res.Message)
			fmt.Println("(dry run, nothing saved)")
			return subcommands.ExitSuccess
		}
		if err := EncodeBookFile(book); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(res.Message)
		return subcommands.ExitSuccess

	case interp.OutConfidentQuestion:
		printMarkdown(renderAnswer(interp.Ask(book, *r.Query)))
		return subcommands.ExitSuccess

	case interp.OutNeedsClarification:
		// A clarification is a normal outcome, not a failure.
		fmt.Println(r.Clarification.Prompt)
		return subcommands.ExitSuccess

	default:
		fmt.Println("Sorry, I did not understand that. See 'fin topic interpreter' for examples.")
		return subcommands.ExitFailure
	}
}

// renderAnswer picks the report matching the answer's category.
func renderAnswer(a interp.Answer) string {
	switch a.Category {
	case interp.CatDueSoon:
		return renderer.DueMarkdown(a.Window, a.Due, a.OverdueDue)
	case interp.CatBalance:
		return renderer.BalancesMarkdown(a.Balances)
	case interp.CatNetWorth:
		return renderer.NetWorthMarkdown(a.NetWorth)
	case interp.CatSchedule:
		return renderer.ScheduleMarkdown(a.Window, a.Activities, a.Due)
	}
	return ""
}
