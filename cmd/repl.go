package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type replCmd struct {
	date string
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "interpret sentences interactively" }
func (*replCmd) Usage() string {
	return `fin repl [-d <date>]

  Starts an interactive loop reading one sentence per line, interpreting each
  one the way 'fin ask' does. Type 'bye' or press Ctrl-D to exit.
`
}

func (c *replCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for relative phrases (defaults to today)")
}

func (c *replCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Println("Type a sentence, 'bye' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("fin> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "bye" || line == "exit" || line == "quit" {
			break
		}
		// Reload each turn so an executed action is visible to the next one,
		// and so external edits to the book file are picked up too.
		book, err := DecodeBookFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
			return subcommands.ExitFailure
		}
		runLine(book, line, now, false)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("bye")
	return subcommands.ExitSuccess
}
