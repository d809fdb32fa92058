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

type addActivityCmd struct {
	child string
	cost  string
}

func (*addActivityCmd) Name() string     { return "add-activity" }
func (*addActivityCmd) Synopsis() string { return "add a recurring kid activity to the book" }
func (*addActivityCmd) Usage() string {
	return `fin add-activity [-child <name>] [-cost <amount>] <name>

  Adds a recurring activity:
  - name: The activity's name (e.g., "Hockey Practice").
  - child: Which child it belongs to.
  - cost: Recurring cost, if any.
`
}

func (c *addActivityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.child, "child", "", "Child the activity belongs to")
	f.StringVar(&c.cost, "cost", "0", "Recurring cost")
}

func (c *addActivityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.Join(f.Args(), " ")
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: an activity name is required.")
		return subcommands.ExitUsageError
	}
	cost, err := parseMoney(c.cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	res, err := homefin.Execute(book, homefin.NewCreateActivity(name, c.child, cost, date.Today()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return AppendRecord(res.Record)
}
