package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/homefin/renderer"
	"github.com/google/subcommands"
)

type networthCmd struct{}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "display the household net worth" }
func (*networthCmd) Usage() string {
	return `fin networth

  Displays the household net worth: accounts and investments minus card and
  mortgage balances.
`
}

func (*networthCmd) SetFlags(f *flag.FlagSet) {}

func (c *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.NetWorthMarkdown(book.NetWorth()))
	return subcommands.ExitSuccess
}
