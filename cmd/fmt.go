package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the book file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fin fmt

  Validates and formats the book file. This command reads every record,
  validates it, and writes the book back in a canonical JSONL format with one
  line per record and stable field order.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}
	if book.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no records found to format.")
		return subcommands.ExitSuccess
	}
	if err := EncodeBookFile(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %d records.\n", book.Len())
	return subcommands.ExitSuccess
}
