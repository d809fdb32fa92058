// Package cmd implements the CLI application to manage household finances.
package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/etnz/homefin"
	"github.com/etnz/homefin/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&askCmd{}, "interpreter")
	c.Register(&replCmd{}, "interpreter")
	c.Register(&assistCmd{}, "interpreter")

	c.Register(&addBillCmd{}, "records")
	c.Register(&addAccountCmd{}, "records")
	c.Register(&addCardCmd{}, "records")
	c.Register(&addMortgageCmd{}, "records")
	c.Register(&addInvestmentCmd{}, "records")
	c.Register(&addDeadlineCmd{}, "records")
	c.Register(&addActivityCmd{}, "records")
	c.Register(&listCmd{}, "records")
	c.Register(&fmtCmd{}, "records")
	c.Register(&importCmd{}, "records")

	c.Register(&payCmd{}, "actions")
	c.Register(&doneCmd{}, "actions")

	c.Register(&dueCmd{}, "reports")
	c.Register(&balancesCmd{}, "reports")
	c.Register(&networthCmd{}, "reports")
	c.Register(&scheduleCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "homefin.jsonl", "Path to the book file containing records (JSONL format)")

// DecodeBookFile decodes the book from the app default book file.
func DecodeBookFile() (*homefin.Book, error) {
	f, err := os.Open(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, book file does not exist, starting from an empty book instead")
		return homefin.NewBook(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return homefin.DecodeBook(f)
}

// EncodeBookFile rewrites the whole book file in canonical form. Commands
// that mutate an existing record go through here, a plain append would leave
// the stale line in place.
func EncodeBookFile(book *homefin.Book) error {
	var buf bytes.Buffer
	if err := homefin.EncodeBook(&buf, book); err != nil {
		return err
	}
	return os.WriteFile(*bookFile, buf.Bytes(), 0644)
}

// AppendRecord appends a single new record to the app default book file.
func AppendRecord(rec homefin.Record) subcommands.ExitStatus {
	filename := *bookFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := homefin.EncodeRecord(f, rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to book file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %s %q to %s\n", rec.What(), rec.Label(), filename)
	return subcommands.ExitSuccess
}

// parseMoney reads an amount like "142", "142.50" or "$1,234.56" into the
// default currency.
func parseMoney(s string) (homefin.Money, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return homefin.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return homefin.Money{}, fmt.Errorf("amount %q must not be negative", s)
	}
	return homefin.M(d, homefin.DefaultCurrency), nil
}

// parseDate reads a -d flag value, empty means today. Relative phrases like
// "tomorrow" or "next friday" resolve against today.
func parseDate(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	if d, err := date.Parse(s); err == nil {
		return d, nil
	}
	if d, ok := date.Resolve(strings.ToLower(s), date.Today()); ok {
		return d, nil
	}
	return date.Date{}, fmt.Errorf("invalid date %q", s)
}
