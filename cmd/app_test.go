package cmd

import (
	"path/filepath"
	"testing"

	"github.com/etnz/homefin"
	"github.com/etnz/homefin/date"
	"github.com/google/subcommands"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
	}{
		{"142", 14200},
		{"142.50", 14250},
		{"$1,234.56", 123456},
		{" $80 ", 8000},
	}
	for _, c := range cases {
		m, err := parseMoney(c.in)
		if err != nil {
			t.Fatalf("parseMoney(%q): %v", c.in, err)
		}
		if m.AsCents() != c.cents {
			t.Errorf("parseMoney(%q) = %d cents, want %d", c.in, m.AsCents(), c.cents)
		}
	}
	for _, bad := range []string{"", "abc", "-5", "$-5"} {
		if _, err := parseMoney(bad); err == nil {
			t.Errorf("parseMoney(%q): expected an error", bad)
		}
	}
}

func TestParseDate(t *testing.T) {
	if d, err := parseDate(""); err != nil || d != date.Today() {
		t.Errorf("parseDate(\"\") = %v, %v, want today", d, err)
	}
	d, err := parseDate("2026-03-02")
	if err != nil {
		t.Fatal(err)
	}
	if want := date.New(2026, 3, 2); d != want {
		t.Errorf("parseDate(2026-03-02) = %v, want %v", d, want)
	}
	if _, err := parseDate("garbage"); err == nil {
		t.Error("parseDate(garbage): expected an error")
	}
}

func TestBookFileRoundTrip(t *testing.T) {
	old := *bookFile
	*bookFile = filepath.Join(t.TempDir(), "book.jsonl")
	defer func() { *bookFile = old }()

	// A missing file decodes to an empty book.
	book, err := DecodeBookFile()
	if err != nil {
		t.Fatal(err)
	}
	if book.Len() != 0 {
		t.Fatalf("expected an empty book, got %d records", book.Len())
	}

	bill := homefin.NewBill("Electric", homefin.Cents(14200), 15, date.Monthly)
	if status := AppendRecord(bill); status != subcommands.ExitSuccess {
		t.Fatalf("AppendRecord failed with status %v", status)
	}

	book, err = DecodeBookFile()
	if err != nil {
		t.Fatal(err)
	}
	if book.Len() != 1 {
		t.Fatalf("expected 1 record after append, got %d", book.Len())
	}
	if book.FindByName(homefin.KindBill, "Electric") == nil {
		t.Error("appended bill not found by name")
	}

	// A canonical rewrite keeps the book identical.
	if err := EncodeBookFile(book); err != nil {
		t.Fatal(err)
	}
	again, err := DecodeBookFile()
	if err != nil {
		t.Fatal(err)
	}
	if again.Len() != 1 {
		t.Errorf("expected 1 record after rewrite, got %d", again.Len())
	}
}
