package interp

import (
	"errors"
	"testing"
	"time"

	"github.com/etnz/homefin/date"
)

// monday anchors every relative date in the tests.
var monday = date.New(2026, time.March, 2)

func TestNormalizeAmounts(t *testing.T) {
	testCases := []struct {
		in    string
		cents int64
	}{
		{"$142", 14200},
		{"$142.30", 14230},
		{"142.5", 14250},
		{"142.00", 14200},
		{"$1,234.56", 123456},
		{"142 dollars", 14200},
		{"1 dollar", 100},
		{"14200 cents", 14200},
	}
	for _, tc := range testCases {
		tokens, err := Normalize("electric "+tc.in, monday)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", tc.in, err)
		}
		var got *Token
		for i := range tokens {
			if tokens[i].Kind == Amount {
				got = &tokens[i]
				break
			}
		}
		if got == nil {
			t.Errorf("Normalize(%q): no amount token in %v", tc.in, tokens)
			continue
		}
		if got.Cents != tc.cents {
			t.Errorf("Normalize(%q) = %d cents, want %d", tc.in, got.Cents, tc.cents)
		}
	}
}

func TestNormalizeInvalidAmounts(t *testing.T) {
	for _, in := range []string{"$abc", "-5.00", "$-5", "142.555", "5.5 cents"} {
		tokens, err := Normalize("bill "+in, monday)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", in, err)
		}
		found := false
		for _, tok := range tokens {
			if tok.Kind == AmountInvalid {
				found = true
			}
			if tok.Kind == Amount {
				t.Errorf("Normalize(%q) produced a valid amount token %v", in, tok)
			}
		}
		if !found {
			// Invalid magnitudes are surfaced, never silently dropped.
			t.Errorf("Normalize(%q): no amount-invalid token in %v", in, tokens)
		}
	}
}

func TestNormalizeDates(t *testing.T) {
	testCases := []struct {
		in   string
		want date.Date
	}{
		{"due tomorrow", date.New(2026, time.March, 3)},
		{"due march 15", date.New(2026, time.March, 15)},
		{"due next friday", date.New(2026, time.March, 6)},
		{"due on the 5th", date.New(2026, time.March, 5)},
		{"due 3/15", date.New(2026, time.March, 15)},
	}
	for _, tc := range testCases {
		tokens, err := Normalize(tc.in, monday)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", tc.in, err)
		}
		var got *Token
		for i := range tokens {
			if tokens[i].Kind == DateTok {
				got = &tokens[i]
				break
			}
		}
		if got == nil {
			t.Fatalf("Normalize(%q): no date token in %v", tc.in, tokens)
		}
		if got.Date != tc.want {
			t.Errorf("Normalize(%q) = %s, want %s", tc.in, got.Date, tc.want)
		}
	}
}

func TestNormalizeDateDoesNotLeakDay(t *testing.T) {
	// "march 15" must consume the 15, not leave it behind as a number.
	tokens, err := Normalize("rent due march 15", monday)
	if err != nil {
		t.Fatal(err)
	}
	for _, tok := range tokens {
		if tok.Kind == Amount || tok.Kind == AmountInvalid {
			t.Errorf("day of month leaked into amount token %v", tok)
		}
	}
}

func TestNormalizeQuestionMark(t *testing.T) {
	tokens, err := Normalize("what bills are due?", monday)
	if err != nil {
		t.Fatal(err)
	}
	last := tokens[len(tokens)-1]
	if last.Kind != Punct || last.Text != "?" {
		t.Errorf("trailing ? = %v, want a punctuation token", last)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n", "..."} {
		if _, err := Normalize(in, monday); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Normalize(%q) err = %v, want ErrEmptyInput", in, err)
		}
	}
}

func TestNormalizeCaseFolding(t *testing.T) {
	tokens, err := Normalize("PAID Electric BILL", monday)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"paid", "electric", "bill"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Kind != Word || tokens[i].Text != w {
			t.Errorf("token %d = %v, want word %q", i, tokens[i], w)
		}
	}
}
