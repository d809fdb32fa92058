package interp

import (
	"testing"
	"time"

	"github.com/etnz/homefin"
	"github.com/etnz/homefin/date"
)

func TestCategorize(t *testing.T) {
	testCases := []struct {
		text     string
		category Category
		window   date.Range
	}{
		{"what bills are due this week?", CatDueSoon, date.Range{From: date.New(2026, time.March, 2), To: date.New(2026, time.March, 8)}},
		{"anything due?", CatDueSoon, date.Range{From: monday, To: monday.Add(7)}},
		{"what is overdue?", CatDueSoon, date.Range{From: monday, To: monday.Add(7)}},
		{"what are my balances?", CatBalance, date.Range{}},
		{"what is my net worth?", CatNetWorth, date.Range{}},
		{"what is on the schedule?", CatSchedule, date.Range{From: monday, To: monday.Add(14)}},
		{"bills due next month?", CatDueSoon, date.Range{From: date.New(2026, time.April, 1), To: date.New(2026, time.April, 30)}},
		{"what is due in the next 14 days?", CatDueSoon, date.Range{From: monday, To: date.New(2026, time.March, 16)}},
	}
	for _, tc := range testCases {
		tokens := tokensOf(t, tc.text)
		q, ok := Categorize(tokens, monday)
		if !ok {
			t.Errorf("Categorize(%q) found no category", tc.text)
			continue
		}
		if q.Category != tc.category {
			t.Errorf("Categorize(%q) = %s, want %s", tc.text, q.Category, tc.category)
		}
		if q.Window != tc.window {
			t.Errorf("Categorize(%q) window = %s, want %s", tc.text, q.Window, tc.window)
		}
	}
}

func TestCategorizeNoCategory(t *testing.T) {
	tokens := tokensOf(t, "what is the meaning of life?")
	if q, ok := Categorize(tokens, monday); ok {
		t.Errorf("got %+v, want no category", q)
	}
}

// testBook builds a small but representative record set.
func testBook(t *testing.T) *homefin.Book {
	t.Helper()
	book := homefin.NewBook()
	err := book.Append(
		homefin.NewBill("Electric", homefin.Cents(14200), 15, date.Monthly),
		homefin.NewBill("Rent", homefin.Cents(120000), 1, date.Monthly),
		homefin.NewAccount("Checking", "checking", homefin.Cents(500000)),
		homefin.NewCard("Visa", homefin.Cents(120000), homefin.Cents(1000000)),
		homefin.NewDeadline("Passport Renewal", date.New(2026, time.March, 20)),
		homefin.NewActivity("Hockey Practice", "Jake", homefin.Cents(5000)),
	)
	if err != nil {
		t.Fatal(err)
	}
	return book
}

func TestAskDueSoon(t *testing.T) {
	book := testBook(t)
	q := Query{Category: CatDueSoon, Window: date.Range{From: monday, To: monday.Add(14)}}
	a := Ask(book, q)

	// Electric rolls to the 15th, the passport renewal falls on the 20th;
	// rent already passed the 1st and rolls out of the window.
	if len(a.Due) != 1 {
		t.Fatalf("due = %v, want only the electric bill", a.Due)
	}
	if a.Due[0].Name != "Electric" || a.Due[0].On != date.New(2026, time.March, 15) {
		t.Errorf("due[0] = %+v, want Electric on 2026-03-15", a.Due[0])
	}
	if a.Total.AsCents() != 14200 {
		t.Errorf("total = %d cents, want 14200", a.Total.AsCents())
	}
}

func TestAskDueSoonIncludesDeadlines(t *testing.T) {
	book := testBook(t)
	q := Query{Category: CatDueSoon, Window: date.Range{From: monday, To: monday.Add(20)}}
	a := Ask(book, q)

	names := make(map[string]bool)
	for _, d := range a.Due {
		names[d.Name] = true
	}
	if !names["Electric"] || !names["Passport Renewal"] {
		t.Errorf("due = %v, want the bill and the deadline", a.Due)
	}
	// Deadlines carry no amount, so the total stays the bill's.
	if a.Total.AsCents() != 14200 {
		t.Errorf("total = %d cents, want 14200", a.Total.AsCents())
	}
}

func TestAskBalance(t *testing.T) {
	a := Ask(testBook(t), Query{Category: CatBalance})
	if len(a.Balances) == 0 {
		t.Fatal("no balance lines")
	}
	found := false
	for _, line := range a.Balances {
		if line.Name == "Checking" && line.Balance.AsCents() == 500000 {
			found = true
		}
	}
	if !found {
		t.Errorf("balances = %v, want Checking at 500000 cents", a.Balances)
	}
}

func TestAskNetWorth(t *testing.T) {
	a := Ask(testBook(t), Query{Category: CatNetWorth})
	// Checking minus the Visa balance.
	if want := int64(500000 - 120000); a.NetWorth.AsCents() != want {
		t.Errorf("net worth = %d cents, want %d", a.NetWorth.AsCents(), want)
	}
}

func TestAskNetWorthEmpty(t *testing.T) {
	a := Ask(homefin.NewBook(), Query{Category: CatNetWorth})
	if !a.NetWorth.IsZero() {
		t.Errorf("net worth of an empty book = %s, want zero", a.NetWorth)
	}
}

func TestAskSchedule(t *testing.T) {
	q := Query{Category: CatSchedule, Window: date.Range{From: monday, To: monday.Add(14)}}
	a := Ask(testBook(t), q)
	if len(a.Activities) != 1 || a.Activities[0].Name != "Hockey Practice" {
		t.Errorf("activities = %v, want Hockey Practice", a.Activities)
	}
}
