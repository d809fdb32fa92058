package homefin

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/etnz/homefin/date"
)

func TestParseKind(t *testing.T) {
	for _, s := range []string{"bill", "account", "card", "mortgage", "investment", "deadline", "activity", "payment"} {
		if _, err := ParseKind(s); err != nil {
			t.Errorf("ParseKind(%q): %v", s, err)
		}
	}
	if _, err := ParseKind("llama"); err == nil {
		t.Error("ParseKind accepted an unknown kind")
	}
}

func TestNewRecordsHaveIdentifiers(t *testing.T) {
	records := []Record{
		NewBill("Electric", Cents(14200), 15, date.Monthly),
		NewAccount("Checking", "checking", Cents(1)),
		NewCard("Visa", Cents(1), Cents(2)),
		NewMortgage("Home", "Bank", Cents(1), Cents(2)),
		NewInvestment("401k", "401k", Cents(1)),
		NewDeadline("Renewal", date.New(2026, time.March, 20)),
		NewActivity("Hockey", "Jake", Cents(1)),
	}
	seen := make(map[string]bool)
	for _, r := range records {
		if r.Ref() == "" {
			t.Errorf("%s %q has no identifier", r.What(), r.Label())
		}
		if seen[r.Ref()] {
			t.Errorf("identifier %q reused", r.Ref())
		}
		seen[r.Ref()] = true
	}
}

func TestBillNextDue(t *testing.T) {
	mar2 := date.New(2026, time.March, 2)

	bill := NewBill("Electric", Cents(14200), 15, date.Monthly)
	if got := bill.NextDue(mar2); got != date.New(2026, time.March, 15) {
		t.Errorf("NextDue = %s, want 2026-03-15", got)
	}

	// A due day already past rolls to the next month.
	rent := NewBill("Rent", Cents(120000), 1, date.Monthly)
	if got := rent.NextDue(mar2); got != date.New(2026, time.April, 1) {
		t.Errorf("NextDue = %s, want 2026-04-01", got)
	}

	// Without a due day the bill falls due at month end.
	vague := NewBill("Misc", Cents(100), 0, date.Monthly)
	if got := vague.NextDue(mar2); got != date.New(2026, time.March, 31) {
		t.Errorf("NextDue = %s, want 2026-03-31", got)
	}
}

func TestRecordJSONFieldOrder(t *testing.T) {
	bill := NewBill("Electric", Cents(14200), 15, date.Monthly)
	data, err := json.Marshal(bill)
	if err != nil {
		t.Fatal(err)
	}
	// The tag leads every line so decoding can dispatch on a prefix peek.
	if !strings.HasPrefix(string(data), `{"record":"bill","id":`) {
		t.Errorf("marshal = %s, want the record tag first", data)
	}
}

func TestPaymentBindsBill(t *testing.T) {
	bill := NewBill("Electric", Cents(14200), 15, date.Monthly)
	p := NewPayment(bill, Cents(14200), date.New(2026, time.March, 2))
	if p.BillId != bill.Id {
		t.Errorf("payment bill id = %q, want %q", p.BillId, bill.Id)
	}
	if p.Label() != "Electric" {
		t.Errorf("payment label = %q, want the bill name", p.Label())
	}
	if p.Id == bill.Id {
		t.Error("payment reused the bill identifier")
	}
}
