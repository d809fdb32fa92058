package homefin

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/homefin/date"
)

var mar2 = date.New(2026, time.March, 2)

func TestExecutePayBill(t *testing.T) {
	b := sampleBook(t)
	bill := b.FindByName(KindBill, "Electric").(Bill)

	res, err := Execute(b, NewPayBill(bill.Id, Cents(14200), mar2))
	if err != nil {
		t.Fatal(err)
	}
	payments := b.Payments(bill.Id)
	if len(payments) != 1 {
		t.Fatalf("got %d payments, want 1", len(payments))
	}
	p := payments[0]
	if p.Amount.AsCents() != 14200 || p.On != mar2 {
		t.Errorf("payment = %+v", p)
	}
	if !strings.Contains(res.Message, "Electric") {
		t.Errorf("message %q does not name the bill", res.Message)
	}
}

func TestExecutePayBillDefaultsAmount(t *testing.T) {
	b := sampleBook(t)
	bill := b.FindByName(KindBill, "Electric").(Bill)

	// No amount given: the bill's regular amount applies.
	if _, err := Execute(b, NewPayBill(bill.Id, Money{}, mar2)); err != nil {
		t.Fatal(err)
	}
	payments := b.Payments(bill.Id)
	if len(payments) != 1 || payments[0].Amount.AsCents() != 14200 {
		t.Errorf("payments = %+v, want the bill amount", payments)
	}
}

func TestExecutePayBillUnknown(t *testing.T) {
	b := sampleBook(t)
	if _, err := Execute(b, NewPayBill("nope", Cents(1), mar2)); err == nil {
		t.Error("paying an unknown bill did not fail")
	}
	if _, err := Execute(b, NewPayBill("", Cents(1), mar2)); err == nil {
		t.Error("paying without a bill identifier did not fail")
	}
}

func TestExecutePayCard(t *testing.T) {
	b := sampleBook(t)
	card := b.FindByName(KindCard, "Visa").(Card)

	if _, err := Execute(b, NewPayCard(card.Id, Cents(20000), mar2)); err != nil {
		t.Fatal(err)
	}
	after := b.Record(card.Id).(Card)
	if got := after.Balance.AsCents(); got != 100000 {
		t.Errorf("card balance = %d cents, want 100000", got)
	}
}

func TestExecutePayCardNeedsAmount(t *testing.T) {
	b := sampleBook(t)
	card := b.FindByName(KindCard, "Visa").(Card)
	if _, err := Execute(b, NewPayCard(card.Id, Money{}, mar2)); err == nil {
		t.Error("card payment without amount did not fail")
	}
}

func TestExecuteCreateBill(t *testing.T) {
	b := NewBook()
	cmd := NewCreateBill("Internet", Cents(8000), 15, date.Monthly, mar2)
	res, err := Execute(b, cmd)
	if err != nil {
		t.Fatal(err)
	}
	bill, ok := res.Record.(Bill)
	if !ok {
		t.Fatalf("record = %T, want Bill", res.Record)
	}
	if bill.Name != "Internet" || bill.DueDay != 15 || bill.Frequency != date.Monthly {
		t.Errorf("bill = %+v", bill)
	}
	if b.Record(bill.Id) == nil {
		t.Error("created bill is not in the book")
	}
}

func TestExecuteCreateBillValidates(t *testing.T) {
	b := NewBook()
	if _, err := Execute(b, NewCreateBill("", Cents(1), 1, date.Monthly, mar2)); err == nil {
		t.Error("nameless bill did not fail")
	}
	if _, err := Execute(b, NewCreateBill("X", Cents(1), 32, date.Monthly, mar2)); err == nil {
		t.Error("due day 32 did not fail")
	}
	if _, err := Execute(b, NewCreateBill("X", Cents(1), 1, date.Monthly, date.Date{})); err == nil {
		t.Error("zero command date did not fail")
	}
}

func TestExecuteCreateBillRejectsDuplicateName(t *testing.T) {
	b := sampleBook(t)
	if _, err := Execute(b, NewCreateBill("Electric", Cents(1), 1, date.Monthly, mar2)); err == nil {
		t.Error("duplicate bill name did not fail")
	}
	// Name matching is case-insensitive, like every lookup by name.
	if _, err := Execute(b, NewCreateBill("electric", Cents(1), 1, date.Monthly, mar2)); err == nil {
		t.Error("duplicate bill name with different case did not fail")
	}
}

func TestExecuteCreateDeadline(t *testing.T) {
	b := NewBook()
	due := date.New(2026, time.March, 20)
	res, err := Execute(b, NewCreateDeadline("Passport Renewal", due, mar2))
	if err != nil {
		t.Fatal(err)
	}
	dl := res.Record.(Deadline)
	if dl.Due != due || dl.Done {
		t.Errorf("deadline = %+v", dl)
	}
}

func TestExecuteCompleteDeadline(t *testing.T) {
	b := sampleBook(t)
	dl := b.FindByName(KindDeadline, "Taxes").(Deadline)

	if _, err := Execute(b, NewCompleteDeadline(dl.Id, mar2)); err != nil {
		t.Fatal(err)
	}
	if !b.Record(dl.Id).(Deadline).Done {
		t.Error("deadline not flagged done")
	}
	// Done deadlines drop out of the overdue report.
	if overdue := b.Overdue(mar2); len(overdue) != 0 {
		t.Errorf("overdue = %v, want none", overdue)
	}
}

func TestExecuteCreateActivity(t *testing.T) {
	b := NewBook()
	res, err := Execute(b, NewCreateActivity("Hockey Practice", "Jake", Cents(5000), mar2))
	if err != nil {
		t.Fatal(err)
	}
	act := res.Record.(Activity)
	if act.Name != "Hockey Practice" || act.Child != "Jake" {
		t.Errorf("activity = %+v", act)
	}
}
