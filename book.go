package homefin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/homefin/date"
)

// Book represents the user's complete set of financial records.
//
// A Book is the in-memory working copy of the records file. It is mutated
// only through command execution, and reads always reflect live state.
type Book struct {
	records []Record
	byId    map[string]Record
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{byId: make(map[string]Record)}
}

// Append adds a record to the book.
func (b *Book) Append(records ...Record) error {
	for _, r := range records {
		if r.Ref() == "" {
			return fmt.Errorf("record %q has no identifier", r.Label())
		}
		if _, exists := b.byId[r.Ref()]; exists {
			return fmt.Errorf("duplicate record identifier %q", r.Ref())
		}
		b.records = append(b.records, r)
		b.byId[r.Ref()] = r
	}
	return nil
}

// replace swaps the stored record with the same identifier.
func (b *Book) replace(r Record) {
	b.byId[r.Ref()] = r
	for i, old := range b.records {
		if old.Ref() == r.Ref() {
			b.records[i] = r
			return
		}
	}
}

// Len returns the number of records in the book.
func (b *Book) Len() int { return len(b.records) }

// Record returns the record with this identifier, or nil if unknown.
func (b *Book) Record(id string) Record { return b.byId[id] }

// Records returns all records in insertion order.
func (b *Book) Records() []Record { return b.records }

// Bills returns all bills in the book.
func (b *Book) Bills() []Bill {
	var out []Bill
	for _, r := range b.records {
		if v, ok := r.(Bill); ok {
			out = append(out, v)
		}
	}
	return out
}

// Accounts returns all bank accounts in the book.
func (b *Book) Accounts() []Account {
	var out []Account
	for _, r := range b.records {
		if v, ok := r.(Account); ok {
			out = append(out, v)
		}
	}
	return out
}

// Cards returns all credit cards in the book.
func (b *Book) Cards() []Card {
	var out []Card
	for _, r := range b.records {
		if v, ok := r.(Card); ok {
			out = append(out, v)
		}
	}
	return out
}

// Mortgages returns all mortgages in the book.
func (b *Book) Mortgages() []Mortgage {
	var out []Mortgage
	for _, r := range b.records {
		if v, ok := r.(Mortgage); ok {
			out = append(out, v)
		}
	}
	return out
}

// Investments returns all investment accounts in the book.
func (b *Book) Investments() []Investment {
	var out []Investment
	for _, r := range b.records {
		if v, ok := r.(Investment); ok {
			out = append(out, v)
		}
	}
	return out
}

// Deadlines returns all deadlines in the book.
func (b *Book) Deadlines() []Deadline {
	var out []Deadline
	for _, r := range b.records {
		if v, ok := r.(Deadline); ok {
			out = append(out, v)
		}
	}
	return out
}

// Activities returns all activities in the book.
func (b *Book) Activities() []Activity {
	var out []Activity
	for _, r := range b.records {
		if v, ok := r.(Activity); ok {
			out = append(out, v)
		}
	}
	return out
}

// Payments returns all payments recorded against this bill, most recent last.
func (b *Book) Payments(billId string) []Payment {
	var out []Payment
	for _, r := range b.records {
		if v, ok := r.(Payment); ok && v.BillId == billId {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].On.Before(out[j].On) })
	return out
}

// NameEntry binds a record identifier to its display name.
type NameEntry struct {
	Id   string
	Name string
}

// Names returns the (identifier, display name) pairs for every record of
// this kind, reflecting current book state.
func (b *Book) Names(kind Kind) []NameEntry {
	var out []NameEntry
	for _, r := range b.records {
		if r.What() == kind {
			out = append(out, NameEntry{Id: r.Ref(), Name: r.Label()})
		}
	}
	return out
}

// FindByName returns the first record of this kind whose name matches,
// case-insensitively.
func (b *Book) FindByName(kind Kind, name string) Record {
	for _, r := range b.records {
		if r.What() == kind && strings.EqualFold(r.Label(), name) {
			return r
		}
	}
	return nil
}

// Due is a bill or deadline falling due on a date.
type Due struct {
	Kind   Kind
	Id     string
	Name   string
	On     date.Date
	Amount Money // zero for deadlines
}

// DueWithin returns bills and pending deadlines whose next due date falls
// inside the range, sorted by date.
func (b *Book) DueWithin(r date.Range) []Due {
	var out []Due
	for _, bill := range b.Bills() {
		on := bill.NextDue(r.From)
		if r.Contains(on) {
			out = append(out, Due{Kind: KindBill, Id: bill.Id, Name: bill.Name, On: on, Amount: bill.Amount})
		}
	}
	for _, dl := range b.Deadlines() {
		if !dl.Done && r.Contains(dl.Due) {
			out = append(out, Due{Kind: KindDeadline, Id: dl.Id, Name: dl.Name, On: dl.Due})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].On != out[j].On {
			return out[i].On.Before(out[j].On)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Overdue returns pending deadlines strictly before 'on'.
func (b *Book) Overdue(on date.Date) []Deadline {
	var out []Deadline
	for _, dl := range b.Deadlines() {
		if !dl.Done && dl.Due.Before(on) {
			out = append(out, dl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Due.Before(out[j].Due) })
	return out
}

// BalanceLine is one line of a balance snapshot.
type BalanceLine struct {
	Kind    Kind
	Name    string
	Balance Money
}

// Balances returns a snapshot of account and card balances.
func (b *Book) Balances() []BalanceLine {
	var out []BalanceLine
	for _, a := range b.Accounts() {
		out = append(out, BalanceLine{Kind: KindAccount, Name: a.Name, Balance: a.Balance})
	}
	for _, c := range b.Cards() {
		out = append(out, BalanceLine{Kind: KindCard, Name: c.Name, Balance: c.Balance})
	}
	return out
}

// NetWorth sums asset balances (accounts, investments) minus liability
// balances (cards, mortgages). Each kind's sign is fixed by its meaning.
func (b *Book) NetWorth() Money {
	total := M(0, DefaultCurrency)
	for _, a := range b.Accounts() {
		total = total.Add(a.Balance)
	}
	for _, i := range b.Investments() {
		total = total.Add(i.Value)
	}
	for _, c := range b.Cards() {
		total = total.Sub(c.Balance)
	}
	for _, m := range b.Mortgages() {
		total = total.Sub(m.Balance)
	}
	return total
}

// EstimatedMonthly estimates the monthly total of all recurring bills.
func (b *Book) EstimatedMonthly() Money {
	total := M(0, DefaultCurrency)
	for _, bill := range b.Bills() {
		total = total.Add(bill.Amount.Mul(bill.Frequency.PerYear()).Div(12))
	}
	return total
}
