package homefin

import (
	"fmt"

	"github.com/etnz/homefin/date"
	"github.com/google/uuid"
)

// Kind is a typed string identifying the kind of a record.
type Kind string

// Record kinds persisted in the book.
const (
	KindBill       Kind = "bill"
	KindAccount    Kind = "account"
	KindCard       Kind = "card"
	KindMortgage   Kind = "mortgage"
	KindInvestment Kind = "investment"
	KindDeadline   Kind = "deadline"
	KindActivity   Kind = "activity"
	KindPayment    Kind = "payment"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBill, KindAccount, KindCard, KindMortgage, KindInvestment, KindDeadline, KindActivity, KindPayment:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown record kind: %q", s)
	}
}

// Record defines the common interface for all records stored in the book.
type Record interface {
	What() Kind    // What returns the record kind (e.g. "bill", "account").
	Ref() string   // Ref returns the record's unique identifier.
	Label() string // Label returns the record's human display name.
}

// baseRecord holds the fields common to all records.
type baseRecord struct {
	Record Kind   `json:"record"` // Record specifies the kind of record (e.g. "bill").
	Id     string `json:"id"`     // Id is the record's unique identifier.
	Name   string `json:"name"`   // Name is the record's display name.
}

func (r baseRecord) What() Kind    { return r.Record }
func (r baseRecord) Ref() string   { return r.Id }
func (r baseRecord) Label() string { return r.Name }

// MarshalJSON implements the json.Marshaler interface for baseRecord.
func (r baseRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", r.Record)
	w.Append("id", r.Id)
	w.Append("name", r.Name)
	return w.MarshalJSON()
}

func newBase(kind Kind, name string) baseRecord {
	return baseRecord{Record: kind, Id: uuid.NewString(), Name: name}
}

// Bill is a recurring obligation (utility, insurance, subscription...).
type Bill struct {
	baseRecord
	Provider  string      `json:"provider,omitempty"`
	Amount    Money       `json:"amount"`
	DueDay    int         `json:"dueDay,omitempty"` // day of month the bill falls due
	Frequency date.Period `json:"frequency"`
	AutoPay   bool        `json:"autopay,omitempty"`
}

// NewBill creates a bill with a fresh identifier.
func NewBill(name string, amount Money, dueDay int, frequency date.Period) Bill {
	return Bill{baseRecord: newBase(KindBill, name), Amount: amount, DueDay: dueDay, Frequency: frequency}
}

// NextDue returns the first due date of the bill on or after 'on'.
// A bill without a due day is considered due at the end of the month.
func (b Bill) NextDue(on date.Date) date.Date {
	day := b.DueDay
	if day == 0 {
		return on.EndOf(date.Monthly)
	}
	d := date.New(on.Year(), on.Month(), day)
	if d.Before(on) {
		d = date.New(on.Year(), on.Month()+1, day)
	}
	return d
}

func (b Bill) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(b.baseRecord)
	w.Optional("provider", b.Provider)
	w.Append("amount", b.Amount)
	w.Optional("dueDay", b.DueDay)
	w.Append("frequency", b.Frequency)
	w.Optional("autopay", b.AutoPay)
	return w.MarshalJSON()
}

// Account is a bank account (checking, savings...).
type Account struct {
	baseRecord
	Type     string `json:"type,omitempty"` // checking, savings...
	LastFour string `json:"lastFour,omitempty"`
	Balance  Money  `json:"balance"`
}

// NewAccount creates an account with a fresh identifier.
func NewAccount(name, typ string, balance Money) Account {
	return Account{baseRecord: newBase(KindAccount, name), Type: typ, Balance: balance}
}

func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(a.baseRecord)
	w.Optional("type", a.Type)
	w.Optional("lastFour", a.LastFour)
	w.Append("balance", a.Balance)
	return w.MarshalJSON()
}

// Card is a credit card.
type Card struct {
	baseRecord
	Issuer   string `json:"issuer,omitempty"`
	LastFour string `json:"lastFour,omitempty"`
	Balance  Money  `json:"balance"`
	Limit    Money  `json:"limit"`
	DueDay   int    `json:"dueDay,omitempty"`
}

// NewCard creates a card with a fresh identifier.
func NewCard(name string, balance, limit Money) Card {
	return Card{baseRecord: newBase(KindCard, name), Balance: balance, Limit: limit}
}

func (c Card) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(c.baseRecord)
	w.Optional("issuer", c.Issuer)
	w.Optional("lastFour", c.LastFour)
	w.Append("balance", c.Balance)
	w.Append("limit", c.Limit)
	w.Optional("dueDay", c.DueDay)
	return w.MarshalJSON()
}

// Mortgage is a home loan.
type Mortgage struct {
	baseRecord
	Lender  string  `json:"lender,omitempty"`
	Balance Money   `json:"balance"`
	Payment Money   `json:"payment"` // monthly payment
	RatePct float64 `json:"ratePct,omitempty"`
}

// NewMortgage creates a mortgage with a fresh identifier.
func NewMortgage(name, lender string, balance, payment Money) Mortgage {
	return Mortgage{baseRecord: newBase(KindMortgage, name), Lender: lender, Balance: balance, Payment: payment}
}

func (m Mortgage) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(m.baseRecord)
	w.Optional("lender", m.Lender)
	w.Append("balance", m.Balance)
	w.Append("payment", m.Payment)
	w.Optional("ratePct", m.RatePct)
	return w.MarshalJSON()
}

// Investment is an investment account (401k, 529, IRA, brokerage...).
type Investment struct {
	baseRecord
	Type      string `json:"type,omitempty"`
	Value     Money  `json:"value"`
	CostBasis Money  `json:"costBasis,omitempty"`
}

// NewInvestment creates an investment with a fresh identifier.
func NewInvestment(name, typ string, value Money) Investment {
	return Investment{baseRecord: newBase(KindInvestment, name), Type: typ, Value: value}
}

func (i Investment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(i.baseRecord)
	w.Optional("type", i.Type)
	w.Append("value", i.Value)
	w.Optional("costBasis", i.CostBasis)
	return w.MarshalJSON()
}

// Deadline is a dated obligation that is done once completed.
type Deadline struct {
	baseRecord
	Due      date.Date `json:"due"`
	Priority string    `json:"priority,omitempty"`
	Done     bool      `json:"done,omitempty"`
}

// NewDeadline creates a deadline with a fresh identifier.
func NewDeadline(title string, due date.Date) Deadline {
	return Deadline{baseRecord: newBase(KindDeadline, title), Due: due}
}

func (d Deadline) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(d.baseRecord)
	w.Append("due", d.Due)
	w.Optional("priority", d.Priority)
	w.Optional("done", d.Done)
	return w.MarshalJSON()
}

// Activity is a recurring family activity (practice, lesson, class...).
type Activity struct {
	baseRecord
	Child    string `json:"child,omitempty"`
	Cost     Money  `json:"cost,omitempty"`
	Schedule string `json:"schedule,omitempty"`
	Location string `json:"location,omitempty"`
}

// NewActivity creates an activity with a fresh identifier.
func NewActivity(name, child string, cost Money) Activity {
	return Activity{baseRecord: newBase(KindActivity, name), Child: child, Cost: cost}
}

func (a Activity) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(a.baseRecord)
	w.Optional("child", a.Child)
	w.Append("cost", a.Cost)
	w.Optional("schedule", a.Schedule)
	w.Optional("location", a.Location)
	return w.MarshalJSON()
}

// Payment records that a bill was paid on a date.
type Payment struct {
	baseRecord
	BillId string    `json:"billId"`
	Amount Money     `json:"amount"`
	On     date.Date `json:"on"`
}

// NewPayment creates a payment record against a bill.
func NewPayment(bill Bill, amount Money, on date.Date) Payment {
	return Payment{
		baseRecord: newBase(KindPayment, bill.Name),
		BillId:     bill.Id,
		Amount:     amount,
		On:         on,
	}
}

func (p Payment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(p.baseRecord)
	w.Append("billId", p.BillId)
	w.Append("amount", p.Amount)
	w.Append("on", p.On)
	return w.MarshalJSON()
}
