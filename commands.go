package homefin

import (
	"errors"
	"fmt"

	"github.com/etnz/homefin/date"
)

// CommandType is a typed string identifying structured commands.
type CommandType string

// Command types produced by the interpreter and executed against the book.
const (
	CmdPayBill          CommandType = "pay-bill"
	CmdPayCard          CommandType = "pay-card"
	CmdCreateBill       CommandType = "create-bill"
	CmdCreateDeadline   CommandType = "create-deadline"
	CmdCreateActivity   CommandType = "create-activity"
	CmdCompleteDeadline CommandType = "complete-deadline"
)

// Command defines the common interface for all structured commands.
//
// A Command is a fully specified, ready-to-execute representation of a
// recognized action. Commands only describe the mutation; Execute applies it.
type Command interface {
	What() CommandType // What returns the command type (e.g. "pay-bill").
	When() date.Date   // When returns the date the command applies on.
	Validate(book *Book) error
}

type baseCmd struct {
	Command CommandType `json:"command"`
	Date    date.Date   `json:"date"`
}

func (c baseCmd) What() CommandType { return c.Command }
func (c baseCmd) When() date.Date   { return c.Date }

// Validate checks the base command fields. The date is always set by the
// caller (the interpreter's reference date by default), never a wall clock.
func (c baseCmd) validate() error {
	if c.Date.IsZero() {
		return errors.New("command date is missing")
	}
	return nil
}

// PayBill records a payment against an existing bill.
type PayBill struct {
	baseCmd
	BillId string `json:"billId"`
	Amount Money  `json:"amount"` // zero means the bill's regular amount
}

// NewPayBill builds a pay-bill command.
func NewPayBill(billId string, amount Money, on date.Date) PayBill {
	return PayBill{baseCmd: baseCmd{Command: CmdPayBill, Date: on}, BillId: billId, Amount: amount}
}

func (c PayBill) Validate(book *Book) error {
	if err := c.validate(); err != nil {
		return err
	}
	if c.BillId == "" {
		return errors.New("bill identifier is missing")
	}
	if _, ok := book.Record(c.BillId).(Bill); !ok {
		return fmt.Errorf("bill %q not found in book", c.BillId)
	}
	return nil
}

// PayCard records a payment that reduces a card balance.
type PayCard struct {
	baseCmd
	CardId string `json:"cardId"`
	Amount Money  `json:"amount"`
}

// NewPayCard builds a pay-card command.
func NewPayCard(cardId string, amount Money, on date.Date) PayCard {
	return PayCard{baseCmd: baseCmd{Command: CmdPayCard, Date: on}, CardId: cardId, Amount: amount}
}

func (c PayCard) Validate(book *Book) error {
	if err := c.validate(); err != nil {
		return err
	}
	if c.CardId == "" {
		return errors.New("card identifier is missing")
	}
	if _, ok := book.Record(c.CardId).(Card); !ok {
		return fmt.Errorf("card %q not found in book", c.CardId)
	}
	if c.Amount.IsZero() || c.Amount.IsNegative() {
		return errors.New("card payment amount must be positive")
	}
	return nil
}

// CreateBill adds a new bill to the book.
type CreateBill struct {
	baseCmd
	Name      string      `json:"name"`
	Amount    Money       `json:"amount"`
	DueDay    int         `json:"dueDay,omitempty"`
	Frequency date.Period `json:"frequency"`
}

// NewCreateBill builds a create-bill command.
func NewCreateBill(name string, amount Money, dueDay int, frequency date.Period, on date.Date) CreateBill {
	return CreateBill{baseCmd: baseCmd{Command: CmdCreateBill, Date: on}, Name: name, Amount: amount, DueDay: dueDay, Frequency: frequency}
}

func (c CreateBill) Validate(book *Book) error {
	if err := c.validate(); err != nil {
		return err
	}
	if c.Name == "" {
		return errors.New("bill name is missing")
	}
	if c.DueDay < 0 || c.DueDay > 31 {
		return fmt.Errorf("invalid due day %d", c.DueDay)
	}
	if book.FindByName(KindBill, c.Name) != nil {
		return fmt.Errorf("a bill named %q already exists", c.Name)
	}
	return nil
}

// CreateDeadline adds a new deadline to the book.
type CreateDeadline struct {
	baseCmd
	Title string    `json:"title"`
	Due   date.Date `json:"due"`
}

// NewCreateDeadline builds a create-deadline command.
func NewCreateDeadline(title string, due date.Date, on date.Date) CreateDeadline {
	return CreateDeadline{baseCmd: baseCmd{Command: CmdCreateDeadline, Date: on}, Title: title, Due: due}
}

func (c CreateDeadline) Validate(book *Book) error {
	if err := c.validate(); err != nil {
		return err
	}
	if c.Title == "" {
		return errors.New("deadline title is missing")
	}
	if c.Due.IsZero() {
		return errors.New("deadline due date is missing")
	}
	return nil
}

// CreateActivity adds a new activity to the book.
type CreateActivity struct {
	baseCmd
	Name  string `json:"name"`
	Child string `json:"child,omitempty"`
	Cost  Money  `json:"cost,omitempty"`
}

// NewCreateActivity builds a create-activity command.
func NewCreateActivity(name, child string, cost Money, on date.Date) CreateActivity {
	return CreateActivity{baseCmd: baseCmd{Command: CmdCreateActivity, Date: on}, Name: name, Child: child, Cost: cost}
}

func (c CreateActivity) Validate(book *Book) error {
	if err := c.validate(); err != nil {
		return err
	}
	if c.Name == "" {
		return errors.New("activity name is missing")
	}
	return nil
}

// CompleteDeadline flags an existing deadline as done.
type CompleteDeadline struct {
	baseCmd
	DeadlineId string `json:"deadlineId"`
}

// NewCompleteDeadline builds a complete-deadline command.
func NewCompleteDeadline(deadlineId string, on date.Date) CompleteDeadline {
	return CompleteDeadline{baseCmd: baseCmd{Command: CmdCompleteDeadline, Date: on}, DeadlineId: deadlineId}
}

func (c CompleteDeadline) Validate(book *Book) error {
	if err := c.validate(); err != nil {
		return err
	}
	if c.DeadlineId == "" {
		return errors.New("deadline identifier is missing")
	}
	if _, ok := book.Record(c.DeadlineId).(Deadline); !ok {
		return fmt.Errorf("deadline %q not found in book", c.DeadlineId)
	}
	return nil
}

// ExecutionResult reports what a command execution did.
type ExecutionResult struct {
	Message string // one human-readable sentence
	Record  Record // the record created or touched
}

// Execute validates a command and applies its mutation to the book.
// Each command performs a single mutation so a partially applied action is
// never observable.
func Execute(book *Book, cmd Command) (ExecutionResult, error) {
	if err := cmd.Validate(book); err != nil {
		return ExecutionResult{}, fmt.Errorf("invalid %s command: %w", cmd.What(), err)
	}

	switch c := cmd.(type) {
	case PayBill:
		bill := book.Record(c.BillId).(Bill)
		amount := c.Amount
		if amount.IsZero() {
			amount = bill.Amount
		}
		payment := NewPayment(bill, amount, c.Date)
		if err := book.Append(payment); err != nil {
			return ExecutionResult{}, err
		}
		msg := fmt.Sprintf("Recorded payment of %s for %s on %s", amount, bill.Name, c.Date)
		return ExecutionResult{Message: msg, Record: payment}, nil

	case PayCard:
		card := book.Record(c.CardId).(Card)
		card.Balance = card.Balance.Sub(c.Amount)
		book.replace(card)
		msg := fmt.Sprintf("Recorded payment of %s on %s, balance now %s", c.Amount, card.Name, card.Balance)
		return ExecutionResult{Message: msg, Record: card}, nil

	case CreateBill:
		bill := NewBill(c.Name, c.Amount, c.DueDay, c.Frequency)
		if err := book.Append(bill); err != nil {
			return ExecutionResult{}, err
		}
		msg := fmt.Sprintf("Added bill %s: %s %s", bill.Name, bill.Amount, bill.Frequency)
		return ExecutionResult{Message: msg, Record: bill}, nil

	case CreateDeadline:
		dl := NewDeadline(c.Title, c.Due)
		if err := book.Append(dl); err != nil {
			return ExecutionResult{}, err
		}
		msg := fmt.Sprintf("Added deadline %s, due %s", dl.Name, dl.Due)
		return ExecutionResult{Message: msg, Record: dl}, nil

	case CreateActivity:
		act := NewActivity(c.Name, c.Child, c.Cost)
		if err := book.Append(act); err != nil {
			return ExecutionResult{}, err
		}
		msg := fmt.Sprintf("Added activity %s", act.Name)
		return ExecutionResult{Message: msg, Record: act}, nil

	case CompleteDeadline:
		dl := book.Record(c.DeadlineId).(Deadline)
		dl.Done = true
		book.replace(dl)
		msg := fmt.Sprintf("Completed deadline %s", dl.Name)
		return ExecutionResult{Message: msg, Record: dl}, nil

	default:
		return ExecutionResult{}, fmt.Errorf("no execution for command %q", cmd.What())
	}
}
