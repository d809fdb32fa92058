package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/homefin"
	"github.com/etnz/homefin/date"
)

// BalancesMarkdown renders a balance snapshot of accounts and cards.
func BalancesMarkdown(lines []homefin.BalanceLine) string {
	partials := map[string]string{"balances_table": "balances_table.md"}
	return renderTemplate("balances", "balances.md", partials, lines)
}

// NetWorthMarkdown renders the net worth statement.
func NetWorthMarkdown(total homefin.Money) string {
	return renderTemplate("networth", "networth.md", nil, total)
}

// RecordsMarkdown renders the list of records of one kind. Record lines vary
// per kind, so this one is built in code rather than a template.
func RecordsMarkdown(kind homefin.Kind, records []homefin.Record) string {
	var b strings.Builder
	title := strings.ToUpper(string(kind)[:1]) + string(kind)[1:]
	fmt.Fprintf(&b, "# %ss\n\n", title)
	if len(records) == 0 {
		fmt.Fprintf(&b, "No %s on record.\n", kind)
		return b.String()
	}
	for _, r := range records {
		fmt.Fprintf(&b, "- %s\n", recordLine(r))
	}
	return b.String()
}

func recordLine(r homefin.Record) string {
	switch v := r.(type) {
	case homefin.Bill:
		line := fmt.Sprintf("**%s**: %s %s", v.Name, v.Amount, v.Frequency)
		if v.DueDay > 0 {
			line += fmt.Sprintf(", due on the %d", v.DueDay)
		}
		return line
	case homefin.Account:
		return fmt.Sprintf("**%s**: %s", v.Name, v.Balance)
	case homefin.Card:
		return fmt.Sprintf("**%s**: %s of %s limit", v.Name, v.Balance, v.Limit)
	case homefin.Mortgage:
		return fmt.Sprintf("**%s**: %s remaining, %s monthly", v.Name, v.Balance, v.Payment)
	case homefin.Investment:
		return fmt.Sprintf("**%s**: %s", v.Name, v.Value)
	case homefin.Deadline:
		line := fmt.Sprintf("**%s**: due %s", v.Name, v.Due)
		if v.Done {
			line += " (done)"
		}
		return line
	case homefin.Activity:
		line := fmt.Sprintf("**%s**", v.Name)
		if v.Child != "" {
			line += fmt.Sprintf(" for %s", v.Child)
		}
		if !v.Cost.IsZero() {
			line += fmt.Sprintf(", %s", v.Cost)
		}
		return line
	default:
		return fmt.Sprintf("**%s**", r.Label())
	}
}

// Summary is the data behind the household summary report.
type Summary struct {
	Date         date.Date
	NetWorth     homefin.Money
	MonthlyBills homefin.Money
	Due          []homefin.Due
	Overdue      []homefin.Deadline
	Balances     []homefin.BalanceLine
}

// NewSummary assembles the summary of a book on a date, looking a week ahead
// for due items.
func NewSummary(book *homefin.Book, on date.Date) *Summary {
	window := date.Range{From: on, To: on.Add(7)}
	return &Summary{
		Date:         on,
		NetWorth:     book.NetWorth(),
		MonthlyBills: book.EstimatedMonthly(),
		Due:          book.DueWithin(window),
		Overdue:      book.Overdue(on),
		Balances:     book.Balances(),
	}
}

// SummaryMarkdown renders the household summary.
func SummaryMarkdown(s *Summary) string {
	partials := map[string]string{
		"due_overdue":    "due_overdue.md",
		"due_list":       "due_list.md",
		"balances_table": "balances_table.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}
