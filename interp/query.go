package interp

import (
	"strings"

	"github.com/etnz/homefin"
	"github.com/etnz/homefin/date"
)

// Category is a fixed query category a Question can resolve to.
type Category string

const (
	CatDueSoon  Category = "due-soon"
	CatBalance  Category = "balance"
	CatNetWorth Category = "net-worth"
	CatSchedule Category = "schedule"
)

// Default windows used when a category needs one and the question carries
// no time phrase: a week of bills, two weeks of schedule.
const (
	defaultDueWindow      = 7
	defaultScheduleWindow = 14
)

// Query is a categorized question ready to run against the repositories.
type Query struct {
	Category Category
	Window   date.Range
}

// Reader provides the read-only aggregation the query engine composes.
// *homefin.Book satisfies it.
type Reader interface {
	DueWithin(r date.Range) []homefin.Due
	Overdue(on date.Date) []homefin.Deadline
	Balances() []homefin.BalanceLine
	NetWorth() homefin.Money
	Activities() []homefin.Activity
}

// Categorize maps a Question token sequence onto one of the fixed query
// categories. The window, when one applies, resolves against 'now' with the
// same reference-date contract as the normalizer.
func Categorize(tokens []Token, now date.Date) (Query, bool) {
	window, hasWindow := scanWindow(tokens, now)

	switch {
	case hasPhrase(tokens, "net", "worth"):
		return Query{Category: CatNetWorth}, true
	case hasHint(tokens, dueWords):
		if !hasWindow {
			window = date.Range{From: now, To: now.Add(defaultDueWindow)}
		}
		return Query{Category: CatDueSoon, Window: window}, true
	case hasHint(tokens, balanceWords):
		return Query{Category: CatBalance}, true
	case hasHint(tokens, scheduleWords):
		if !hasWindow {
			window = date.Range{From: now, To: now.Add(defaultScheduleWindow)}
		}
		return Query{Category: CatSchedule, Window: window}, true
	default:
		return Query{}, false
	}
}

// hasPhrase reports whether the consecutive words appear in the tokens.
func hasPhrase(tokens []Token, words ...string) bool {
	joined := strings.Join(words, " ")
	for i := 0; i+len(words) <= len(tokens); i++ {
		var span []string
		for _, t := range tokens[i : i+len(words)] {
			if t.Kind != Word {
				break
			}
			span = append(span, t.Text)
		}
		if strings.Join(span, " ") == joined {
			return true
		}
	}
	return false
}

// scanWindow looks for a time-window phrase among the word tokens, longest
// phrase first ("next 14 days" before "next").
func scanWindow(tokens []Token, now date.Date) (date.Range, bool) {
	for i := 0; i < len(tokens); i++ {
		if tokens[i].Kind != Word {
			continue
		}
		for n := 3; n >= 1; n-- {
			if i+n > len(tokens) {
				continue
			}
			var span []string
			for _, t := range tokens[i : i+n] {
				if t.Kind != Word {
					break
				}
				span = append(span, t.Text)
			}
			if len(span) != n {
				continue
			}
			if r, ok := date.Window(strings.Join(span, " "), now); ok {
				return r, true
			}
		}
	}
	// The normalizer may have already resolved "today" or "tomorrow" into a
	// date token; a single day is a window too.
	for _, t := range tokens {
		if t.Kind == DateTok && (t.Text == "today" || t.Text == "tomorrow") {
			return date.Range{From: t.Date, To: t.Date}, true
		}
	}
	return date.Range{}, false
}

// Answer is the structured result of a query. Rendering is the caller's
// concern; the engine only aggregates.
type Answer struct {
	Category   Category
	Window     date.Range            // set for due-soon
	Due        []homefin.Due         // due-soon
	OverdueDue []homefin.Deadline    // due-soon: deadlines already missed
	Total      homefin.Money         // due-soon: sum of due bill amounts
	Balances   []homefin.BalanceLine // balance
	NetWorth   homefin.Money         // net-worth; zero when no records qualify
	Activities []homefin.Activity    // schedule
}

// Ask runs a categorized query against the reader and aggregates the answer.
func Ask(r Reader, q Query) Answer {
	a := Answer{Category: q.Category, Window: q.Window}
	switch q.Category {
	case CatDueSoon:
		a.Due = r.DueWithin(q.Window)
		a.OverdueDue = r.Overdue(q.Window.From)
		total := homefin.Cents(0)
		for _, d := range a.Due {
			total = total.Add(d.Amount)
		}
		a.Total = total
	case CatBalance:
		a.Balances = r.Balances()
	case CatNetWorth:
		a.NetWorth = r.NetWorth()
	case CatSchedule:
		a.Activities = r.Activities()
		a.Due = r.DueWithin(q.Window)
	}
	return a
}
