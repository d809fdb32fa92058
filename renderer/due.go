package renderer

import (
	"github.com/etnz/homefin"
	"github.com/etnz/homefin/date"
)

// dueReport is the data behind the due report template.
type dueReport struct {
	Window  date.Range
	Due     []homefin.Due
	Overdue []homefin.Deadline
	Total   homefin.Money
}

// DueMarkdown renders the bills and deadlines due in the window, plus
// anything already overdue, as a markdown report.
func DueMarkdown(window date.Range, due []homefin.Due, overdue []homefin.Deadline) string {
	total := homefin.Cents(0)
	for _, d := range due {
		total = total.Add(d.Amount)
	}
	data := dueReport{Window: window, Due: due, Overdue: overdue, Total: total}
	partials := map[string]string{
		"due_overdue": "due_overdue.md",
		"due_list":    "due_list.md",
	}
	return renderTemplate("due", "due.md", partials, data)
}

// scheduleReport is the data behind the schedule report template.
type scheduleReport struct {
	Window     date.Range
	Activities []homefin.Activity
	Due        []homefin.Due
}

// ScheduleMarkdown renders the family activities plus everything falling due
// in the window.
func ScheduleMarkdown(window date.Range, activities []homefin.Activity, due []homefin.Due) string {
	data := scheduleReport{Window: window, Activities: activities, Due: due}
	partials := map[string]string{
		"due_list": "due_list.md",
	}
	return renderTemplate("schedule", "schedule.md", partials, data)
}
