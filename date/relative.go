package date

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Relative date phrases are resolved against a caller supplied reference
// date, never against the wall clock, so that resolution is reproducible.

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

var (
	monthDayRE = regexp.MustCompile(`^([a-z]+) (\d{1,2})(?: (\d{4}))?$`)
	slashRE    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?$`)
	ordinalRE  = regexp.MustCompile(`^(?:on )?the (\d{1,2})(?:st|nd|rd|th)?$`)
	nextDaysRE = regexp.MustCompile(`^next (\d{1,3}) days?$`)
)

// Resolve resolves a date phrase against the reference date 'now'.
// Accepted phrases (already lower cased): "today", "tomorrow", "yesterday",
// a weekday name or "next <weekday>", "<month> <day> [<year>]",
// "<m>/<d>[/<y>]", "the 15th", and ISO dates.
// A month-day phrase without a year resolves to the next occurrence on or
// after now.
func Resolve(phrase string, now Date) (Date, bool) {
	phrase = strings.TrimSpace(phrase)
	switch phrase {
	case "today":
		return now, true
	case "tomorrow":
		return now.Add(1), true
	case "yesterday":
		return now.Add(-1), true
	}

	if wd, ok := weekdays[strings.TrimPrefix(phrase, "next ")]; ok {
		diff := (int(wd) - int(now.Weekday()) + 7) % 7
		// A bare weekday means the coming one; "next" never means today.
		if diff == 0 {
			diff = 7
		}
		return now.Add(diff), true
	}

	if m := monthDayRE.FindStringSubmatch(phrase); m != nil {
		month, ok := months[m[1]]
		if !ok {
			return Date{}, false
		}
		day, _ := strconv.Atoi(m[2])
		if day < 1 || day > 31 {
			return Date{}, false
		}
		if m[3] != "" {
			year, _ := strconv.Atoi(m[3])
			return New(year, month, day), true
		}
		d := New(now.Year(), month, day)
		if d.Before(now) {
			d = New(now.Year()+1, month, day)
		}
		return d, true
	}

	if m := slashRE.FindStringSubmatch(phrase); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return Date{}, false
		}
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		return New(year, time.Month(month), day), true
	}

	if m := ordinalRE.FindStringSubmatch(phrase); m != nil {
		day, _ := strconv.Atoi(m[1])
		if day < 1 || day > 31 {
			return Date{}, false
		}
		d := New(now.Year(), now.Month(), day)
		if !d.After(now) {
			d = d.AddMonth(1)
		}
		return d, true
	}

	if d, err := Parse(phrase); err == nil {
		return d, true
	}
	return Date{}, false
}

// Window resolves a time-window phrase against the reference date 'now'.
// Accepted phrases: "today", "tomorrow", "this week", "next week",
// "this month", "next month", "this year", "soon", "next <n> days".
func Window(phrase string, now Date) (Range, bool) {
	phrase = strings.TrimSpace(phrase)
	switch phrase {
	case "today":
		return Range{From: now, To: now}, true
	case "tomorrow":
		return Range{From: now.Add(1), To: now.Add(1)}, true
	case "this week":
		return NewRange(now, Weekly), true
	case "next week":
		return NewRange(now.Add(7), Weekly), true
	case "this month":
		return NewRange(now, Monthly), true
	case "next month":
		return NewRange(now.AddMonth(1), Monthly), true
	case "this year":
		return NewRange(now, Yearly), true
	case "soon":
		return Range{From: now, To: now.Add(7)}, true
	}
	if m := nextDaysRE.FindStringSubmatch(phrase); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n > 0 {
			return Range{From: now, To: now.Add(n)}, true
		}
	}
	return Range{}, false
}
