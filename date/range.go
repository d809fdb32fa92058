package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the standard period range containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Between returns the range from 'from' to 'to', swapping if needed.
func Between(from, to Date) Range {
	if to.Before(from) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days in the range.
func (r Range) Days() int {
	n := 0
	for d := r.From; !d.After(r.To); d = d.Add(1) {
		n++
	}
	return n
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
