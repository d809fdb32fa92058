package date

import (
	"testing"
	"time"
)

func NewDailyRange(d Date) Range {
	return NewRange(d, Daily)
}
func NewWeeklyRange(d Date) Range {
	return NewRange(d, Weekly)
}
func NewMonthlyRange(d Date) Range {
	return NewRange(d, Monthly)
}
func NewQuarterlyRange(d Date) Range {
	return NewRange(d, Quarterly)
}
func NewYearlyRange(d Date) Range {
	return NewRange(d, Yearly)
}

func TestNewDailyRange(t *testing.T) {
	d := New(2025, time.September, 8)
	want := Range{From: d, To: d}
	got := NewDailyRange(d)
	if got != want {
		t.Errorf("NewDailyRange() = %v, want %v", got, want)
	}
}

func TestNewWeeklyRange(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		want Range
	}{
		{
			name: "A Wednesday",
			in:   New(2025, time.September, 10),
			want: Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewWeeklyRange(tc.in); got != tc.want {
				t.Errorf("NewWeeklyRange() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewMonthlyRange(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		want Range
	}{
		{
			name: "A leap year",
			in:   New(2024, time.February, 15),
			want: Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewMonthlyRange(tc.in); got != tc.want {
				t.Errorf("NewMonthlyRange() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewQuarterlyRange(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		want Range
	}{
		{
			name: "Q2",
			in:   New(2025, time.May, 20),
			want: Range{From: New(2025, time.April, 1), To: New(2025, time.June, 30)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewQuarterlyRange(tc.in); got != tc.want {
				t.Errorf("NewQuarterlyRange() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewYearlyRange(t *testing.T) {
	d := New(2025, time.September, 8)
	want := Range{From: New(2025, time.January, 1), To: New(2025, time.December, 31)}
	got := NewYearlyRange(d)
	if got != want {
		t.Errorf("NewYearlyRange() = %v, want %v", got, want)
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Period
		wantErr bool
	}{
		{"Daily", "daily", Daily, false},
		{"Weekly", "weekly", Weekly, false},
		{"Monthly", "monthly", Monthly, false},
		{"Quarterly", "quarterly", Quarterly, false},
		{"Yearly", "yearly", Yearly, false},
		{"Unknown", "unknown", Daily, true},
		{"Daily", "day", Daily, false},
		{"Weekly", "week", Weekly, false},
		{"Monthly", "month", Monthly, false},
		{"Quarterly", "quarter", Quarterly, false},
		{"Yearly", "year", Yearly, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}
