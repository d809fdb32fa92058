package date

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Period is a standard recurrence or reporting period.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// PerYear returns how many times the period occurs in a year.
// Used to estimate a monthly equivalent for recurring amounts.
func (p Period) PerYear() int {
	switch p {
	case Daily:
		return 365
	case Weekly:
		return 52
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Yearly:
		return 1
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(p)
	switch p {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year", "annually", "annual":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}

func (p Period) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }

func (p *Period) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	parsed, err := ParsePeriod(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
