package homefin

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assumed when an amount carries none.
const DefaultCurrency = "USD"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money from a major-unit value and a currency code.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// Cents returns a Money from a minor-unit (cent) value in the default currency.
func Cents(cents int64) Money {
	return Money{value: decimal.New(cents, -2), cur: DefaultCurrency}
}

func newDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case decimal.Decimal:
		return n
	case float32:
		return decimal.NewFromFloat32(n)
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt32(n)
	case int64:
		return decimal.NewFromInt(n)
	case uint:
		return decimal.NewFromUint64(uint64(n))
	case uint32:
		return decimal.NewFromUint64(uint64(n))
	case uint64:
		return decimal.NewFromUint64(n)
	default:
		panic("unsupported numeric type")
	}
}

// currency returns the money's currency. Going through the go-money
// constructor guarantees a never-nil currency.
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = DefaultCurrency
	}
	return *money.New(0, cur).Currency()
}

// AsCents returns the amount in minor units, rounded to the currency fraction.
func (m Money) AsCents() int64 {
	cur := m.currency()
	return m.value.Shift(int32(cur.Fraction)).Round(0).IntPart()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string             { return m.cur }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Div(n int) Money              { return Money{value: m.value.Div(decimal.NewFromInt(int64(n))), cur: m.cur} }
func (m Money) Mul(n int) Money              { return Money{value: m.value.Mul(decimal.NewFromInt(int64(n))), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + " != " + B.cur)
	}
	return A.cur
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(int32(m.currency().Fraction)))
	return w.MarshalJSON()
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var aux struct {
		Currency string          `json:"currency"`
		Amount   decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	m.value, m.cur = aux.Amount, aux.Currency
	return nil
}
