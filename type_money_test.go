package homefin

import (
	"encoding/json"
	"testing"
)

func TestMoneyAsCents(t *testing.T) {
	if got := Cents(14200).AsCents(); got != 14200 {
		t.Errorf("Cents(14200).AsCents() = %d", got)
	}
	if got := M(142.5, "USD").AsCents(); got != 14250 {
		t.Errorf("M(142.5).AsCents() = %d, want 14250", got)
	}
	if got := M(100, "JPY").AsCents(); got != 100 {
		t.Errorf("M(100, JPY).AsCents() = %d, want 100 (no fraction)", got)
	}
}

func TestMoneyString(t *testing.T) {
	if got := Cents(14200).String(); got != "$142.00" {
		t.Errorf("String() = %q, want $142.00", got)
	}
	if got := M(5, "EUR").String(); got != "€5.00" {
		t.Errorf("String() = %q, want €5.00", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	sum := Cents(100).Add(Cents(250))
	if sum.AsCents() != 350 {
		t.Errorf("100 + 250 = %d cents", sum.AsCents())
	}
	diff := Cents(100).Sub(Cents(250))
	if diff.AsCents() != -150 || !diff.IsNegative() {
		t.Errorf("100 - 250 = %d cents", diff.AsCents())
	}

	// The empty currency is weak: it adopts the other operand's currency.
	weak := M(1, "").Add(M(2, "EUR"))
	if weak.Currency() != "EUR" {
		t.Errorf("weak currency add = %q, want EUR", weak.Currency())
	}
}

func TestMoneyMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD to EUR did not panic")
		}
	}()
	M(1, "USD").Add(M(1, "EUR"))
}

func TestMoneyJSON(t *testing.T) {
	data, err := json.Marshal(M(142.5, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"currency":"USD","amount":142.5}`; string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	var m Money
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if !m.Equal(M(142.5, "USD")) {
		t.Errorf("round trip = %s", m)
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := Cents(0).SignedString(); got != "-" {
		t.Errorf("zero = %q, want -", got)
	}
	if got := Cents(100).SignedString(); got != "+$1.00" {
		t.Errorf("positive = %q, want +$1.00", got)
	}
}
