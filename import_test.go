package homefin

import (
	"strings"
	"testing"
)

const bankExport = `{
  "accounts": [
    {"name": "CHECKING ****1234", "currentBalance": 4321.09},
    {"name": "SAVINGS ****5678", "currentBalance": 15000.50}
  ]
}`

func TestImportBalances(t *testing.T) {
	b := NewBook()
	err := b.Append(
		NewAccount("Checking", "checking", Cents(100)),
		NewAccount("Savings", "savings", Cents(100)),
	)
	if err != nil {
		t.Fatal(err)
	}
	rules := []ImportRule{
		{Account: "Checking", Path: "$.accounts[0].currentBalance"},
		{Account: "Savings", Path: "$.accounts[1].currentBalance"},
	}

	updated, err := b.ImportBalances(strings.NewReader(bankExport), rules)
	if err != nil {
		t.Fatal(err)
	}
	if updated != 2 {
		t.Errorf("updated = %d, want 2", updated)
	}
	if got := b.FindByName(KindAccount, "Checking").(Account).Balance.AsCents(); got != 432109 {
		t.Errorf("checking balance = %d cents, want 432109", got)
	}
	if got := b.FindByName(KindAccount, "Savings").(Account).Balance.AsCents(); got != 1500050 {
		t.Errorf("savings balance = %d cents, want 1500050", got)
	}
}

func TestImportBalancesUnknownAccount(t *testing.T) {
	b := NewBook()
	rules := []ImportRule{{Account: "Checking", Path: "$.accounts[0].currentBalance"}}
	if _, err := b.ImportBalances(strings.NewReader(bankExport), rules); err == nil {
		t.Error("import into an unknown account did not fail")
	}
}

func TestImportBalancesBadPath(t *testing.T) {
	b := NewBook()
	if err := b.Append(NewAccount("Checking", "checking", Cents(100))); err != nil {
		t.Fatal(err)
	}
	rules := []ImportRule{{Account: "Checking", Path: "$.accounts[0].name"}}
	if _, err := b.ImportBalances(strings.NewReader(bankExport), rules); err == nil {
		t.Error("a path resolving to a string did not fail")
	}
}

func TestImportBalancesKeepsCurrency(t *testing.T) {
	b := NewBook()
	if err := b.Append(NewAccount("Checking", "checking", M(1, "EUR"))); err != nil {
		t.Fatal(err)
	}
	rules := []ImportRule{{Account: "Checking", Path: "$.accounts[0].currentBalance"}}
	if _, err := b.ImportBalances(strings.NewReader(bankExport), rules); err != nil {
		t.Fatal(err)
	}
	acc := b.FindByName(KindAccount, "Checking").(Account)
	if acc.Balance.Currency() != "EUR" {
		t.Errorf("currency = %q, want EUR preserved", acc.Balance.Currency())
	}
}
