package homefin

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// ImportRule pairs an account name with a jsonpath expression locating its
// balance inside a bank export file.
type ImportRule struct {
	Account string `json:"account"`
	Path    string `json:"path"`
}

// ImportBalances reads a JSON bank export and updates the balance of each
// account named by a rule. It returns the number of accounts updated.
// Unknown accounts or paths that resolve to nothing fail the import, so a
// half-applied file is reported rather than silently accepted.
func (b *Book) ImportBalances(r io.Reader, rules []ImportRule) (int, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return 0, fmt.Errorf("could not parse export file: %w", err)
	}

	updated := 0
	for _, rule := range rules {
		rec := b.FindByName(KindAccount, rule.Account)
		account, ok := rec.(Account)
		if !ok {
			return updated, fmt.Errorf("no account named %q in book", rule.Account)
		}

		jval, err := jsonpath.Get(rule.Path, jobj)
		if err != nil {
			return updated, fmt.Errorf("path %q for account %q: %w", rule.Path, rule.Account, err)
		}
		// jsonpath sometimes returns a list of one answer instead of the answer.
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		val, ok := jval.(float64)
		if !ok {
			return updated, fmt.Errorf("path %q for account %q: not a number: %v", rule.Path, rule.Account, jval)
		}

		account.Balance = M(val, account.Balance.Currency())
		b.replace(account)
		updated++
	}
	return updated, nil
}
