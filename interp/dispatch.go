package interp

import (
	"strings"
	"unicode"

	"github.com/etnz/homefin"
	"github.com/etnz/homefin/date"
)

// Executor runs a structured command against the services layer. The
// interpreter only builds commands; execution and persistence stay behind
// this interface.
type Executor interface {
	Execute(cmd homefin.Command) (homefin.ExecutionResult, error)
}

// Creation target hints, taken over from the original vocabulary of the
// assistant: when a create intent carries one of these words, it decides
// which record kind gets created.
var (
	billHints = wordSet("bill", "utility", "electric", "water", "gas", "internet",
		"insurance", "subscription", "hoa", "tax", "phone", "cable")
	deadlineHints = wordSet("deadline", "appointment", "dentist", "doctor", "meeting",
		"renewal", "registration")
	activityHints = wordSet("practice", "game", "lesson", "class", "tournament",
		"hockey", "soccer", "gymnastics", "tennis", "baseball", "basketball", "swimming")
)

// subtypeKinds restricts which entity kinds an action subtype considers when
// resolving its required slot: a pay intent only pays bills or cards, a
// complete intent only completes deadlines.
var subtypeKinds = map[Subtype][]homefin.Kind{
	SubPay:      {homefin.KindBill, homefin.KindCard},
	SubComplete: {homefin.KindDeadline},
}

// slotName names the required entity slot of an action subtype, for error
// messages and clarification prompts.
func slotName(sub Subtype) string {
	switch sub {
	case SubPay:
		return "bill"
	case SubComplete:
		return "deadline"
	default:
		return "name"
	}
}

// resolveSlot picks the entity match filling the subtype's required slot.
// Matches of foreign kinds are filtered out first; among the remaining ones
// the highest score wins.
func resolveSlot(sub Subtype, matches []Match) (Match, bool) {
	kinds := subtypeKinds[sub]
	var best Match
	found := false
	for _, m := range matches {
		for _, k := range kinds {
			if m.Kind == k && (!found || m.Score > best.Score) {
				best, found = m, true
			}
		}
	}
	return best, found
}

// Dispatch maps a recognized Action intent plus its extracted entities into
// exactly one structured command. It does not execute anything.
func Dispatch(intent Intent, tokens []Token, matches []Match, now date.Date) (homefin.Command, error) {
	amount, hasAmount := firstAmount(tokens)
	when, hasDate := firstDate(tokens)
	if !hasDate {
		when = now
	}

	switch intent.Subtype {
	case SubPay:
		m, ok := resolveSlot(SubPay, matches)
		if !ok {
			return nil, &MissingEntityError{Slot: slotName(SubPay), Subtype: SubPay}
		}
		if m.Kind == homefin.KindCard {
			return homefin.NewPayCard(m.Id, amount, when), nil
		}
		return homefin.NewPayBill(m.Id, amount, when), nil

	case SubComplete:
		m, ok := resolveSlot(SubComplete, matches)
		if !ok {
			return nil, &MissingEntityError{Slot: slotName(SubComplete), Subtype: SubComplete}
		}
		return homefin.NewCompleteDeadline(m.Id, now), nil

	case SubCreate:
		name := remainderName(tokens, intent)
		switch {
		case hasHint(tokens, activityHints):
			child := childName(tokens)
			return homefin.NewCreateActivity(name, child, amount, now), nil
		case hasHint(tokens, deadlineHints) && !hasAmount:
			due := when
			if !hasDate {
				due = now
			}
			return homefin.NewCreateDeadline(name, due, now), nil
		default:
			// Money involved, or bill vocabulary: default to a bill, like
			// the original assistant did.
			dueDay := 0
			if hasDate {
				dueDay = when.Day()
			}
			return homefin.NewCreateBill(name, amount, dueDay, recurrence(tokens), now), nil
		}

	default:
		return nil, &UnsupportedActionError{Subtype: intent.Subtype}
	}
}

func firstAmount(tokens []Token) (homefin.Money, bool) {
	for _, t := range tokens {
		if t.Kind == Amount {
			return homefin.Cents(t.Cents), true
		}
	}
	return homefin.Money{}, false
}

func firstDate(tokens []Token) (date.Date, bool) {
	for _, t := range tokens {
		if t.Kind == DateTok {
			return t.Date, true
		}
	}
	return date.Date{}, false
}

func hasHint(tokens []Token, hints map[string]bool) bool {
	for _, t := range tokens {
		if t.Kind == Word && hints[t.Text] {
			return true
		}
	}
	return false
}

// recurrence returns the first recurrence keyword as a period, monthly by
// default.
func recurrence(tokens []Token) date.Period {
	for _, t := range tokens {
		if t.Kind != Word {
			continue
		}
		switch t.Text {
		case "weekly", "monthly", "quarterly", "yearly", "annually":
			p, _ := date.ParsePeriod(t.Text)
			return p
		}
	}
	return date.Monthly
}

// childName returns the word following "for", the original's convention for
// naming the child an activity belongs to.
func childName(tokens []Token) string {
	for i, t := range tokens {
		if t.Kind == Word && t.Text == "for" && i+1 < len(tokens) && tokens[i+1].Kind == Word {
			return title(tokens[i+1].Text)
		}
	}
	return ""
}

// remainderName builds the display name of a record to create from the word
// tokens that were not consumed as evidence, amounts, dates or noise.
func remainderName(tokens []Token, intent Intent) string {
	evidence := make(map[int]bool, len(intent.Evidence))
	for _, i := range intent.Evidence {
		evidence[i] = true
	}
	var words []string
	skipNext := false
	for i, t := range tokens {
		if skipNext {
			skipNext = false
			continue
		}
		if t.Kind != Word || evidence[i] {
			continue
		}
		switch t.Text {
		case "for":
			skipNext = true // "for Jake" names the child, not the record
			continue
		case "due", "on", "a", "an", "the", "my",
			"weekly", "monthly", "quarterly", "yearly", "annually":
			continue
		}
		words = append(words, title(t.Text))
	}
	return strings.Join(words, " ")
}

func title(w string) string {
	r := []rune(w)
	if len(r) == 0 {
		return w
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
