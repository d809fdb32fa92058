// Package interp turns a free-form line of text into either a structured
// command against the user's financial records or a categorized question
// over them.
//
// The pipeline is strictly sequential: normalize the text into tokens,
// extract entity matches against the live name index, classify the intent,
// score the interpretation's confidence, then fan out into a confident
// action, a confident question, a clarification request or an unknown. All
// relative dates resolve against a caller-supplied reference date, never a
// wall clock, so a given (text, index, now) triple always interprets to the
// same result.
package interp

import (
	"fmt"
	"strings"

	"github.com/etnz/homefin"
	"github.com/etnz/homefin/date"
)

// Outcome is the final state of an interpretation.
type Outcome int

const (
	// OutUnknown means the text expressed neither an action nor a question.
	OutUnknown Outcome = iota
	// OutConfidentAction carries a ready-to-execute command.
	OutConfidentAction
	// OutConfidentQuestion carries a categorized query.
	OutConfidentQuestion
	// OutNeedsClarification means the interpreter needs one more thing from
	// the user. This is a normal result, not an error.
	OutNeedsClarification
)

func (o Outcome) String() string {
	switch o {
	case OutConfidentAction:
		return "confident-action"
	case OutConfidentQuestion:
		return "confident-question"
	case OutNeedsClarification:
		return "needs-clarification"
	default:
		return "unknown"
	}
}

// Clarification describes what is missing or ambiguous, so a caller can
// re-prompt narrowly instead of discarding the whole interpretation.
type Clarification struct {
	Missing    []string // unresolved required slots, by name
	Candidates []Match  // competing matches for an ambiguous slot
	Prompt     string   // a ready-made follow-up question
}

// Result is the interpreter's output for one line of text.
type Result struct {
	Text       string
	Tokens     []Token
	Intent     Intent
	Matches    []Match // entity matches actually considered, in text order
	Confidence float64
	Outcome    Outcome

	Command       homefin.Command // set for OutConfidentAction
	Query         *Query          // set for OutConfidentQuestion
	Clarification *Clarification  // set for OutNeedsClarification
}

// Interpreter is the single entry point of the package.
//
// It holds no state between calls beyond the name source, so concurrent
// interpretation of unrelated inputs is safe as long as each call sees an
// internally consistent index.
type Interpreter struct {
	source NameSource
}

// New returns an interpreter reading names from the given source. The
// source is consulted on every call, so matches always reflect live state.
func New(source NameSource) *Interpreter {
	return &Interpreter{source: source}
}

// Interpret runs the full pipeline on one line of text. The reference date
// 'now' anchors every relative date in the text.
//
// Ambiguity comes back as OutNeedsClarification inside the result; only
// structurally invalid input (empty text, an unmapped subtype, a question
// with no category) is an error.
func (it *Interpreter) Interpret(text string, now date.Date) (*Result, error) {
	tokens, err := Normalize(text, now)
	if err != nil {
		return nil, err
	}

	matches := ExtractEntities(tokens, it.source)
	intent := Classify(tokens)

	// Resolve the query category up front so the intent's subtype is known
	// even when the result is a clarification.
	var query Query
	var categorized bool
	if intent.Kind == Question {
		if query, categorized = Categorize(tokens, now); categorized {
			intent.Subtype = Subtype(query.Category)
		}
	}

	required, filled := slotMatches(intent, matches)
	confidence := Confidence(intent, required, filled)

	r := &Result{
		Text:       text,
		Tokens:     tokens,
		Intent:     intent,
		Matches:    matches,
		Confidence: confidence,
	}

	switch {
	case intent.Kind == Unknown:
		r.Outcome = OutUnknown
		return r, nil

	case intent.Kind == Action && badAmount(tokens) != "":
		// An action around a number that did not parse must not fall back to
		// a default amount. Ask for the number again.
		r.Outcome = OutNeedsClarification
		r.Clarification = &Clarification{
			Missing: []string{"amount"},
			Prompt:  fmt.Sprintf("I could not read the amount %q. How much was it?", badAmount(tokens)),
		}
		return r, nil

	case confidence < ConfidenceThreshold:
		r.Outcome = OutNeedsClarification
		r.Clarification = clarify(intent, required, filled)
		return r, nil

	case intent.Kind == Action:
		// A same-span tie among slot-eligible matches is a genuine ambiguity
		// even above the threshold: ask, never pick one silently.
		if required > 0 {
			if c := tieClarification(filled); c != nil {
				r.Outcome = OutNeedsClarification
				r.Clarification = c
				return r, nil
			}
		}
		cmd, err := Dispatch(intent, tokens, matches, now)
		if err != nil {
			return nil, err
		}
		r.Outcome = OutConfidentAction
		r.Command = cmd
		return r, nil

	default: // Question
		if !categorized {
			return nil, &UnrecognizedQueryError{Text: text}
		}
		r.Outcome = OutConfidentQuestion
		r.Query = &query
		return r, nil
	}
}

// slotMatches returns how many entity slots the intent requires and the
// matches eligible to fill them. Foreign-kind matches never fill an action
// slot: a pay intent only considers bills and cards.
func slotMatches(intent Intent, matches []Match) (required int, filled []Match) {
	if intent.Kind != Action {
		return 0, matches
	}
	kinds, ok := subtypeKinds[intent.Subtype]
	if !ok {
		return 0, matches // create names a new record, no slot to fill
	}
	for _, m := range matches {
		for _, k := range kinds {
			if m.Kind == k {
				filled = append(filled, m)
			}
		}
	}
	return 1, filled
}

// clarify builds the narrow follow-up for a below-threshold interpretation.
func clarify(intent Intent, required int, filled []Match) *Clarification {
	c := &Clarification{}

	if required > 0 && len(filled) == 0 {
		slot := slotName(intent.Subtype)
		c.Missing = append(c.Missing, slot)
		c.Prompt = fmt.Sprintf("Which %s did you mean?", slot)
		return c
	}

	// Competing matches for the same span are an ambiguity worth naming.
	if tie := tieClarification(filled); tie != nil {
		return tie
	}

	c.Prompt = "Could you rephrase that?"
	return c
}

// badAmount returns the text of the first unreadable amount token, if any.
func badAmount(tokens []Token) string {
	for _, t := range tokens {
		if t.Kind == AmountInvalid {
			return t.Text
		}
	}
	return ""
}

// tieClarification detects competing matches covering the same span with the
// same score. The extractor retains such ties on purpose; when the subtype
// filter does not break them either, the user has to.
func tieClarification(filled []Match) *Clarification {
	if len(filled) < 2 {
		return nil
	}
	first := filled[0]
	var tied []Match
	for _, m := range filled {
		if m.Start == first.Start && m.End == first.End && m.Score == first.Score {
			tied = append(tied, m)
		}
	}
	if len(tied) < 2 {
		return nil
	}
	var names []string
	for _, m := range tied {
		names = append(names, fmt.Sprintf("the %s %s", m.Name, m.Kind))
	}
	return &Clarification{
		Candidates: tied,
		Prompt:     fmt.Sprintf("Which one did you mean: %s?", strings.Join(names, " or ")),
	}
}
