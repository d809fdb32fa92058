package interp

import (
	"errors"
	"strings"

	"github.com/etnz/homefin/date"
	"github.com/shopspring/decimal"
)

// ErrEmptyInput reports that no tokens could be produced from the input.
var ErrEmptyInput = errors.New("empty input")

// maxDatePhrase is the longest date phrase, in words, the normalizer joins
// before resolving it ("on the 5th").
const maxDatePhrase = 3

// Normalize lowercases, strips punctuation noise, and tokenizes raw input
// into a canonical token sequence. Currency literals become Amount tokens in
// integer cents, date phrases resolve to absolute dates against 'now', and
// everything else remains Word tokens. A trailing "?" survives as a
// punctuation token because the classifier treats it as a question marker.
func Normalize(text string, now date.Date) ([]Token, error) {
	words := split(strings.ToLower(text))
	if len(words) == 0 {
		return nil, ErrEmptyInput
	}

	tokens := make([]Token, 0, len(words))
	for i := 0; i < len(words); {
		// Date phrases first: "march 15" must not leave "15" behind as an amount.
		if tok, consumed := scanDate(words[i:], now); consumed > 0 {
			tokens = append(tokens, tok)
			i += consumed
			continue
		}
		if tok, consumed, ok := scanAmount(words[i:]); ok {
			tokens = append(tokens, tok)
			i += consumed
			continue
		}
		kind := Word
		if words[i] == "?" {
			kind = Punct
		}
		tokens = append(tokens, Token{Kind: kind, Text: words[i]})
		i++
	}
	return tokens, nil
}

// split breaks the lowercased text into words, detaching a trailing "?" as
// its own word and dropping other edge punctuation.
func split(text string) []string {
	var words []string
	for _, f := range strings.Fields(text) {
		question := false
		for strings.HasSuffix(f, "?") {
			f = strings.TrimSuffix(f, "?")
			question = true
		}
		f = strings.Trim(f, ".,;:!\"'()")
		if f != "" {
			words = append(words, f)
		}
		if question {
			words = append(words, "?")
		}
	}
	return words
}

// scanDate tries to resolve a date phrase starting at words[0], longest
// phrase first, and returns the token and the number of words consumed.
func scanDate(words []string, now date.Date) (Token, int) {
	max := maxDatePhrase
	if len(words) < max {
		max = len(words)
	}
	for n := max; n >= 1; n-- {
		phrase := strings.Join(words[:n], " ")
		if d, ok := date.Resolve(phrase, now); ok {
			return Token{Kind: DateTok, Text: phrase, Date: d}, n
		}
	}
	return Token{}, 0
}

// scanAmount tries to read a currency literal starting at words[0]:
// "$142", "142.00", "142 dollars", "14200 cents". Negative or unparseable
// magnitudes yield an AmountInvalid token rather than being dropped.
func scanAmount(words []string) (Token, int, bool) {
	w := words[0]

	if rest, ok := strings.CutPrefix(w, "$"); ok {
		cents, valid := parseCents(rest, false)
		if !valid {
			return Token{Kind: AmountInvalid, Text: w}, 1, true
		}
		return Token{Kind: Amount, Text: w, Cents: cents}, 1, true
	}

	if len(words) > 1 {
		unit := words[1]
		if unit == "dollar" || unit == "dollars" {
			text := w + " " + unit
			cents, valid := parseCents(w, false)
			if !valid {
				return Token{Kind: AmountInvalid, Text: text}, 2, true
			}
			return Token{Kind: Amount, Text: text, Cents: cents}, 2, true
		}
		if unit == "cent" || unit == "cents" {
			text := w + " " + unit
			cents, valid := parseCents(w, true)
			if !valid {
				return Token{Kind: AmountInvalid, Text: text}, 2, true
			}
			return Token{Kind: Amount, Text: text, Cents: cents}, 2, true
		}
	}

	// A bare number is only a currency literal when it has a fractional
	// part ("142.00", "142.5"); bare integers stay words, they are just as
	// likely to be part of a name or a count.
	if strings.ContainsAny(w, ".") && isNumeric(w) {
		cents, valid := parseCents(w, false)
		if !valid {
			return Token{Kind: AmountInvalid, Text: w}, 1, true
		}
		return Token{Kind: Amount, Text: w, Cents: cents}, 1, true
	}
	if strings.HasPrefix(w, "-") && isNumeric(strings.TrimPrefix(w, "-")) {
		return Token{Kind: AmountInvalid, Text: w}, 1, true
	}

	return Token{}, 0, false
}

func isNumeric(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return false
		}
	}
	return true
}

// parseCents parses a magnitude into integer cents. When minor is true the
// value is already in cents. It rejects negative values and more than two
// decimal places.
func parseCents(s string, minor bool) (int64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	v, err := decimal.NewFromString(s)
	if err != nil || v.IsNegative() {
		return 0, false
	}
	if minor {
		if v.Exponent() < 0 {
			return 0, false // fractional cents make no sense
		}
		return v.IntPart(), true
	}
	if v.Exponent() < -2 {
		return 0, false
	}
	return v.Shift(2).IntPart(), true
}
