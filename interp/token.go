package interp

import (
	"fmt"

	"github.com/etnz/homefin/date"
)

// TokenKind classifies a unit of normalized input.
type TokenKind int

const (
	// Word is an unrecognized word, case-folded, trailing punctuation stripped.
	Word TokenKind = iota
	// Amount is a currency literal normalized to integer cents.
	Amount
	// AmountInvalid is a currency literal with a negative or unparseable
	// magnitude. It is kept so later stages can still react to "there was
	// a number here".
	AmountInvalid
	// DateTok is a date phrase resolved to an absolute calendar date.
	DateTok
	// Punct is a standalone punctuation mark, like a trailing "?".
	Punct
)

func (k TokenKind) String() string {
	switch k {
	case Word:
		return "word"
	case Amount:
		return "amount"
	case AmountInvalid:
		return "amount-invalid"
	case DateTok:
		return "date"
	case Punct:
		return "punctuation"
	default:
		panic(fmt.Sprintf("unknown token kind %d", int(k)))
	}
}

// Token is a classified unit of input. Immutable once produced.
type Token struct {
	Kind  TokenKind
	Text  string    // normalized text
	Cents int64     // set for Amount tokens
	Date  date.Date // set for DateTok tokens
}

func (t Token) String() string {
	switch t.Kind {
	case Amount:
		return fmt.Sprintf("%s(%d¢)", t.Kind, t.Cents)
	case DateTok:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Date)
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
}
