package interp

import "fmt"

// UnsupportedActionError reports that a classified action subtype has no
// dispatcher mapping. This is a programming-level gap, not a user mistake.
type UnsupportedActionError struct {
	Subtype Subtype
}

func (e *UnsupportedActionError) Error() string {
	return fmt.Sprintf("no dispatcher mapping for action subtype %q", e.Subtype)
}

// MissingEntityError reports that a required entity slot was not resolved.
// It names the slot so a caller can re-prompt narrowly.
type MissingEntityError struct {
	Slot    string
	Subtype Subtype
}

func (e *MissingEntityError) Error() string {
	return fmt.Sprintf("%s action needs a %s, none was recognized", e.Subtype, e.Slot)
}

// UnrecognizedQueryError reports a Question that matched no query category.
// It carries the original text so a caller can offer a full-text fallback.
type UnrecognizedQueryError struct {
	Text string
}

func (e *UnrecognizedQueryError) Error() string {
	return fmt.Sprintf("no query category matches %q", e.Text)
}
