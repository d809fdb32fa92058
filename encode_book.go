package homefin

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeBook decodes records from a stream of JSONL data, one record per
// line, dispatching on the "record" tag, and returns the populated Book.
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}
		kind, err := ParseKind(identifier.Record)
		if err != nil {
			return nil, fmt.Errorf("in line %q: %w", string(lineBytes), err)
		}

		var decoded Record
		switch kind {
		case KindBill:
			var v Bill
			if err := json.Unmarshal(lineBytes, &v); err != nil {
				return nil, err
			}
			decoded = v
		case KindAccount:
			var v Account
			if err := json.Unmarshal(lineBytes, &v); err != nil {
				return nil, err
			}
			decoded = v
		case KindCard:
			var v Card
			if err := json.Unmarshal(lineBytes, &v); err != nil {
				return nil, err
			}
			decoded = v
		case KindMortgage:
			var v Mortgage
			if err := json.Unmarshal(lineBytes, &v); err != nil {
				return nil, err
			}
			decoded = v
		case KindInvestment:
			var v Investment
			if err := json.Unmarshal(lineBytes, &v); err != nil {
				return nil, err
			}
			decoded = v
		case KindDeadline:
			var v Deadline
			if err := json.Unmarshal(lineBytes, &v); err != nil {
				return nil, err
			}
			decoded = v
		case KindActivity:
			var v Activity
			if err := json.Unmarshal(lineBytes, &v); err != nil {
				return nil, err
			}
			decoded = v
		case KindPayment:
			var v Payment
			if err := json.Unmarshal(lineBytes, &v); err != nil {
				return nil, err
			}
			decoded = v
		}

		if err := book.Append(decoded); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return book, nil
}

// EncodeRecord writes one record as a single JSONL line.
func EncodeRecord(w io.Writer, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("could not marshal %s record: %w", rec.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeBook writes the whole book in canonical JSONL form, one record per
// line, in insertion order.
func EncodeBook(w io.Writer, book *Book) error {
	for _, rec := range book.Records() {
		if err := EncodeRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}
