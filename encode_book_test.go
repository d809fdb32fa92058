package homefin

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeBook(t *testing.T) {
	b := sampleBook(t)

	var buf bytes.Buffer
	if err := EncodeBook(&buf, b); err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeBook(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if decoded.Len() != b.Len() {
		t.Fatalf("decoded %d records, want %d", decoded.Len(), b.Len())
	}
	for _, orig := range b.Records() {
		got := decoded.Record(orig.Ref())
		if got == nil {
			t.Errorf("%s %q lost in round trip", orig.What(), orig.Label())
			continue
		}
		if got.What() != orig.What() || got.Label() != orig.Label() {
			t.Errorf("round trip changed %+v into %+v", orig, got)
		}
	}

	// Typed fields survive, not just the common ones.
	bill := decoded.FindByName(KindBill, "Electric").(Bill)
	if bill.Amount.AsCents() != 14200 || bill.DueDay != 15 {
		t.Errorf("decoded bill = %+v", bill)
	}
	card := decoded.FindByName(KindCard, "Visa").(Card)
	if card.Limit.AsCents() != 1000000 {
		t.Errorf("decoded card = %+v", card)
	}
}

func TestEncodeIsStable(t *testing.T) {
	b := sampleBook(t)
	var first, second bytes.Buffer
	if err := EncodeBook(&first, b); err != nil {
		t.Fatal(err)
	}
	if err := EncodeBook(&second, b); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Error("two encodings of the same book differ")
	}
}

func TestDecodeSkipsEmptyLines(t *testing.T) {
	in := `{"record":"deadline","id":"d1","name":"Taxes","due":"2026-02-15"}

{"record":"activity","id":"a1","name":"Hockey","cost":{"currency":"USD","amount":50}}
`
	b, err := DecodeBook(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 2 {
		t.Errorf("decoded %d records, want 2", b.Len())
	}
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	in := `{"record":"llama","id":"x","name":"X"}`
	if _, err := DecodeBook(strings.NewReader(in)); err == nil {
		t.Error("unknown record kind did not fail")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeBook(strings.NewReader("not json at all")); err == nil {
		t.Error("garbage line did not fail")
	}
}
