package interp

import "testing"

func classifyText(t *testing.T, text string) Intent {
	t.Helper()
	tokens, err := Normalize(text, monday)
	if err != nil {
		t.Fatalf("Normalize(%q): %v", text, err)
	}
	return Classify(tokens)
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		text    string
		kind    IntentKind
		subtype Subtype
	}{
		{"paid electric bill", Action, SubPay},
		{"pay the water bill", Action, SubPay},
		{"add internet bill due the 15th", Action, SubCreate},
		{"track hockey practice for jake", Action, SubCreate},
		{"dentist appointment is done", Action, SubComplete},
		{"what bills are due this week?", Question, ""},
		{"what are my balances?", Question, ""},
		{"net worth", Question, ""},
		{"blue banana", Unknown, ""},
	}
	for _, tc := range testCases {
		intent := classifyText(t, tc.text)
		if intent.Kind != tc.kind {
			t.Errorf("Classify(%q).Kind = %s, want %s", tc.text, intent.Kind, tc.kind)
			continue
		}
		if tc.kind == Action && intent.Subtype != tc.subtype {
			t.Errorf("Classify(%q).Subtype = %q, want %q", tc.text, intent.Subtype, tc.subtype)
		}
	}
}

func TestClassifyQuestionMarkBreaksTies(t *testing.T) {
	// One action keyword against one question marker is a tie; the marker
	// must pull it toward a question, never an action.
	intent := classifyText(t, "pay electric?")
	if intent.Kind != Question {
		t.Errorf("tied intent with question marker = %s, want question", intent.Kind)
	}

	// The same tie without a marker stays unknown.
	tokens := []Token{
		{Kind: Word, Text: "pay"},
		{Kind: Word, Text: "what"},
		{Kind: Word, Text: "now"},
	}
	// "what" is leading-position evidence only, so force the tie directly.
	tokens[0], tokens[1] = tokens[1], tokens[0]
	if intent := Classify(tokens); intent.Kind != Unknown {
		t.Errorf("tied intent without marker = %s, want unknown", intent.Kind)
	}
}

func TestClassifyCategoryWordsYieldToActions(t *testing.T) {
	// "due" reads as question evidence on its own, but an action verb owns
	// the sentence when no other question signal is present.
	if intent := classifyText(t, "add rent due the 1st"); intent.Kind != Action {
		t.Errorf("creation with a due date = %s, want action", intent.Kind)
	}
	if intent := classifyText(t, "what is due?"); intent.Kind != Question {
		t.Errorf("due question = %s, want question", intent.Kind)
	}
}

func TestClassifySubtypePrecedence(t *testing.T) {
	// One keyword from each action family: pay outranks complete outranks
	// create.
	intent := classifyText(t, "log payment done")
	if intent.Kind != Action || intent.Subtype != SubPay {
		t.Errorf("got %s/%s, want action/pay", intent.Kind, intent.Subtype)
	}
}

func TestClassifyEvidenceIndices(t *testing.T) {
	tokens, err := Normalize("paid electric bill", monday)
	if err != nil {
		t.Fatal(err)
	}
	intent := Classify(tokens)
	if len(intent.Evidence) != 1 || intent.Evidence[0] != 0 {
		t.Errorf("evidence = %v, want the index of %q", intent.Evidence, "paid")
	}
}
