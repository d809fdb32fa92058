package interp

// IntentKind classifies what the caller wants.
type IntentKind int

const (
	// Unknown means neither an action nor a question could be read.
	Unknown IntentKind = iota
	// Action is a request to change the user's records.
	Action
	// Question is a request to read the user's records.
	Question
)

func (k IntentKind) String() string {
	switch k {
	case Action:
		return "action"
	case Question:
		return "question"
	default:
		return "unknown"
	}
}

// Subtype is the specific action or question recognized.
type Subtype string

// Action subtypes.
const (
	SubPay      Subtype = "pay"
	SubCreate   Subtype = "create"
	SubComplete Subtype = "complete"
)

// Question subtypes (query categories).
const (
	SubDueSoon  Subtype = "due-soon"
	SubBalance  Subtype = "balance"
	SubNetWorth Subtype = "net-worth"
	SubSchedule Subtype = "schedule"
)

// Keyword families. These are the tunable vocabulary of the classifier;
// changing a family changes what the classifier reacts to, not how.
var (
	payWords      = wordSet("pay", "paid", "payment", "payments", "settled")
	createWords   = wordSet("add", "create", "log", "track", "new")
	completeWords = wordSet("done", "finished", "complete", "completed")
	questionWords = wordSet("what", "when", "which", "where", "how", "who", "is", "are", "do", "does")

	// Category phrases also count as question evidence: "net worth" alone
	// is a question even without a question marker.
	dueWords      = wordSet("due", "upcoming", "overdue")
	balanceWords  = wordSet("balance", "balances")
	scheduleWords = wordSet("schedule", "calendar", "agenda")
)

func wordSet(words ...string) map[string]bool {
	s := make(map[string]bool, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}

// Intent is the classifier's output: the recognized kind and subtype plus
// the token indices that contributed as evidence.
type Intent struct {
	Kind     IntentKind
	Subtype  Subtype
	Evidence []int // indices of contributing tokens
}

// Classify scores the token sequence against the keyword families and
// decides between Action, Question and Unknown.
//
// Ties between an action and a question reading break toward Question when
// a question-mark token is present, otherwise toward the higher evidence
// count; a genuine tie with no question marker yields Unknown.
func Classify(tokens []Token) Intent {
	var payEv, createEv, completeEv, questionEv, categoryEv []int
	questionMark := false

	for i, t := range tokens {
		switch t.Kind {
		case Punct:
			if t.Text == "?" {
				questionMark = true
				questionEv = append(questionEv, i)
			}
			continue
		case Word:
			// fallthrough to the keyword families below
		default:
			continue
		}
		w := t.Text
		if payWords[w] {
			payEv = append(payEv, i)
		}
		if createWords[w] {
			createEv = append(createEv, i)
		}
		if completeWords[w] {
			completeEv = append(completeEv, i)
		}
		leading := i == 0
		if questionWords[w] && leading {
			questionEv = append(questionEv, i)
		}
		if dueWords[w] || balanceWords[w] || scheduleWords[w] {
			categoryEv = append(categoryEv, i)
		}
	}
	// "net worth" as a phrase is category evidence.
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Kind == Word && tokens[i].Text == "net" &&
			tokens[i+1].Kind == Word && tokens[i+1].Text == "worth" {
			categoryEv = append(categoryEv, i, i+1)
		}
	}

	// Pick the strongest action subtype. On an exact tie the precedence is
	// pay, complete, create: the rarer the verb, the stronger the signal.
	actionSub, actionEv := SubPay, payEv
	if len(completeEv) > len(actionEv) {
		actionSub, actionEv = SubComplete, completeEv
	}
	if len(createEv) > len(actionEv) {
		actionSub, actionEv = SubCreate, createEv
	}

	// Category words ("due", "balance"...) read as question evidence only
	// when no action verb claims the sentence: "add internet bill due the
	// 15th" is a creation, "what bills are due?" is a question.
	if len(actionEv) == 0 || len(questionEv) > 0 {
		questionEv = append(questionEv, categoryEv...)
	}

	switch {
	case len(actionEv) == 0 && len(questionEv) == 0:
		return Intent{Kind: Unknown}
	case len(questionEv) > len(actionEv):
		return Intent{Kind: Question, Evidence: questionEv}
	case len(actionEv) > len(questionEv):
		return Intent{Kind: Action, Subtype: actionSub, Evidence: actionEv}
	case questionMark:
		// A tie with an explicit question marker reads as a question.
		return Intent{Kind: Question, Evidence: questionEv}
	default:
		return Intent{Kind: Unknown, Evidence: append(actionEv, questionEv...)}
	}
}
