package agent

import (
	"context"
	"fmt"

	"github.com/etnz/homefin"
	"github.com/etnz/homefin/date"
	"github.com/etnz/homefin/docs"
	"github.com/etnz/homefin/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert holding the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a parent managing the household finances: bills, bank accounts, credit
			cards, deadlines and the children's activities. He is here primarily to know what
			is due, what things cost, and to keep his records straight.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request. Keep answers short and concrete, with amounts and dates.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// BookLoader loads the user's current book. The bookkeeper reads the book
// through this function on every call so it always sees live state.
type BookLoader func() (*homefin.Book, error)

// NewBookkeeper creates the expert in charge of reading the user's records.
func NewBookkeeper(load BookLoader) *Expert {
	lib := []Function{
		dueSoonFunc(load),
		balancesFunc(load),
		netWorthFunc(load),
		recordsFunc(load),
	}
	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's household
		records: bills, accounts, cards, mortgages, investments, deadlines and activities.
		He can report what is due, the balances, and the household net worth.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's household records.
				You know how to use the Tools to extract relevant information about the
				user's bills, accounts, cards, deadlines and activities. You are part of
				a team of experts; they might ask you questions in approximative
				language, pardon it and figure out what they meant.

				Use the available tools to get information about the user's records:
				  - what is due soon and what is overdue
				  - account and card balances
				  - net worth
				  - the list of records of a given kind
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Run  func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Run(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// respond builds the function response, folding a markdown rendering or an
// error into the shape the model expects.
func respond(id, name, output string, err error) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
	if err != nil {
		fresp.Response["error"] = err.Error()
		return fresp
	}
	fresp.Response["output"] = output
	return fresp
}

func dueSoonFunc(load BookLoader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "DueSoon",
			Description: `DueSoon lists the bills and deadlines falling due within the next days,
			and anything already overdue, with amounts and dates.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"days": {
						Type:        genai.TypeInteger,
						Description: "Number of days ahead to look. 7 by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted list of everything due in the window.",
			},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			days := 7
			if v, ok := args["days"].(float64); ok && v > 0 {
				days = int(v)
			}
			book, err := load()
			if err != nil {
				return respond(id, "DueSoon", "", err)
			}
			now := date.Today()
			window := date.Range{From: now, To: now.Add(days)}
			out := renderer.DueMarkdown(window, book.DueWithin(window), book.Overdue(now))
			return respond(id, "DueSoon", out, nil)
		},
	}
}

func balancesFunc(load BookLoader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Balances",
			Description: `Balances reports the current balance of every bank account and credit card.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of account and card balances.",
			},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			book, err := load()
			if err != nil {
				return respond(id, "Balances", "", err)
			}
			return respond(id, "Balances", renderer.BalancesMarkdown(book.Balances()), nil)
		},
	}
}

func netWorthFunc(load BookLoader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "NetWorth",
			Description: `NetWorth computes the household net worth: accounts and investments
			minus cards and mortgages.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted net worth statement.",
			},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			book, err := load()
			if err != nil {
				return respond(id, "NetWorth", "", err)
			}
			return respond(id, "NetWorth", renderer.NetWorthMarkdown(book.NetWorth()), nil)
		},
	}
}

func recordsFunc(load BookLoader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Records",
			Description: `Records lists every record of a given kind with its display name.

			Valid kinds:

			` + must(docs.GetTopic("records")),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"kind": {
						Type:        genai.TypeString,
						Description: "The record kind: bill, account, card, mortgage, investment, deadline or activity.",
					},
				},
				Required: []string{"kind"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted list of the records of that kind.",
			},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			skind, ok := args["kind"].(string)
			if !ok {
				return respond(id, "Records", "", fmt.Errorf("argument 'kind' is not a string but %T", args["kind"]))
			}
			kind, err := homefin.ParseKind(skind)
			if err != nil {
				return respond(id, "Records", "", err)
			}
			book, err := load()
			if err != nil {
				return respond(id, "Records", "", err)
			}
			var records []homefin.Record
			for _, r := range book.Records() {
				if r.What() == kind {
					records = append(records, r)
				}
			}
			return respond(id, "Records", renderer.RecordsMarkdown(kind, records), nil)
		},
	}
}
