package interp

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/etnz/homefin"
)

// MinSimilarity is the floor below which a fuzzy name comparison is not
// considered a match.
const MinSimilarity = 0.6

// maxSpan is the longest run of consecutive word tokens considered as a
// single name candidate.
const maxSpan = 4

// NameSource provides the known-record name index. It must reflect current
// state at call time; *homefin.Book satisfies it.
type NameSource interface {
	Names(kind homefin.Kind) []homefin.NameEntry
}

// entityKinds are the record kinds whose names the extractor matches against.
var entityKinds = []homefin.Kind{
	homefin.KindBill,
	homefin.KindAccount,
	homefin.KindCard,
	homefin.KindDeadline,
	homefin.KindActivity,
}

// Match binds a span of word tokens to a known record.
//
// Competing matches for the same span (equal score, different kinds) are all
// retained; the dispatcher disambiguates them by intent subtype.
type Match struct {
	Kind  homefin.Kind
	Id    string
	Name  string  // the record's display name
	Score float64 // similarity in [0,1]
	Start int     // first token index of the span
	End   int     // one past the last token index
}

func (m Match) overlaps(n Match) bool { return m.Start < n.End && n.Start < m.End }

// ExtractEntities scans the token sequence for contiguous word spans that
// plausibly name a known record. Each span keeps only its best-scoring
// match(es) above MinSimilarity; overlapping spans are resolved by
// preferring the longer span, then the higher score.
func ExtractEntities(tokens []Token, source NameSource) []Match {
	var candidates []Match
	for start := 0; start < len(tokens); start++ {
		if tokens[start].Kind != Word {
			continue
		}
		for end := start + 1; end <= len(tokens) && end-start <= maxSpan; end++ {
			if tokens[end-1].Kind != Word {
				break
			}
			candidates = append(candidates, bestForSpan(tokens, start, end, source)...)
		}
	}

	// Longer spans first, then higher scores; greedily keep what does not
	// overlap an already kept span. Competing matches share a span, so the
	// one that wins keeps its rivals too.
	sort.SliceStable(candidates, func(i, j int) bool {
		if li, lj := candidates[i].End-candidates[i].Start, candidates[j].End-candidates[j].Start; li != lj {
			return li > lj
		}
		return candidates[i].Score > candidates[j].Score
	})

	var kept []Match
	for _, c := range candidates {
		conflict := false
		for _, k := range kept {
			if c.overlaps(k) && !(c.Start == k.Start && c.End == k.End && c.Score == k.Score) {
				conflict = true
				break
			}
		}
		if !conflict {
			kept = append(kept, c)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	return kept
}

// bestForSpan scores the span against every known name and returns the
// best-scoring match(es) above the floor. Equally strong matches across
// different kinds are all returned.
func bestForSpan(tokens []Token, start, end int, source NameSource) []Match {
	var words []string
	for _, t := range tokens[start:end] {
		words = append(words, t.Text)
	}
	span := strings.Join(words, " ")

	var best []Match
	bestScore := MinSimilarity
	for _, kind := range entityKinds {
		for _, entry := range source.Names(kind) {
			score := levenshtein.Similarity(span, strings.ToLower(entry.Name), nil)
			if score < bestScore {
				continue
			}
			m := Match{Kind: kind, Id: entry.Id, Name: entry.Name, Score: score, Start: start, End: end}
			if score > bestScore {
				best = best[:0]
				bestScore = score
			}
			best = append(best, m)
		}
	}
	return best
}
