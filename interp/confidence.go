package interp

// Confidence weights and threshold. These are the tunable constants that
// gate automatic execution against asking the user one more thing.
const (
	// WeightClassifier weights the normalized keyword-evidence count.
	WeightClassifier = 0.4
	// WeightCompleteness weights the fraction of required entity slots filled.
	WeightCompleteness = 0.4
	// WeightQuality weights the mean similarity of the filled entity matches.
	WeightQuality = 0.2

	// ConfidenceThreshold separates "confident" from "needs clarification".
	ConfidenceThreshold = 0.55

	// evidenceSaturation is the keyword-evidence count at which the
	// classifier signal is considered fully established.
	evidenceSaturation = 3
)

// Confidence combines classifier strength, entity-slot completeness and
// entity-match quality into a single value in [0,1].
//
// The combination is a weighted sum, so adding corroborating evidence
// (another keyword hit, a better or additional entity match) never lowers
// the result.
func Confidence(intent Intent, required int, filled []Match) float64 {
	strength := float64(len(intent.Evidence)) / evidenceSaturation
	if strength > 1 {
		strength = 1
	}

	completeness := 1.0 // no required slots: vacuously complete
	if required > 0 {
		n := len(filled)
		if n > required {
			n = required
		}
		completeness = float64(n) / float64(required)
	}

	quality := 0.0
	if len(filled) > 0 {
		for _, m := range filled {
			quality += m.Score
		}
		quality /= float64(len(filled))
	}

	return WeightClassifier*strength + WeightCompleteness*completeness + WeightQuality*quality
}
