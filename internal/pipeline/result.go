package pipeline

import (
	"sort"

	"github.com/MeKo-Tech/lingo/lang"
)

// ConfidenceValue is one ranked candidate with its confidence in [0, 1].
type ConfidenceValue struct {
	Language   lang.Language `json:"language"`
	Confidence float64       `json:"confidence"`
}

// Result is the verdict for a single text. Exactly one of three shapes holds:
// a single language (Language set, Ambiguous false), an ambiguous ranked list
// (Language Unknown, Ambiguous true, Candidates populated), or undetermined
// (Language Unknown, no candidates).
type Result struct {
	Language   lang.Language     `json:"language"`
	Confidence float64           `json:"confidence"`
	Ambiguous  bool              `json:"ambiguous,omitempty"`
	Candidates []ConfidenceValue `json:"candidates,omitempty"`
}

// Undetermined reports whether no language could be determined.
func (r Result) Undetermined() bool {
	return r.Language == lang.Unknown && !r.Ambiguous
}

func undeterminedResult() Result {
	return Result{Language: lang.Unknown}
}

// decide ranks the scored candidates and converts raw combined
// log-probabilities into confidence values. The best candidate gets 1.0 and
// every other candidate the ratio bestScore/score (both are negative log
// sums, so worse candidates approach 0). If the top-two gap is below the
// minimum relative distance the verdict is ambiguous.
func decide(scores map[lang.Language]float64, minimumRelativeDistance float64) Result {
	ranked := make([]ConfidenceValue, 0, len(scores))
	for l, s := range scores {
		ranked = append(ranked, ConfidenceValue{Language: l, Confidence: s})
	}
	// Sort by raw score descending; ties break on language order so
	// detection stays deterministic.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].Language < ranked[j].Language
	})

	best := ranked[0].Confidence
	for i := range ranked {
		ranked[i].Confidence = relativeConfidence(best, ranked[i].Confidence)
	}

	result := Result{
		Language:   ranked[0].Language,
		Confidence: ranked[0].Confidence,
		Candidates: ranked,
	}
	if len(ranked) > 1 && ranked[0].Confidence-ranked[1].Confidence < minimumRelativeDistance {
		result.Language = lang.Unknown
		result.Confidence = 0
		result.Ambiguous = true
	}
	return result
}

// relativeConfidence maps a raw combined log-probability to [0, 1] relative
// to the best score of the same query.
func relativeConfidence(best, score float64) float64 {
	if score == best {
		return 1.0
	}
	return best / score
}
