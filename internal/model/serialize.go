package model

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/lingo/internal/ngram"
	"github.com/MeKo-Tech/lingo/lang"
)

// payload is the serialized model form: n-grams sharing the same relative
// frequency are space-joined under a single "numerator/denominator" key.
type payload struct {
	Language string            `json:"language"`
	Ngrams   map[string]string `json:"ngrams"`
}

// MarshalJSON serializes the training model in the packaged asset format.
func (t *TrainingModel) MarshalJSON() ([]byte, error) {
	groups := make(map[string][]string)
	for ng, f := range t.relative {
		key := f.String()
		groups[key] = append(groups[key], string(ng))
	}
	ngrams := make(map[string]string, len(groups))
	for key, members := range groups {
		sort.Strings(members)
		ngrams[key] = strings.Join(members, " ")
	}
	return json.Marshal(payload{Language: t.language.String(), Ngrams: ngrams})
}

// Parse decodes a serialized model payload into its runtime form. The payload
// must belong to the given language and all its n-grams must have the given
// order; anything else means the asset is corrupt.
func Parse(data []byte, language lang.Language, order int) (*Model, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("model: corrupt payload: %w", err)
	}
	payloadLang, ok := lang.FromName(p.Language)
	if !ok {
		return nil, fmt.Errorf("model: payload names unknown language %q", p.Language)
	}
	if payloadLang != language {
		return nil, fmt.Errorf("model: payload is for %s, want %s", payloadLang, language)
	}

	probs := make(map[ngram.Ngram]float64)
	for key, members := range p.Ngrams {
		logProb, err := parseFraction(key)
		if err != nil {
			return nil, err
		}
		for _, member := range strings.Split(members, " ") {
			if len([]rune(member)) != order {
				return nil, fmt.Errorf("model: n-gram %q does not have order %d", member, order)
			}
			probs[ngram.Ngram(member)] = logProb
		}
	}
	return &Model{language: language, order: order, probs: probs}, nil
}

func parseFraction(key string) (float64, error) {
	numStr, denStr, ok := strings.Cut(key, "/")
	if !ok {
		return 0, fmt.Errorf("model: malformed frequency %q", key)
	}
	num, err := strconv.ParseUint(numStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("model: malformed frequency %q: %w", key, err)
	}
	den, err := strconv.ParseUint(denStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("model: malformed frequency %q: %w", key, err)
	}
	if num == 0 || den == 0 || num > den {
		return 0, fmt.Errorf("model: frequency %q out of range", key)
	}
	return math.Log(float64(num) / float64(den)), nil
}
