package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/lingo/internal/ngram"
	"github.com/MeKo-Tech/lingo/lang"
)

// corpus is a small English sample with well-known letter statistics:
// 100 letters in total, 20 distinct.
const corpus = "these sentences are intended for testing purposes " +
	"do not use them in production " +
	"by the way they consist of words in total"

func TestTrainUnigramFrequencies(t *testing.T) {
	trained, err := Train(lang.English, 1, corpus)
	require.NoError(t, err)

	assert.Equal(t, 20, trained.Distinct())

	// Unigram frequencies are counts over the total letter count.
	tests := []struct {
		ngram ngram.Ngram
		want  float64
	}{
		{"a", 3.0 / 100},
		{"b", 1.0 / 100},
		{"e", 14.0 / 100},
		{"n", 10.0 / 100},
		{"t", 13.0 / 100},
	}
	for _, tt := range tests {
		assert.InEpsilon(t, tt.want, trained.RelativeFrequency(tt.ngram), 1e-12, string(tt.ngram))
	}
	assert.Zero(t, trained.RelativeFrequency("z"))
}

func TestTrainBigramFrequencies(t *testing.T) {
	trained, err := Train(lang.English, 2, corpus)
	require.NoError(t, err)

	// Bigram frequencies are counts over the count of the unigram prefix.
	tests := []struct {
		ngram ngram.Ngram
		want  float64
	}{
		{"th", 4.0 / 13},
		{"he", 4.0 / 4},
		{"in", 4.0 / 6},
		{"se", 4.0 / 10},
		{"by", 1.0 / 1},
	}
	for _, tt := range tests {
		assert.InEpsilon(t, tt.want, trained.RelativeFrequency(tt.ngram), 1e-12, string(tt.ngram))
	}
}

func TestTrainRejectsBadOrder(t *testing.T) {
	_, err := Train(lang.English, 0, corpus)
	assert.Error(t, err)
	_, err = Train(lang.English, 6, corpus)
	assert.Error(t, err)
}

func TestTrainingModelRuntime(t *testing.T) {
	trained, err := Train(lang.English, 3, corpus)
	require.NoError(t, err)

	m := trained.Runtime()
	assert.Equal(t, lang.English, m.Language())
	assert.Equal(t, 3, m.Order())
	assert.Equal(t, trained.Distinct(), m.Distinct())

	// "th" is always followed by "e" in the corpus, so "the" has relative
	// frequency 1 and a log-probability of exactly zero.
	p, ok := m.Lookup("the")
	require.True(t, ok)
	assert.Zero(t, p)

	// "ten" occurs 2 times against 3 occurrences of its prefix "te".
	p, ok = m.Lookup("ten")
	require.True(t, ok)
	assert.InEpsilon(t, math.Log(2.0/3.0), p, 1e-12)
	assert.Negative(t, p)

	_, ok = m.Lookup("xyz")
	assert.False(t, ok)
}

func TestSerializeRoundTrip(t *testing.T) {
	for order := ngram.MinOrder; order <= ngram.MaxOrder; order++ {
		trained, err := Train(lang.English, order, corpus)
		require.NoError(t, err)

		data, err := json.Marshal(trained)
		require.NoError(t, err)

		m, err := Parse(data, lang.English, order)
		require.NoError(t, err)
		assert.Equal(t, trained.Distinct(), m.Distinct(), "order %d", order)
	}
}

func TestParseRejectsCorruptPayloads(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{`},
		{"unknown language", `{"language":"Elvish","ngrams":{}}`},
		{"wrong language", `{"language":"German","ngrams":{}}`},
		{"malformed fraction", `{"language":"English","ngrams":{"abc":"th"}}`},
		{"zero denominator", `{"language":"English","ngrams":{"1/0":"th"}}`},
		{"frequency above one", `{"language":"English","ngrams":{"3/2":"th"}}`},
		{"wrong order ngram", `{"language":"English","ngrams":{"1/2":"abc"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), lang.English, 2)
			assert.Error(t, err)
		})
	}
}
