package pipeline

import (
	"context"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/lingo/lang"
)

func TestDetectAllEmpty(t *testing.T) {
	p := corpusPipeline(t, lang.English, lang.German)

	results, err := p.DetectAll(nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDetectAllPreservesOrder(t *testing.T) {
	p := corpusPipeline(t, lang.English, lang.German)

	texts := []string{
		"the cat sleeps on the mat",
		"der Hund und die Katze spielen im Garten",
		"",
		"the weather was nice",
		"das Wetter war schön",
	}
	results, err := p.DetectAll(texts)
	require.NoError(t, err)
	require.Len(t, results, len(texts))

	assert.Equal(t, lang.English, results[0].Language)
	assert.Equal(t, lang.German, results[1].Language)
	assert.True(t, results[2].Undetermined())
	assert.Equal(t, lang.English, results[3].Language)
	assert.Equal(t, lang.German, results[4].Language)
}

func TestDetectAllMatchesSequential(t *testing.T) {
	p := corpusPipeline(t, lang.English, lang.German, lang.Dutch)

	texts := []string{
		"the cat sleeps on the mat",
		"der Hund und die Katze",
		"de hond en de kat spelen in de tuin",
		"the weather was nice and the water was warm",
		"12345",
		"das Wetter war gut",
	}

	sequential := make([]Result, len(texts))
	for i, text := range texts {
		r, err := p.Detect(text)
		require.NoError(t, err)
		sequential[i] = r
	}

	parallel, err := p.DetectAllContext(context.Background(), texts, BatchConfig{MaxWorkers: 4})
	require.NoError(t, err)
	assert.Equal(t, sequential, parallel)
}

func TestDetectAllSingleWorker(t *testing.T) {
	p := corpusPipeline(t, lang.English, lang.German)

	texts := []string{"the cat", "der Hund"}
	results, err := p.DetectAllContext(context.Background(), texts, BatchConfig{MaxWorkers: 1})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, lang.English, results[0].Language)
	assert.Equal(t, lang.German, results[1].Language)
}

func TestDetectAllCancellation(t *testing.T) {
	p := corpusPipeline(t, lang.English, lang.German)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	texts := make([]string, 64)
	for i := range texts {
		texts[i] = "the cat sleeps on the mat"
	}

	// Unscheduled work is discarded on cancellation; work already enqueued
	// may still complete, so either outcome of the race is acceptable.
	results, err := p.DetectAllContext(ctx, texts, BatchConfig{MaxWorkers: 2})
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, results)
	} else {
		assert.Len(t, results, len(texts))
	}
}

func TestDetectAllPropertyMatchesSequential(t *testing.T) {
	p := corpusPipeline(t, lang.English, lang.German)

	properties := gopter.NewProperties(nil)
	properties.Property("batch equals N single detections in order", prop.ForAll(
		func(texts []string) bool {
			parallel, err := p.DetectAllContext(context.Background(), texts, BatchConfig{MaxWorkers: 3})
			if err != nil {
				return false
			}
			for i, text := range texts {
				single, err := p.Detect(text)
				if err != nil {
					return false
				}
				if !reflect.DeepEqual(parallel[i], single) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(8, gen.OneConstOf(
			"the cat sleeps on the mat",
			"der Hund und die Katze",
			"the weather was nice",
			"das Wetter war gut",
			"",
			"12345",
		)),
	))
	properties.TestingRun(t)
}
