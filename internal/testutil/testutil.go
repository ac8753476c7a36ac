// Package testutil provides corpus fixtures and model loaders for tests.
package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/lingo/internal/model"
	"github.com/MeKo-Tech/lingo/internal/ngram"
	"github.com/MeKo-Tech/lingo/lang"
)

// GetProjectRoot returns the project root directory by finding go.mod.
func GetProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("failed to get caller information")
	}
	dir := filepath.Dir(filename)

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find go.mod file starting from %s", filepath.Dir(filename))
}

// CorpusDir returns the path to the corpus fixture directory.
func CorpusDir(tb testing.TB) string {
	tb.Helper()

	root, err := GetProjectRoot()
	require.NoError(tb, err, "Failed to find project root")

	return filepath.Join(root, "testdata", "corpora")
}

// Corpus returns the raw corpus fixture text for a language.
func Corpus(tb testing.TB, language lang.Language) string {
	tb.Helper()

	path := filepath.Join(CorpusDir(tb), language.IsoCode639_1()+".txt")
	data, err := os.ReadFile(path)
	require.NoError(tb, err, "Failed to read corpus for %s", language)

	return string(data)
}

// CorpusSentence returns the nth line of a language's corpus fixture.
func CorpusSentence(tb testing.TB, language lang.Language, n int) string {
	tb.Helper()

	lines := strings.Split(strings.TrimSpace(Corpus(tb, language)), "\n")
	require.Less(tb, n, len(lines), "corpus for %s has only %d lines", language, len(lines))

	return lines[n]
}

// NewCorpusLoader builds an in-memory model loader with models of every
// order trained from the corpus fixtures of the given languages.
func NewCorpusLoader(tb testing.TB, languages ...lang.Language) *model.MemoryLoader {
	tb.Helper()

	loader := model.NewMemoryLoader()
	for _, language := range languages {
		normalized := ngram.Normalize(Corpus(tb, language), language.Scripts())
		for order := ngram.MinOrder; order <= ngram.MaxOrder; order++ {
			require.NoError(tb, loader.AddTrained(language, order, normalized))
		}
	}
	return loader
}
