// Package ngram provides text normalization and character n-gram extraction
// for the detection pipeline. N-grams of length 2..5 never cross a word
// boundary; extraction is recomputed per call and never memoized.
package ngram

import (
	"strings"
	"unicode"

	"github.com/MeKo-Tech/lingo/lang"
)

// Normalize lower-cases text, replaces every code point that is not a letter
// of one of the given scripts with a space, collapses whitespace runs and
// trims the result. An empty result means the text holds no usable content.
func Normalize(text string, scripts []lang.Script) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	lastSpace := true
	for _, r := range strings.ToLower(text) {
		if isConfiguredLetter(r, scripts) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func isConfiguredLetter(r rune, scripts []lang.Script) bool {
	if !unicode.IsLetter(r) {
		return false
	}
	for _, s := range scripts {
		if s.Contains(r) {
			return true
		}
	}
	return false
}
