package ngram

import "strings"

// MinOrder and MaxOrder bound the supported n-gram lengths.
const (
	MinOrder = 1
	MaxOrder = 5
)

// Ngram is an ordered sequence of 1..5 normalized characters. Equality and
// hashing follow string semantics, i.e. character content.
type Ngram string

// Extract returns all contiguous rune sequences of the given order from
// normalized text, left to right. For order > 1 n-grams are taken per word so
// they never span a whitespace boundary. Words shorter than the order
// contribute nothing. Order values outside [MinOrder, MaxOrder] yield nil.
func Extract(normalized string, order int) []Ngram {
	if order < MinOrder || order > MaxOrder || normalized == "" {
		return nil
	}
	var out []Ngram
	for _, w := range strings.Split(normalized, " ") {
		runes := []rune(w)
		for i := 0; i+order <= len(runes); i++ {
			out = append(out, Ngram(runes[i:i+order]))
		}
	}
	return out
}

// CountPossible returns how many n-grams of the given order Extract would
// produce for the normalized text, without allocating them.
func CountPossible(normalized string, order int) int {
	if order < MinOrder || order > MaxOrder || normalized == "" {
		return 0
	}
	n := 0
	for _, w := range strings.Split(normalized, " ") {
		if l := len([]rune(w)) - order + 1; l > 0 {
			n += l
		}
	}
	return n
}
