package pipeline

import (
	"unicode"

	"github.com/MeKo-Tech/lingo/lang"
)

// Span assigns a language to a half-open byte range [Start, End) of the
// original input. The spans of one segmentation cover the whole input with
// no gaps or overlaps.
type Span struct {
	Start    int           `json:"start"`
	End      int           `json:"end"`
	Language lang.Language `json:"language"`
}

// word is a maximal non-whitespace run of the input with its byte offsets.
type word struct {
	start, end int
	text       string
}

// DetectMultipleLanguages partitions mixed-language text into word-level
// spans, classifies every word through the regular pipeline and merges
// adjacent words assigned the same language. A word the pipeline cannot
// determine inherits the language currently running; undetermined words
// before the first determined one join the first span. Empty input yields no
// spans.
func (p *Pipeline) DetectMultipleLanguages(text string) ([]Span, error) {
	words := splitWords(text)
	if len(words) == 0 {
		if text == "" {
			return nil, nil
		}
		return []Span{{Start: 0, End: len(text), Language: lang.Unknown}}, nil
	}

	languages := make([]lang.Language, len(words))
	for i, w := range words {
		result, err := p.Detect(w.text)
		if err != nil {
			return nil, err
		}
		languages[i] = result.Language
	}
	backfillUnknown(languages)

	// Linear scan merging adjacent words of the same language. The open
	// span absorbs the gap up to the next differing word.
	current := languages[0]
	spanStart := 0
	var spans []Span
	for i := 1; i < len(words); i++ {
		if languages[i] == current {
			continue
		}
		spans = append(spans, Span{Start: spanStart, End: words[i].start, Language: current})
		current = languages[i]
		spanStart = words[i].start
	}
	spans = append(spans, Span{Start: spanStart, End: len(text), Language: current})
	return spans, nil
}

// backfillUnknown replaces Unknown entries with the running language, and
// leading Unknown entries with the first determined language. A text that is
// undetermined throughout stays Unknown.
func backfillUnknown(languages []lang.Language) {
	first := lang.Unknown
	for _, l := range languages {
		if l != lang.Unknown {
			first = l
			break
		}
	}
	if first == lang.Unknown {
		return
	}
	current := first
	for i, l := range languages {
		if l == lang.Unknown {
			languages[i] = current
		} else {
			current = l
		}
	}
}

// splitWords returns the maximal non-whitespace runs of text with their byte
// offsets.
func splitWords(text string) []word {
	var words []word
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, word{start: start, end: i, text: text[start:i]})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, word{start: start, end: len(text), text: text[start:]})
	}
	return words
}
