// Package script performs writing-system classification of input text and
// turns the observed scripts into the candidate language set the scorer works
// on. This is the cheap elimination step: a Cyrillic-only input never
// consults Latin language models, and a script unique to a single enabled
// language decides the text without any statistics at all.
package script

import (
	"sort"

	"github.com/MeKo-Tech/lingo/lang"
)

// CandidateSet is the per-detection working set of languages still under
// consideration. It only ever shrinks after construction.
type CandidateSet map[lang.Language]struct{}

// NewCandidateSet builds a set from the given languages.
func NewCandidateSet(languages ...lang.Language) CandidateSet {
	cs := make(CandidateSet, len(languages))
	for _, l := range languages {
		cs[l] = struct{}{}
	}
	return cs
}

// Len returns the number of remaining candidates.
func (cs CandidateSet) Len() int { return len(cs) }

// Contains reports whether l is still a candidate.
func (cs CandidateSet) Contains(l lang.Language) bool {
	_, ok := cs[l]
	return ok
}

// Single returns the only remaining candidate, if exactly one is left.
func (cs CandidateSet) Single() (lang.Language, bool) {
	if len(cs) != 1 {
		return lang.Unknown, false
	}
	for l := range cs {
		return l, true
	}
	return lang.Unknown, false
}

// Slice returns the candidates in stable (declaration) order.
func (cs CandidateSet) Slice() []lang.Language {
	out := make([]lang.Language, 0, len(cs))
	for l := range cs {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// intersect removes every candidate not present in keep. It never empties the
// set: if the intersection would be empty the set is left unchanged, so a
// stray characteristic letter cannot eliminate the language the scorer would
// rank highest.
func (cs CandidateSet) intersect(keep []lang.Language) {
	any := false
	for _, l := range keep {
		if cs.Contains(l) {
			any = true
			break
		}
	}
	if !any {
		return
	}
	keepSet := NewCandidateSet(keep...)
	for l := range cs {
		if !keepSet.Contains(l) {
			delete(cs, l)
		}
	}
}

// Classify returns the set of scripts the letters of text belong to,
// ignoring whitespace, punctuation, digits and letters of unknown scripts.
// The result is sorted and duplicate-free.
func Classify(text string) []lang.Script {
	seen := make(map[lang.Script]struct{})
	for _, r := range text {
		if s, ok := lang.ScriptOf(r); ok {
			seen[s] = struct{}{}
		}
	}
	out := make([]lang.Script, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Candidates intersects each observed script's language set with the enabled
// languages and unions the results. An empty result means no enabled language
// can have written the text.
func Candidates(scripts []lang.Script, enabled []lang.Language) CandidateSet {
	enabledSet := NewCandidateSet(enabled...)
	cs := make(CandidateSet)
	for _, s := range scripts {
		for _, l := range s.Languages() {
			if enabledSet.Contains(l) {
				cs[l] = struct{}{}
			}
		}
	}
	return cs
}

// NarrowByCharacteristics shrinks the candidate set using letters that are
// characteristic of a small language group, e.g. ß for German or ə for
// Azerbaijani. Letters whose group shares no member with the current set are
// ignored.
func NarrowByCharacteristics(text string, cs CandidateSet) {
	for _, r := range text {
		if cs.Len() <= 1 {
			return
		}
		if group := lang.CharacteristicLanguages(r); group != nil {
			cs.intersect(group)
		}
	}
}
