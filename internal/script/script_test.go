package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/lingo/lang"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []lang.Script
	}{
		{"empty", "", nil},
		{"latin only", "hello world", []lang.Script{lang.ScriptLatin}},
		{"punctuation and digits ignored", "42 + 17 = ???", nil},
		{"mixed scripts", "hello мир", []lang.Script{lang.ScriptCyrillic, lang.ScriptLatin}},
		{"greek", "καλημέρα", []lang.Script{lang.ScriptGreek}},
		{"japanese mix", "日本語のテキスト", []lang.Script{lang.ScriptHan, lang.ScriptHiragana, lang.ScriptKatakana}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	enabled := []lang.Language{lang.English, lang.German, lang.Russian, lang.Greek}

	cs := Candidates([]lang.Script{lang.ScriptLatin}, enabled)
	assert.ElementsMatch(t, []lang.Language{lang.English, lang.German}, cs.Slice())

	cs = Candidates([]lang.Script{lang.ScriptCyrillic, lang.ScriptLatin}, enabled)
	assert.ElementsMatch(t, []lang.Language{lang.English, lang.German, lang.Russian}, cs.Slice())

	// A script none of the enabled languages uses yields an empty set.
	cs = Candidates([]lang.Script{lang.ScriptHangul}, enabled)
	assert.Zero(t, cs.Len())
}

func TestCandidatesUniqueScript(t *testing.T) {
	enabled := []lang.Language{lang.English, lang.Greek}
	cs := Candidates(Classify("καλημέρα"), enabled)

	single, ok := cs.Single()
	require.True(t, ok)
	assert.Equal(t, lang.Greek, single)
}

func TestNarrowByCharacteristics(t *testing.T) {
	cs := NewCandidateSet(lang.English, lang.German, lang.Spanish)
	NarrowByCharacteristics("die straße", cs)

	single, ok := cs.Single()
	require.True(t, ok)
	assert.Equal(t, lang.German, single)
}

func TestNarrowByCharacteristicsKeepsGroup(t *testing.T) {
	cs := NewCandidateSet(lang.Azerbaijani, lang.Turkish, lang.English)
	NarrowByCharacteristics("yaşındayım", cs)

	// ş and ı narrow to the Azerbaijani/Turkish pair but cannot decide
	// between them.
	assert.ElementsMatch(t, []lang.Language{lang.Azerbaijani, lang.Turkish}, cs.Slice())
}

func TestNarrowByCharacteristicsIgnoresForeignHint(t *testing.T) {
	// ß hints German, but German is not a candidate; the set must survive.
	cs := NewCandidateSet(lang.English, lang.Spanish)
	NarrowByCharacteristics("straße", cs)
	assert.Equal(t, 2, cs.Len())
}

func TestCandidateSetSingle(t *testing.T) {
	_, ok := NewCandidateSet().Single()
	assert.False(t, ok)

	_, ok = NewCandidateSet(lang.English, lang.German).Single()
	assert.False(t, ok)

	single, ok := NewCandidateSet(lang.French).Single()
	require.True(t, ok)
	assert.Equal(t, lang.French, single)
}
