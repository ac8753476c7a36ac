package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptOf(t *testing.T) {
	tests := []struct {
		name   string
		r      rune
		script Script
		ok     bool
	}{
		{"latin lower", 'a', ScriptLatin, true},
		{"latin diacritic", 'ß', ScriptLatin, true},
		{"cyrillic", 'ж', ScriptCyrillic, true},
		{"greek", 'λ', ScriptGreek, true},
		{"han", '中', ScriptHan, true},
		{"hiragana", 'ひ', ScriptHiragana, true},
		{"katakana", 'カ', ScriptKatakana, true},
		{"hangul", '한', ScriptHangul, true},
		{"arabic", 'ب', ScriptArabic, true},
		{"hebrew", 'ש', ScriptHebrew, true},
		{"digit", '7', ScriptUnknown, false},
		{"space", ' ', ScriptUnknown, false},
		{"punctuation", '!', ScriptUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := ScriptOf(tt.r)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.script, s)
		})
	}
}

func TestScriptLanguages(t *testing.T) {
	assert.Equal(t, []Language{Greek}, ScriptGreek.Languages())
	assert.ElementsMatch(t, []Language{Chinese, Japanese}, ScriptHan.Languages())
	assert.Contains(t, ScriptLatin.Languages(), English)
	assert.NotContains(t, ScriptLatin.Languages(), Russian)
	assert.Nil(t, ScriptUnknown.Languages())
}

func TestLanguageScriptsInverse(t *testing.T) {
	// Every (script, language) pair must be reflected in both tables.
	for _, s := range AllScripts() {
		for _, l := range s.Languages() {
			assert.Contains(t, l.Scripts(), s)
		}
	}
	require.ElementsMatch(t, []Script{ScriptHan, ScriptHiragana, ScriptKatakana}, Japanese.Scripts())
}

func TestScriptContains(t *testing.T) {
	assert.True(t, ScriptCyrillic.Contains('д'))
	assert.False(t, ScriptCyrillic.Contains('d'))
	assert.False(t, ScriptCyrillic.Contains(' '))
	assert.False(t, ScriptUnknown.Contains('d'))
}

func TestCharacteristicLanguages(t *testing.T) {
	assert.Equal(t, []Language{German}, CharacteristicLanguages('ß'))
	assert.Equal(t, []Language{Azerbaijani}, CharacteristicLanguages('ə'))
	assert.ElementsMatch(t, []Language{Azerbaijani, Turkish}, CharacteristicLanguages('ı'))
	// Case-insensitive lookup.
	assert.Equal(t, []Language{Ukrainian}, CharacteristicLanguages('Ї'))
	assert.Nil(t, CharacteristicLanguages('e'))
}
