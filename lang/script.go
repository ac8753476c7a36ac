package lang

import (
	"fmt"
	"unicode"
)

// Script identifies a writing system.
type Script int

const (
	ScriptUnknown Script = iota // zero value or not applicable
	ScriptArabic
	ScriptCyrillic
	ScriptGreek
	ScriptHan
	ScriptHangul
	ScriptHebrew
	ScriptHiragana
	ScriptKatakana
	ScriptLatin
)

// scriptNames maps Script values to their ISO 15924 names.
var scriptNames = [...]string{
	ScriptUnknown:  "",
	ScriptArabic:   "Arab",
	ScriptCyrillic: "Cyrl",
	ScriptGreek:    "Grek",
	ScriptHan:      "Hani",
	ScriptHangul:   "Hang",
	ScriptHebrew:   "Hebr",
	ScriptHiragana: "Hira",
	ScriptKatakana: "Kana",
	ScriptLatin:    "Latn",
}

// scriptRanges maps each script to its Unicode code point ranges.
var scriptRanges = [...]*unicode.RangeTable{
	ScriptArabic:   unicode.Arabic,
	ScriptCyrillic: unicode.Cyrillic,
	ScriptGreek:    unicode.Greek,
	ScriptHan:      unicode.Han,
	ScriptHangul:   unicode.Hangul,
	ScriptHebrew:   unicode.Hebrew,
	ScriptHiragana: unicode.Hiragana,
	ScriptKatakana: unicode.Katakana,
	ScriptLatin:    unicode.Latin,
}

// scriptLanguages maps each script to the languages that can be written in it.
var scriptLanguages = [...][]Language{
	ScriptArabic:   {Arabic},
	ScriptCyrillic: {Bulgarian, Russian, Ukrainian},
	ScriptGreek:    {Greek},
	ScriptHan:      {Chinese, Japanese},
	ScriptHangul:   {Korean},
	ScriptHebrew:   {Hebrew},
	ScriptHiragana: {Japanese},
	ScriptKatakana: {Japanese},
	ScriptLatin: {
		Azerbaijani, Danish, Dutch, English, French, German, Italian,
		Polish, Portuguese, Spanish, Swedish, Turkish,
	},
}

// languageScripts is the inverse of scriptLanguages.
var languageScripts = make(map[Language][]Script, len(languageNames))

// charLanguages maps letters characteristic of a small language group to
// that group. Used to narrow Latin and Cyrillic candidates before scoring;
// a letter unique to a single language decides the text outright.
var charLanguages = map[rune][]Language{
	'ß': {German},
	'ə': {Azerbaijani},
	'ñ': {Spanish},
	'ã': {Portuguese},
	'õ': {Portuguese},
	'ł': {Polish},
	'ń': {Polish},
	'ś': {Polish},
	'ź': {Polish},
	'ż': {Polish},
	'ą': {Polish},
	'ę': {Polish},
	'œ': {French},
	'ø': {Danish},
	'å': {Danish, Swedish},
	'ı': {Azerbaijani, Turkish},
	'ğ': {Azerbaijani, Turkish},
	'ş': {Azerbaijani, Turkish},
	'ы': {Russian},
	'э': {Russian},
	'ё': {Russian},
	'ъ': {Bulgarian, Russian},
	'і': {Ukrainian},
	'ї': {Ukrainian},
	'є': {Ukrainian},
	'ґ': {Ukrainian},
}

func init() {
	for s, langs := range scriptLanguages {
		for _, l := range langs {
			languageScripts[l] = append(languageScripts[l], Script(s))
		}
	}
}

// AllScripts returns every known script in declaration order.
func AllScripts() []Script {
	out := make([]Script, 0, len(scriptNames)-1)
	for s := range scriptNames {
		if Script(s) != ScriptUnknown {
			out = append(out, Script(s))
		}
	}
	return out
}

// ScriptOf returns the script a letter belongs to. It reports false for
// whitespace, punctuation, digits and letters of unconfigured scripts.
func ScriptOf(r rune) (Script, bool) {
	if !unicode.IsLetter(r) {
		return ScriptUnknown, false
	}
	for s := ScriptUnknown + 1; int(s) < len(scriptRanges); s++ {
		if unicode.Is(scriptRanges[s], r) {
			return s, true
		}
	}
	return ScriptUnknown, false
}

// String returns the ISO 15924 name of the script, or "" for ScriptUnknown.
func (s Script) String() string {
	if int(s) >= 0 && int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return fmt.Sprintf("Script(%d)", int(s))
}

// Contains reports whether r is a letter of this script.
func (s Script) Contains(r rune) bool {
	if int(s) <= 0 || int(s) >= len(scriptRanges) {
		return false
	}
	return unicode.IsLetter(r) && unicode.Is(scriptRanges[s], r)
}

// Languages returns the languages that can be written in this script.
// The returned slice is shared and must not be modified.
func (s Script) Languages() []Language {
	if int(s) <= 0 || int(s) >= len(scriptLanguages) {
		return nil
	}
	return scriptLanguages[s]
}

// CharacteristicLanguages returns the language group a characteristic letter
// narrows the candidates to, or nil if r carries no such hint.
// The returned slice is shared and must not be modified.
func CharacteristicLanguages(r rune) []Language {
	return charLanguages[unicode.ToLower(r)]
}
