// Package lang defines the languages and writing scripts known to the
// detector, together with their ISO codes and the static tables that map
// scripts and characteristic letters to candidate languages.
//
// All tables in this package are immutable after initialization and safe for
// concurrent use.
package lang

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

// Language identifies a natural language.
type Language int

const (
	Unknown Language = iota // zero value, no detection performed
	Arabic
	Azerbaijani
	Bulgarian
	Chinese
	Danish
	Dutch
	English
	French
	German
	Greek
	Hebrew
	Italian
	Japanese
	Korean
	Polish
	Portuguese
	Russian
	Spanish
	Swedish
	Turkish
	Ukrainian
)

// languageNames maps Language values to their string names.
var languageNames = [...]string{
	Unknown:     "Unknown",
	Arabic:      "Arabic",
	Azerbaijani: "Azerbaijani",
	Bulgarian:   "Bulgarian",
	Chinese:     "Chinese",
	Danish:      "Danish",
	Dutch:       "Dutch",
	English:     "English",
	French:      "French",
	German:      "German",
	Greek:       "Greek",
	Hebrew:      "Hebrew",
	Italian:     "Italian",
	Japanese:    "Japanese",
	Korean:      "Korean",
	Polish:      "Polish",
	Portuguese:  "Portuguese",
	Russian:     "Russian",
	Spanish:     "Spanish",
	Swedish:     "Swedish",
	Turkish:     "Turkish",
	Ukrainian:   "Ukrainian",
}

// iso6391Codes maps Language values to ISO 639-1 codes.
var iso6391Codes = [...]string{
	Unknown:     "",
	Arabic:      "ar",
	Azerbaijani: "az",
	Bulgarian:   "bg",
	Chinese:     "zh",
	Danish:      "da",
	Dutch:       "nl",
	English:     "en",
	French:      "fr",
	German:      "de",
	Greek:       "el",
	Hebrew:      "he",
	Italian:     "it",
	Japanese:    "ja",
	Korean:      "ko",
	Polish:      "pl",
	Portuguese:  "pt",
	Russian:     "ru",
	Spanish:     "es",
	Swedish:     "sv",
	Turkish:     "tr",
	Ukrainian:   "uk",
}

// iso6393Codes maps Language values to ISO 639-3 codes.
var iso6393Codes = [...]string{
	Unknown:     "",
	Arabic:      "ara",
	Azerbaijani: "aze",
	Bulgarian:   "bul",
	Chinese:     "zho",
	Danish:      "dan",
	Dutch:       "nld",
	English:     "eng",
	French:      "fra",
	German:      "deu",
	Greek:       "ell",
	Hebrew:      "heb",
	Italian:     "ita",
	Japanese:    "jpn",
	Korean:      "kor",
	Polish:      "pol",
	Portuguese:  "por",
	Russian:     "rus",
	Spanish:     "spa",
	Swedish:     "swe",
	Turkish:     "tur",
	Ukrainian:   "ukr",
}

// languageFromName maps string names back to Language values.
var languageFromName = make(map[string]Language, len(languageNames))

// languageFromIso1 maps ISO 639-1 codes back to Language values.
var languageFromIso1 = make(map[string]Language, len(iso6391Codes))

func init() {
	for l, name := range languageNames {
		languageFromName[name] = Language(l)
	}
	for l, code := range iso6391Codes {
		if code != "" {
			languageFromIso1[code] = Language(l)
		}
	}
}

// All returns every supported language in declaration order, excluding Unknown.
func All() []Language {
	out := make([]Language, 0, len(languageNames)-1)
	for l := range languageNames {
		if Language(l) != Unknown {
			out = append(out, Language(l))
		}
	}
	return out
}

// FromName returns the language with the given name (e.g. "English").
func FromName(name string) (Language, bool) {
	l, ok := languageFromName[name]
	if !ok || l == Unknown {
		return Unknown, false
	}
	return l, true
}

// FromIsoCode639_1 returns the language with the given ISO 639-1 code (e.g. "en").
func FromIsoCode639_1(code string) (Language, bool) {
	l, ok := languageFromIso1[code]
	return l, ok
}

// String returns the name of the language.
func (l Language) String() string {
	if int(l) >= 0 && int(l) < len(languageNames) {
		return languageNames[l]
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// IsoCode639_1 returns the two-letter ISO 639-1 code, or "" for Unknown.
func (l Language) IsoCode639_1() string {
	if int(l) >= 0 && int(l) < len(iso6391Codes) {
		return iso6391Codes[l]
	}
	return ""
}

// IsoCode639_3 returns the three-letter ISO 639-3 code, or "" for Unknown.
func (l Language) IsoCode639_3() string {
	if int(l) >= 0 && int(l) < len(iso6393Codes) {
		return iso6393Codes[l]
	}
	return ""
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	code := l.IsoCode639_1()
	if code == "" {
		return language.Und
	}
	return language.Make(code)
}

// Scripts returns the writing scripts the language may be written in.
func (l Language) Scripts() []Script {
	return languageScripts[l]
}

// MarshalJSON encodes the language as a JSON string (e.g. "English").
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "English") into a Language.
func (l *Language) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := languageFromName[s]
	if !ok {
		return fmt.Errorf("lang: unknown language: %q", s)
	}
	*l = parsed
	return nil
}
