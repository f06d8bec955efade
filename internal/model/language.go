package model

import "strings"

// Language identifies a supported display language
type Language string

const (
	// LanguageKorean is the fallback language and carries the full key set
	LanguageKorean Language = "ko"

	// LanguageEnglish is the secondary language
	LanguageEnglish Language = "en"

	// LanguageJapanese is the tertiary language
	LanguageJapanese Language = "ja"
)

// FallbackLanguage is consulted when a key is missing in the active language
// and is also the default when no other signal is available.
const FallbackLanguage = LanguageKorean

var languageNames = map[Language]string{
	LanguageKorean:   "한국어",
	LanguageEnglish:  "English",
	LanguageJapanese: "日本語",
}

// Languages returns the supported languages in menu order
func Languages() []Language {
	return []Language{LanguageKorean, LanguageEnglish, LanguageJapanese}
}

// String returns the string representation of Language
func (l Language) String() string {
	return string(l)
}

// IsValid reports whether l belongs to the supported set
func (l Language) IsValid() bool {
	_, ok := languageNames[l]
	return ok
}

// DisplayName returns the native name of the language, or the tag itself
// for unsupported values.
func (l Language) DisplayName() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return string(l)
}

// ParseLanguage converts a stored tag back to a Language.
// Matching is exact apart from case and surrounding whitespace.
func ParseLanguage(s string) (Language, bool) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", false
	}
	return l, true
}
