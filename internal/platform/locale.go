package platform

import (
	"os"
	"strings"

	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"
)

// Locale environment variables, in POSIX precedence order
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"}

// LocaleSource supplies the host's locale string (for example "ko-KR")
type LocaleSource interface {
	Locale() string
}

// StaticLocale is a fixed LocaleSource
type StaticLocale string

// Locale returns the fixed value
func (s StaticLocale) Locale() string {
	return string(s)
}

// SystemLocale resolves the host locale from an explicit override, the
// environment and finally Fyne's OS locale detection.
type SystemLocale struct {
	override string
	getenv   func(string) string
	fyneFunc func() string
}

// NewSystemLocale creates a SystemLocale. An empty override defers to the host.
func NewSystemLocale(override string) *SystemLocale {
	return &SystemLocale{
		override: override,
		getenv:   os.Getenv,
		fyneFunc: func() string { return string(lang.SystemLocale()) },
	}
}

// Locale returns the normalized host locale, or "" when nothing is known
func (s *SystemLocale) Locale() string {
	if v := NormalizeLocale(s.override); v != "" {
		return v
	}

	for _, name := range localeEnvVars {
		raw := s.getenv(name)
		if name == "LANGUAGE" {
			// LANGUAGE is a colon separated priority list
			raw, _, _ = strings.Cut(raw, ":")
		}
		if v := NormalizeLocale(raw); v != "" && v != "c" && v != "posix" {
			return v
		}
	}

	if s.fyneFunc != nil {
		return NormalizeLocale(s.fyneFunc())
	}
	return ""
}

// NormalizeLocale turns OS style locale strings into lower-cased BCP 47 tags:
// "ko_KR.UTF-8" becomes "ko-kr". Input that does not parse is returned
// stripped and lower-cased.
func NormalizeLocale(raw string) string {
	v := strings.TrimSpace(raw)
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "_", "-")

	tag, err := language.Parse(v)
	if err != nil {
		return strings.ToLower(v)
	}
	return strings.ToLower(tag.String())
}
