package locale

import (
	"strings"

	"github.com/ytget/yt-insights/internal/model"
)

// detectionOrder lists the locale prefixes checked, first match wins
var detectionOrder = []struct {
	prefix string
	lang   model.Language
}{
	{"en", model.LanguageEnglish},
	{"ja", model.LanguageJapanese},
	{"ko", model.LanguageKorean},
}

// DetectLanguage maps a host locale string to a supported language by
// prefix. Anything unrecognized maps to the fallback language.
func DetectLanguage(locale string) model.Language {
	v := strings.ToLower(strings.TrimSpace(locale))
	for _, candidate := range detectionOrder {
		if strings.HasPrefix(v, candidate.prefix) {
			return candidate.lang
		}
	}
	return model.FallbackLanguage
}
