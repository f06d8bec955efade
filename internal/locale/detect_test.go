package locale

import (
	"testing"

	"github.com/ytget/yt-insights/internal/model"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		locale   string
		expected model.Language
	}{
		{"en-us", model.LanguageEnglish},
		{"EN_GB", model.LanguageEnglish},
		{"ja-jp", model.LanguageJapanese},
		{"ko-kr", model.LanguageKorean},
		{"ko", model.LanguageKorean},
		{"fr-fr", model.FallbackLanguage},
		{"c", model.FallbackLanguage},
		{"", model.FallbackLanguage},
	}

	for _, test := range tests {
		result := DetectLanguage(test.locale)
		if result != test.expected {
			t.Errorf("DetectLanguage(%q) = %s, expected %s", test.locale, result, test.expected)
		}
	}
}
