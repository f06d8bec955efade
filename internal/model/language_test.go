package model

import "testing"

func TestLanguage_IsValid(t *testing.T) {
	tests := []struct {
		lang     Language
		expected bool
	}{
		{LanguageKorean, true},
		{LanguageEnglish, true},
		{LanguageJapanese, true},
		{Language("fr"), false},
		{Language("KO"), false},
		{Language(""), false},
	}

	for _, test := range tests {
		result := test.lang.IsValid()
		if result != test.expected {
			t.Errorf("Language(%q).IsValid() = %v, expected %v", test.lang, result, test.expected)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected Language
		ok       bool
	}{
		{"ko", LanguageKorean, true},
		{"EN", LanguageEnglish, true},
		{" ja ", LanguageJapanese, true},
		{"en-US", "", false},
		{"klingon", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		result, ok := ParseLanguage(test.input)
		if result != test.expected || ok != test.ok {
			t.Errorf("ParseLanguage(%q) = (%q, %v), expected (%q, %v)", test.input, result, ok, test.expected, test.ok)
		}
	}
}

func TestLanguages(t *testing.T) {
	languages := Languages()
	if len(languages) != 3 {
		t.Fatalf("Expected 3 languages, got %d", len(languages))
	}

	if languages[0] != FallbackLanguage {
		t.Errorf("Expected fallback language first, got %s", languages[0])
	}

	for _, lang := range languages {
		if !lang.IsValid() {
			t.Errorf("Language %s should be valid", lang)
		}
		if lang.DisplayName() == lang.String() {
			t.Errorf("Language %s should have a native display name", lang)
		}
	}
}

func TestLanguage_DisplayNameUnknown(t *testing.T) {
	if name := Language("xx").DisplayName(); name != "xx" {
		t.Errorf("Expected unknown language to display as its tag, got %s", name)
	}
}
