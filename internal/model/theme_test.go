package model

import "testing"

func TestThemeMode_Toggle(t *testing.T) {
	tests := []struct {
		mode     ThemeMode
		expected ThemeMode
	}{
		{ThemeLight, ThemeDark},
		{ThemeDark, ThemeLight},
		{ThemeMode("sepia"), ThemeDark},
	}

	for _, test := range tests {
		result := test.mode.Toggle()
		if result != test.expected {
			t.Errorf("ThemeMode(%s).Toggle() = %s, expected %s", test.mode, result, test.expected)
		}
	}

	if ThemeLight.Toggle().Toggle() != ThemeLight {
		t.Error("Toggling twice should return to the original mode")
	}
}

func TestParseThemeMode(t *testing.T) {
	tests := []struct {
		input    string
		expected ThemeMode
		ok       bool
	}{
		{"light", ThemeLight, true},
		{"Dark", ThemeDark, true},
		{"system", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		result, ok := ParseThemeMode(test.input)
		if result != test.expected || ok != test.ok {
			t.Errorf("ParseThemeMode(%q) = (%q, %v), expected (%q, %v)", test.input, result, ok, test.expected, test.ok)
		}
	}
}

func TestThemeModeFromDark(t *testing.T) {
	if ThemeModeFromDark(true) != ThemeDark {
		t.Error("Expected dark mode for dark preference")
	}
	if ThemeModeFromDark(false) != ThemeLight {
		t.Error("Expected light mode for light preference")
	}
	if !ThemeDark.IsDark() || ThemeLight.IsDark() {
		t.Error("IsDark should only be true for the dark mode")
	}
}
