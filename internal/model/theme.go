package model

import "strings"

// ThemeMode is the active color scheme
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// DefaultThemeMode is used when neither a stored choice nor a host signal exists
const DefaultThemeMode = ThemeLight

// String returns the string representation of ThemeMode
func (m ThemeMode) String() string {
	return string(m)
}

// IsValid reports whether m is light or dark
func (m ThemeMode) IsValid() bool {
	return m == ThemeLight || m == ThemeDark
}

// IsDark returns true for the dark mode
func (m ThemeMode) IsDark() bool {
	return m == ThemeDark
}

// Toggle returns the opposite mode. Invalid values toggle to dark.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeModeFromDark maps a "prefers dark" flag to a mode
func ThemeModeFromDark(dark bool) ThemeMode {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// ParseThemeMode converts a stored value back to a ThemeMode
func ParseThemeMode(s string) (ThemeMode, bool) {
	m := ThemeMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", false
	}
	return m, true
}
