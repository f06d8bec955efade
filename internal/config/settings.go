package config

import (
	"log"
	"strings"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-insights/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage = "language"
	KeyTheme    = "theme"
)

// Settings is the persisted side of the user preferences.
// Each store is the only writer of its key.
type Settings struct {
	prefs    fyne.Preferences
	warnOnce sync.Once
}

// NewSettings creates a new settings manager. A nil prefs means persistence
// is unavailable: every read reports absent and writes are dropped.
func NewSettings(prefs fyne.Preferences) *Settings {
	return &Settings{prefs: prefs}
}

// Available reports whether a durable backend is attached
func (s *Settings) Available() bool {
	return s != nil && s.prefs != nil
}

// Lookup returns the stored value and whether one exists
func (s *Settings) Lookup(key string) (string, bool) {
	if !s.Available() {
		return "", false
	}
	value := strings.TrimSpace(s.prefs.String(key))
	if value == "" {
		return "", false
	}
	return value, true
}

// Store writes value under key
func (s *Settings) Store(key, value string) {
	if !s.Available() {
		if s != nil {
			s.warnOnce.Do(func() {
				log.Printf("config: preferences unavailable, %q not persisted", key)
			})
		}
		return
	}
	s.prefs.SetString(key, value)
}

// Language returns the stored language. Values outside the supported set
// are reported as absent.
func (s *Settings) Language() (model.Language, bool) {
	raw, ok := s.Lookup(KeyLanguage)
	if !ok {
		return "", false
	}
	lang, ok := model.ParseLanguage(raw)
	if !ok {
		log.Printf("config: ignoring unsupported stored language %q", raw)
		return "", false
	}
	return lang, true
}

// SetLanguage persists the display language
func (s *Settings) SetLanguage(lang model.Language) {
	s.Store(KeyLanguage, lang.String())
}

// Theme returns the stored theme mode. Invalid values are reported as absent.
func (s *Settings) Theme() (model.ThemeMode, bool) {
	raw, ok := s.Lookup(KeyTheme)
	if !ok {
		return "", false
	}
	mode, ok := model.ParseThemeMode(raw)
	if !ok {
		log.Printf("config: ignoring unsupported stored theme %q", raw)
		return "", false
	}
	return mode, true
}

// SetTheme persists the theme mode
func (s *Settings) SetTheme(mode model.ThemeMode) {
	s.Store(KeyTheme, mode.String())
}

// Clear removes both preference keys
func (s *Settings) Clear() {
	if !s.Available() {
		return
	}
	s.prefs.RemoveValue(KeyLanguage)
	s.prefs.RemoveValue(KeyTheme)
}
