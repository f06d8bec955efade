package locale

import (
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/ytget/yt-insights/internal/model"
	"github.com/ytget/yt-insights/internal/observe"
	"github.com/ytget/yt-insights/internal/platform"
)

// Storage persists the chosen language
type Storage interface {
	Language() (model.Language, bool)
	SetLanguage(lang model.Language)
}

// Store holds the active display language and translates keys against it
type Store struct {
	table   *Table
	storage Storage

	mu   sync.RWMutex
	lang model.Language

	listeners observe.Registry[model.Language]
}

// NewStore picks the initial language: the stored one when it is supported,
// otherwise the language detected from the host locale. Detection is not
// written back to storage.
func NewStore(table *Table, storage Storage, locale platform.LocaleSource) *Store {
	s := &Store{
		table:   table,
		storage: storage,
	}

	if storage != nil {
		if lang, ok := storage.Language(); ok && lang.IsValid() {
			s.lang = lang
			return s
		}
	}

	detected := ""
	if locale != nil {
		detected = locale.Locale()
	}
	s.lang = DetectLanguage(detected)
	return s
}

// Language returns the active language
func (s *Store) Language() model.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Languages returns the languages a user can choose from
func (s *Store) Languages() []model.Language {
	return model.Languages()
}

// Table returns the shared translation table
func (s *Store) Table() *Table {
	return s.table
}

// SetLanguage makes lang active, stores it and notifies listeners.
// Unsupported values are ignored.
func (s *Store) SetLanguage(lang model.Language) {
	if !lang.IsValid() {
		log.Printf("locale: ignoring unsupported language %q", lang)
		return
	}

	s.mu.Lock()
	s.lang = lang
	if s.storage != nil {
		s.storage.SetLanguage(lang)
	}
	s.mu.Unlock()

	s.listeners.Notify(lang)
}

// AddListener registers fn to run after every SetLanguage.
// The returned function removes it.
func (s *Store) AddListener(fn func(model.Language)) func() {
	_, remove := s.listeners.Add(fn)
	return remove
}

// T translates key into the active language. Missing keys fall back to the
// fallback language and then to the key itself. Each {name} placeholder is
// replaced once per entry in params.
func (s *Store) T(key string, params map[string]string) string {
	return Translate(s.table, s.Language(), key, params)
}

// Translate resolves key for lang against table. It never fails: the last
// resort is the key itself.
func Translate(table *Table, lang model.Language, key string, params map[string]string) string {
	text, ok := table.Lookup(lang, key)
	if !ok || text == "" {
		text, ok = table.Lookup(model.FallbackLanguage, key)
	}
	if !ok || text == "" {
		return key
	}
	return interpolate(text, params)
}

// interpolate substitutes the first {name} occurrence for every param.
// Params are applied in name order so the result does not depend on map
// iteration.
func interpolate(text string, params map[string]string) string {
	if len(params) == 0 {
		return text
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		text = strings.Replace(text, "{"+name+"}", params[name], 1)
	}
	return text
}
