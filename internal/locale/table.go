package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/ytget/yt-insights/internal/model"
)

//go:embed locales/active.*.toml
var localeFS embed.FS

// fileName returns the translation file for lang, e.g. active.ko.toml
func fileName(lang model.Language) string {
	return fmt.Sprintf("active.%s.toml", lang)
}

// Table maps each supported language to its key -> template entries.
// It is read-only after construction and shared by reference.
type Table struct {
	texts map[model.Language]map[string]string
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// DefaultTable returns the table built from the embedded translation files.
// It is built once per process.
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		sub, err := fs.Sub(localeFS, "locales")
		if err != nil {
			panic(fmt.Sprintf("locale: embedded translations: %v", err))
		}
		table, err := LoadTable(sub)
		if err != nil {
			panic(fmt.Sprintf("locale: embedded translations: %v", err))
		}
		defaultTable = table
	})
	return defaultTable
}

// NewTable builds a table from in-memory texts. Entries for unsupported
// languages are dropped; the input is copied.
func NewTable(texts map[model.Language]map[string]string) *Table {
	t := &Table{texts: make(map[model.Language]map[string]string, len(texts))}
	for _, lang := range model.Languages() {
		entries := make(map[string]string, len(texts[lang]))
		for key, value := range texts[lang] {
			entries[key] = value
		}
		t.texts[lang] = entries
	}
	return t
}

// LoadTable reads active.<tag>.toml for every supported language from fsys.
// A missing file leaves that language empty. Nested TOML tables become
// dot-separated keys.
func LoadTable(fsys fs.FS) (*Table, error) {
	texts := make(map[model.Language]map[string]string)

	for _, lang := range model.Languages() {
		data, err := fs.ReadFile(fsys, fileName(lang))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fileName(lang), err)
		}

		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", fileName(lang), err)
		}

		entries := make(map[string]string)
		if err := flatten("", raw, entries); err != nil {
			return nil, fmt.Errorf("parse %s: %w", fileName(lang), err)
		}
		texts[lang] = entries
	}

	return NewTable(texts), nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for name, value := range node {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		switch v := value.(type) {
		case string:
			out[key] = v
		case map[string]any:
			if err := flatten(key, v, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %q: expected string or table, got %T", key, value)
		}
	}
	return nil
}

// Lookup returns the template stored for key in lang
func (t *Table) Lookup(lang model.Language, key string) (string, bool) {
	if t == nil {
		return "", false
	}
	text, ok := t.texts[lang][key]
	return text, ok
}

// Keys returns the keys defined for lang, sorted
func (t *Table) Keys(lang model.Language) []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.texts[lang]))
	for key := range t.texts[lang] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Coverage returns the share of fallback keys that lang defines, in [0, 1]
func (t *Table) Coverage(lang model.Language) float64 {
	if t == nil {
		return 0
	}
	base := t.texts[model.FallbackLanguage]
	if len(base) == 0 {
		return 0
	}
	found := 0
	for key := range base {
		if _, ok := t.texts[lang][key]; ok {
			found++
		}
	}
	return float64(found) / float64(len(base))
}
