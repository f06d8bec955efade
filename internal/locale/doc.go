package locale

// Package locale owns the display language of the dashboard. It loads the
// translation table from embedded TOML files, picks the initial language from
// the stored preference or the host locale, and resolves translation keys with
// a fallback chain that always produces text.
