package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconLanguage = "🌐"
	IconLight    = "☀"
	IconDark     = "☾"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	LastUpdatedFormat  = "2006-01-02 15:04"
)

