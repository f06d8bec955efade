package ui

// Translation keys used by the shell
const (
	KeyAppTitle    = "app.title"
	KeyAppEmpty    = "app.empty"
	KeyMenuFile    = "menu.file"
	KeyMenuLang    = "menu.language"
	KeyMenuView    = "menu.view"
	KeyToggleTheme = "menu.toggle_theme"
	KeyThemeLight  = "theme.light"
	KeyThemeDark   = "theme.dark"
	KeyThemeNow    = "theme.current"
	KeyWelcome     = "management.welcome"
	KeyLastUpdated = "management.last_updated"

	KeyNavCompetitors = "nav.competitors"
	KeyNavSEO         = "nav.seo"
	KeyNavChannel     = "nav.channel"

	KeyCompetitorTitle = "competitor.title"
	KeySEOTitle        = "seo.title"
	KeyChannelTitle    = "channel.title"
)

// section is one analytics tab; its data comes from outside the shell
type section struct {
	navKey   string
	titleKey string
}

var sections = []section{
	{KeyNavCompetitors, KeyCompetitorTitle},
	{KeyNavSEO, KeySEOTitle},
	{KeyNavChannel, KeyChannelTitle},
}
