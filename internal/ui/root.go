package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-insights/internal/appearance"
	"github.com/ytget/yt-insights/internal/locale"
	"github.com/ytget/yt-insights/internal/model"
)

// RootUI represents the main window content
type RootUI struct {
	window     fyne.Window
	app        fyne.App
	locale     *locale.Store
	appearance *appearance.Store
	userName   string
	updatedAt  time.Time

	welcomeLabel *widget.Label
	updatedLabel *widget.Label
	themeButton  *widget.Button
	tabs         *container.AppTabs
	tabBodies    []*widget.Label

	removeListeners []func()
}

// NewRootUI builds the window content and subscribes to both stores
func NewRootUI(window fyne.Window, app fyne.App, localeStore *locale.Store, appearanceStore *appearance.Store, userName string) *RootUI {
	ui := &RootUI{
		window:     window,
		app:        app,
		locale:     localeStore,
		appearance: appearanceStore,
		userName:   userName,
		updatedAt:  time.Now(),
	}

	ui.setupUI()
	ui.applyTheme(appearanceStore.Mode())

	ui.removeListeners = append(ui.removeListeners,
		localeStore.AddListener(func(model.Language) {
			fyne.Do(ui.refreshTexts)
		}),
		appearanceStore.AddListener(func(mode model.ThemeMode) {
			fyne.Do(func() {
				ui.applyTheme(mode)
				ui.refreshTexts()
			})
		}),
	)

	log.Printf("ui: ready (language=%s, theme=%s, state=%s)",
		localeStore.Language(), appearanceStore.Mode(), appearanceStore.State())
	return ui
}

// Close detaches the UI from the stores
func (ui *RootUI) Close() {
	for _, remove := range ui.removeListeners {
		remove()
	}
	ui.removeListeners = nil
}

func (ui *RootUI) setupUI() {
	ui.welcomeLabel = widget.NewLabel("")
	ui.welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.updatedLabel = widget.NewLabel("")
	ui.themeButton = widget.NewButton("", ui.appearance.Toggle)

	header := container.NewBorder(nil, nil, nil, ui.themeButton,
		container.NewVBox(ui.welcomeLabel, ui.updatedLabel))

	ui.tabs = container.NewAppTabs()
	for range sections {
		body := widget.NewLabel("")
		body.Wrapping = fyne.TextWrapWord
		ui.tabBodies = append(ui.tabBodies, body)
		ui.tabs.Append(container.NewTabItem("", container.NewPadded(body)))
	}

	ui.window.SetContent(container.NewBorder(header, nil, nil, nil, ui.tabs))
	ui.refreshTexts()
}

// createMenu rebuilds the main menu so labels and checkmarks follow the stores
func (ui *RootUI) createMenu() {
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.t(KeyMenuLang))
	for _, lang := range ui.locale.Languages() {
		code := lang
		item := fyne.NewMenuItem(code.DisplayName(), func() {
			ui.onLanguageChange(code)
		})
		item.Checked = ui.locale.Language() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	toggleItem := fyne.NewMenuItem(ui.t(KeyToggleTheme), ui.appearance.Toggle)
	viewMenu := fyne.NewMenu(ui.t(KeyMenuView), toggleItem)

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.t(KeyMenuFile)),
		languageMenu,
		viewMenu,
	))
}

func (ui *RootUI) onLanguageChange(lang model.Language) {
	if lang == ui.locale.Language() {
		return
	}
	ui.locale.SetLanguage(lang)
}

// refreshTexts updates all UI texts with the current language
func (ui *RootUI) refreshTexts() {
	ui.window.SetTitle(ui.t(KeyAppTitle))

	ui.welcomeLabel.SetText(ui.locale.T(KeyWelcome, map[string]string{"name": ui.userName}))
	ui.updatedLabel.SetText(ui.locale.T(KeyLastUpdated, map[string]string{
		"time": ui.updatedAt.Format(LastUpdatedFormat),
	}))
	ui.themeButton.SetText(ui.themeButtonText())

	for i, s := range sections {
		ui.tabs.Items[i].Text = ui.t(s.navKey)
		ui.tabBodies[i].SetText(ui.t(s.titleKey) + MiddleDotSeparator + ui.t(KeyAppEmpty))
	}
	ui.tabs.Refresh()

	ui.createMenu()
}

func (ui *RootUI) themeButtonText() string {
	mode := ui.appearance.Mode()
	icon, key := IconLight, KeyThemeLight
	if mode.IsDark() {
		icon, key = IconDark, KeyThemeDark
	}
	return icon + " " + ui.locale.T(KeyThemeNow, map[string]string{"mode": ui.t(key)})
}

// applyTheme switches the Fyne theme to mode
func (ui *RootUI) applyTheme(mode model.ThemeMode) {
	ui.app.Settings().SetTheme(NewDashboardTheme(mode))
}

func (ui *RootUI) t(key string) string {
	return ui.locale.T(key, nil)
}
