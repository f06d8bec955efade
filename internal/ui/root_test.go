package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-insights/internal/appearance"
	"github.com/ytget/yt-insights/internal/config"
	"github.com/ytget/yt-insights/internal/locale"
	"github.com/ytget/yt-insights/internal/model"
	"github.com/ytget/yt-insights/internal/platform"
)

func newTestRoot(t *testing.T) (*RootUI, *locale.Store, *appearance.Store) {
	t.Helper()

	app := test.NewApp()
	settings := config.NewSettings(app.Preferences())
	localeStore := locale.NewStore(locale.DefaultTable(), settings, platform.StaticLocale("en-us"))
	appearanceStore := appearance.NewStore(settings, platform.NewStaticThemeSignal(false))
	t.Cleanup(appearanceStore.Close)

	window := app.NewWindow("")
	ui := NewRootUI(window, app, localeStore, appearanceStore, "Ada")
	t.Cleanup(ui.Close)

	return ui, localeStore, appearanceStore
}

func TestRootUI_Texts(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	if ui.welcomeLabel.Text != "Hello, Ada" {
		t.Errorf("Expected English welcome, got %q", ui.welcomeLabel.Text)
	}
	if ui.window.Title() != "YT Insights" {
		t.Errorf("Expected English window title, got %q", ui.window.Title())
	}
	if len(ui.tabs.Items) != len(sections) {
		t.Fatalf("Expected %d tabs, got %d", len(sections), len(ui.tabs.Items))
	}
	if ui.tabs.Items[0].Text != "Competitors" {
		t.Errorf("Expected first tab 'Competitors', got %q", ui.tabs.Items[0].Text)
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, localeStore, _ := newTestRoot(t)

	ui.onLanguageChange(model.LanguageJapanese)
	ui.refreshTexts()

	if localeStore.Language() != model.LanguageJapanese {
		t.Fatalf("Expected language ja, got %s", localeStore.Language())
	}
	if ui.welcomeLabel.Text != "こんにちは、Adaさん" {
		t.Errorf("Expected Japanese welcome, got %q", ui.welcomeLabel.Text)
	}

	menu := ui.window.MainMenu()
	if menu == nil || len(menu.Items) != 3 {
		t.Fatal("Expected file, language and view menus")
	}
	for _, item := range menu.Items[1].Items {
		if item.Checked != (item.Label == model.LanguageJapanese.DisplayName()) {
			t.Errorf("Menu item %q has checked=%v", item.Label, item.Checked)
		}
	}
}

func TestRootUI_ThemeToggle(t *testing.T) {
	ui, _, appearanceStore := newTestRoot(t)

	if !strings.HasPrefix(ui.themeButton.Text, IconLight) {
		t.Errorf("Expected light theme button, got %q", ui.themeButton.Text)
	}

	appearanceStore.Toggle()
	ui.applyTheme(appearanceStore.Mode())
	ui.refreshTexts()

	if !strings.HasPrefix(ui.themeButton.Text, IconDark) {
		t.Errorf("Expected dark theme button, got %q", ui.themeButton.Text)
	}

	current, ok := ui.app.Settings().Theme().(*DashboardTheme)
	if !ok || current.Mode() != model.ThemeDark {
		t.Error("Expected the app theme to follow the store")
	}
}
