package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/yt-insights/internal/appearance"
	"github.com/ytget/yt-insights/internal/config"
	"github.com/ytget/yt-insights/internal/locale"
	"github.com/ytget/yt-insights/internal/platform"
	"github.com/ytget/yt-insights/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppName = "YT Insights"

func main() {
	resetPrefs := flag.Bool("reset-preferences", false, "forget the stored language and theme before starting")
	staticSignal := flag.Bool("static-theme-signal", false, "ignore OS theme changes after startup")
	userName := flag.String("user", currentUser(), "name shown in the welcome line")
	flag.Parse()

	fmt.Printf("%s v%s starting...\n", AppName, version)

	env, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	myApp := app.NewWithID(env.AppID)

	settings := config.NewSettings(myApp.Preferences())
	if *resetPrefs {
		settings.Clear()
	}

	var signal platform.ThemeSignal
	if *staticSignal {
		signal = platform.NewStaticThemeSignal(myApp.Settings().ThemeVariant() == theme.VariantDark)
	} else {
		fyneSignal := platform.NewFyneThemeSignal(myApp.Settings())
		defer fyneSignal.Close()
		signal = fyneSignal
	}

	localeStore := locale.NewStore(locale.DefaultTable(), settings, platform.NewSystemLocale(env.Locale))
	appearanceStore := appearance.NewStore(settings, signal)
	defer appearanceStore.Close()

	window := myApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(env.WindowWidth), float32(env.WindowHeight)))

	root := ui.NewRootUI(window, myApp, localeStore, appearanceStore, *userName)
	defer root.Close()

	window.ShowAndRun()
}

func currentUser() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "YT Insights"
}
