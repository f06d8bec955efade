package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Default values
const (
	DefaultAppID        = "com.ytget.yt-insights"
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 720
)

// Environment variable names
const (
	EnvAppID        = "YTI_APP_ID"
	EnvLocale       = "YTI_LOCALE"
	EnvWindowWidth  = "YTI_WINDOW_WIDTH"
	EnvWindowHeight = "YTI_WINDOW_HEIGHT"
)

// Env is the process configuration read at startup
type Env struct {
	AppID        string
	Locale       string
	WindowWidth  int
	WindowHeight int
}

// Load reads the configuration from the environment and validates it.
func Load() (*Env, error) {
	// .env is optional when variables come from the environment itself.
	_ = godotenv.Load()

	return FromLookup(os.LookupEnv)
}

// FromLookup builds an Env from an arbitrary variable source
func FromLookup(lookup func(string) (string, bool)) (*Env, error) {
	env := &Env{
		AppID:        DefaultAppID,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}

	if v, ok := lookup(EnvAppID); ok && strings.TrimSpace(v) != "" {
		env.AppID = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLocale); ok {
		env.Locale = strings.TrimSpace(v)
	}

	var err error
	if env.WindowWidth, err = intVar(lookup, EnvWindowWidth, DefaultWindowWidth); err != nil {
		return nil, err
	}
	if env.WindowHeight, err = intVar(lookup, EnvWindowHeight, DefaultWindowHeight); err != nil {
		return nil, err
	}

	if err := env.validate(); err != nil {
		return nil, err
	}
	return env, nil
}

func (e *Env) validate() error {
	if !strings.Contains(e.AppID, ".") {
		return fmt.Errorf("config: %s must be a reverse-DNS identifier, got %q", EnvAppID, e.AppID)
	}
	if e.WindowWidth <= 0 || e.WindowHeight <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", e.WindowWidth, e.WindowHeight)
	}
	return nil
}

func intVar(lookup func(string) (string, bool), name string, fallback int) (int, error) {
	v, ok := lookup(name)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("config: %s invalid integer %q: %w", name, v, err)
	}
	return n, nil
}
