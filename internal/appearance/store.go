package appearance

import (
	"sync"

	"github.com/ytget/yt-insights/internal/model"
	"github.com/ytget/yt-insights/internal/observe"
	"github.com/ytget/yt-insights/internal/platform"
)

// State describes where the active theme comes from
type State string

const (
	// StateAmbientTracking follows the host signal
	StateAmbientTracking State = "ambient-tracking"

	// StateUserPinned keeps the user's choice and ignores the host signal
	StateUserPinned State = "user-pinned"
)

// Storage persists the chosen theme
type Storage interface {
	Theme() (model.ThemeMode, bool)
	SetTheme(mode model.ThemeMode)
}

// Store holds the active theme mode
type Store struct {
	storage Storage

	mu     sync.Mutex
	mode   model.ThemeMode
	pinned bool
	closed bool
	sub    *platform.Subscription

	listeners observe.Registry[model.ThemeMode]
}

// NewStore initializes the theme from storage, or from the signal when
// nothing is stored, and subscribes to later signal changes. Call Close to
// release the subscription.
func NewStore(storage Storage, signal platform.ThemeSignal) *Store {
	s := &Store{
		storage: storage,
		mode:    model.DefaultThemeMode,
	}

	if storage != nil {
		if mode, ok := storage.Theme(); ok && mode.IsValid() {
			s.mode = mode
			s.pinned = true
		}
	}

	if signal != nil {
		if !s.pinned {
			s.mode = model.ThemeModeFromDark(signal.PrefersDark())
		}
		s.sub = signal.Subscribe(s.onAmbientChange)
	}

	return s
}

// Mode returns the active theme mode
func (s *Store) Mode() model.ThemeMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Pinned reports whether an explicit choice overrides the host signal
func (s *Store) Pinned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pinned
}

// State returns the current tracking state
func (s *Store) State() State {
	if s.Pinned() {
		return StateUserPinned
	}
	return StateAmbientTracking
}

// Toggle flips the theme, stores it and pins the choice
func (s *Store) Toggle() {
	s.mu.Lock()
	s.mode = s.mode.Toggle()
	s.pinned = true
	if s.storage != nil {
		s.storage.SetTheme(s.mode)
	}
	mode := s.mode
	s.mu.Unlock()

	s.listeners.Notify(mode)
}

// AddListener registers fn to run after every theme change.
// The returned function removes it.
func (s *Store) AddListener(fn func(model.ThemeMode)) func() {
	_, remove := s.listeners.Add(fn)
	return remove
}

// Close releases the signal subscription. It is safe to call more than once.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	sub := s.sub
	s.sub = nil
	s.mu.Unlock()

	sub.Cancel()
}

func (s *Store) onAmbientChange(dark bool) {
	s.mu.Lock()
	if s.closed || s.pinned {
		s.mu.Unlock()
		return
	}
	mode := model.ThemeModeFromDark(dark)
	if mode == s.mode {
		s.mu.Unlock()
		return
	}
	s.mode = mode
	s.mu.Unlock()

	s.listeners.Notify(mode)
}
