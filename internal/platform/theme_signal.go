package platform

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/yt-insights/internal/observe"
)

// ThemeSignal is the host's "prefers dark appearance" signal. It may change
// at any time while the application runs.
type ThemeSignal interface {
	PrefersDark() bool
	Subscribe(fn func(dark bool)) *Subscription
}

// Subscription is the handle returned by ThemeSignal.Subscribe.
// Cancel releases it; calling Cancel more than once is harmless.
type Subscription struct {
	id     string
	cancel func()
}

// ID returns the subscription identifier
func (s *Subscription) ID() string {
	return s.id
}

// Cancel stops delivery to the subscribed callback
func (s *Subscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
}

// broadcaster remembers the last published value so that only real
// changes reach subscribers.
type broadcaster struct {
	mu        sync.Mutex
	dark      bool
	listeners observe.Registry[bool]
}

func newBroadcaster(dark bool) *broadcaster {
	return &broadcaster{dark: dark}
}

func (b *broadcaster) current() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dark
}

func (b *broadcaster) subscribe(fn func(bool)) *Subscription {
	id, cancel := b.listeners.Add(fn)
	return &Subscription{id: id, cancel: cancel}
}

// publish records dark and notifies subscribers if it differs from the
// previous value.
func (b *broadcaster) publish(dark bool) {
	b.mu.Lock()
	if b.dark == dark {
		b.mu.Unlock()
		return
	}
	b.dark = dark
	b.mu.Unlock()

	b.listeners.Notify(dark)
}

// StaticThemeSignal is a ThemeSignal driven by Set
type StaticThemeSignal struct {
	b *broadcaster
}

// NewStaticThemeSignal creates a signal with the given initial value
func NewStaticThemeSignal(dark bool) *StaticThemeSignal {
	return &StaticThemeSignal{b: newBroadcaster(dark)}
}

// PrefersDark returns the current value
func (s *StaticThemeSignal) PrefersDark() bool {
	return s.b.current()
}

// Subscribe registers fn for value changes
func (s *StaticThemeSignal) Subscribe(fn func(dark bool)) *Subscription {
	return s.b.subscribe(fn)
}

// Set changes the value and synchronously notifies subscribers when it differs
func (s *StaticThemeSignal) Set(dark bool) {
	s.b.publish(dark)
}

// Subscribers returns the number of live subscriptions
func (s *StaticThemeSignal) Subscribers() int {
	return s.b.listeners.Len()
}

// FyneThemeSignal follows the OS theme variant reported by Fyne settings.
// Fyne invokes the settings listener on the app goroutine.
type FyneThemeSignal struct {
	b *broadcaster

	mu     sync.Mutex
	closed bool
}

// NewFyneThemeSignal registers a settings listener and starts forwarding
// variant changes to subscribers.
func NewFyneThemeSignal(settings fyne.Settings) *FyneThemeSignal {
	s := &FyneThemeSignal{
		b: newBroadcaster(isDarkVariant(settings.ThemeVariant())),
	}

	// Fyne has no way to remove a settings listener, so Close only mutes it.
	settings.AddListener(s.onSettingsChange)

	return s
}

// PrefersDark returns the last observed OS preference
func (s *FyneThemeSignal) PrefersDark() bool {
	return s.b.current()
}

// Subscribe registers fn for OS preference changes
func (s *FyneThemeSignal) Subscribe(fn func(dark bool)) *Subscription {
	return s.b.subscribe(fn)
}

// Close stops forwarding settings changes. It is safe to call more than once.
func (s *FyneThemeSignal) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *FyneThemeSignal) onSettingsChange(settings fyne.Settings) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}
	s.b.publish(isDarkVariant(settings.ThemeVariant()))
}

func isDarkVariant(v fyne.ThemeVariant) bool {
	return v == theme.VariantDark
}
