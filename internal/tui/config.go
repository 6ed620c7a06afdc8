package tui

import (
	"ledgerview/internal/session"
	"ledgerview/internal/tui/components"
	"ledgerview/internal/tui/themes"
)

// Config carries everything the TUI needs to run.
type Config struct {
	Backend  components.Backend
	Session  *session.Provider
	Theme    themes.Theme
	KeyMap   KeyMap
	PageSize int
	DemoMode bool
}

// Option configures the TUI.
type Option func(*Config)

// WithBackend sets the API backend the components fetch from.
func WithBackend(backend components.Backend) Option {
	return func(c *Config) { c.Backend = backend }
}

// WithSession sets the session provider used for the auth gate.
func WithSession(provider *session.Provider) Option {
	return func(c *Config) { c.Session = provider }
}

// WithTheme sets the color theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) { c.Theme = theme }
}

// WithPageSize sets the transaction list page size.
func WithPageSize(size int) Option {
	return func(c *Config) { c.PageSize = size }
}

// WithDemoMode switches to generated data and skips the auth gate.
func WithDemoMode(enabled bool) Option {
	return func(c *Config) { c.DemoMode = enabled }
}

func newConfig(opts ...Option) Config {
	cfg := Config{
		Theme:    themes.Default,
		KeyMap:   DefaultKeyMap(),
		PageSize: 10,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
