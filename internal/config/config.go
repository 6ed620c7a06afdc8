// Package config loads application configuration from Viper (config file
// plus LEDGERVIEW_ environment variables) with sensible defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"ledgerview/internal/session"
)

// Configuration errors.
var (
	// ErrMissingConfig indicates a required setting is absent.
	ErrMissingConfig = errors.New("missing configuration")
	// ErrInvalidConfig indicates a setting has an unusable value.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	Theme    string
	PageSize int
}

// Config is the full application configuration.
type Config struct {
	API  APIConfig
	Auth session.Config
	UI   UIConfig
}

// Load reads configuration from Viper. Defaults target a local backend and
// the standard config directory.
func Load() (Config, error) {
	cfg := Config{
		API: APIConfig{
			BaseURL: "http://localhost:5000",
			Timeout: 30 * time.Second,
		},
		Auth: session.Config{
			TokenFile:    "~/.config/ledgerview/credentials.json",
			CallbackAddr: "localhost:8080",
		},
		UI: UIConfig{
			Theme:    "default",
			PageSize: 10,
		},
	}

	if v := viper.GetString("api.base_url"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := viper.GetDuration("api.timeout"); v > 0 {
		cfg.API.Timeout = v
	}

	if v := viper.GetString("auth.client_id"); v != "" {
		cfg.Auth.ClientID = v
	}
	if v := viper.GetString("auth.client_secret"); v != "" {
		cfg.Auth.ClientSecret = v
	}
	if v := viper.GetString("auth.auth_url"); v != "" {
		cfg.Auth.AuthURL = v
	}
	if v := viper.GetString("auth.token_url"); v != "" {
		cfg.Auth.TokenURL = v
	}
	if v := viper.GetString("auth.userinfo_url"); v != "" {
		cfg.Auth.UserInfoURL = v
	}
	if v := viper.GetString("auth.audience"); v != "" {
		cfg.Auth.Audience = v
	}
	if v := viper.GetString("auth.token_file"); v != "" {
		cfg.Auth.TokenFile = v
	}
	if v := viper.GetString("auth.callback_addr"); v != "" {
		cfg.Auth.CallbackAddr = v
	}

	if v := viper.GetString("ui.theme"); v != "" {
		cfg.UI.Theme = v
	}
	if v := viper.GetInt("ui.page_size"); v > 0 {
		cfg.UI.PageSize = v
	}

	cfg.Auth.TokenFile = ExpandPath(cfg.Auth.TokenFile)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings every command depends on.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("%w: api.base_url", ErrMissingConfig)
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("%w: api.base_url must be an http(s) URL", ErrInvalidConfig)
	}
	if c.UI.PageSize <= 0 {
		return fmt.Errorf("%w: ui.page_size must be positive", ErrInvalidConfig)
	}
	if c.Auth.TokenFile == "" {
		return fmt.Errorf("%w: auth.token_file", ErrMissingConfig)
	}
	return nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
