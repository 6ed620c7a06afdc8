// Package session is the application's single auth provider. One Provider
// is created at startup, shared by every controller, and lives for the
// process lifetime. It owns the opaque credentials file and hands out a
// bearer token per request; no other component duplicates session state.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/oauth2"
)

// ErrNotAuthenticated indicates no saved credentials exist; callers should
// direct the user to the login flow.
var ErrNotAuthenticated = errors.New("not authenticated - run 'ledgerview login'")

// Status describes the provider's authentication state.
type Status int

const (
	// StatusInitializing means the credentials file has not been read yet.
	StatusInitializing Status = iota
	// StatusUnauthenticated means no valid credentials are available.
	StatusUnauthenticated
	// StatusAuthenticated means a token is available for API calls.
	StatusAuthenticated
)

// User is the identity reported by the auth provider at login time.
type User struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// Config holds the OAuth2 settings for the auth provider.
type Config struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	Audience     string
	TokenFile    string
	CallbackAddr string
}

// Provider supplies authentication state and per-request bearer tokens.
type Provider struct {
	token   *oauth2.Token
	user    *User
	loadErr error
	config  Config
	oauth   oauth2.Config
	mu      sync.Mutex
}

// NewProvider creates the provider and loads any saved credentials. A
// missing credentials file is the ordinary unauthenticated state, not an
// error.
func NewProvider(cfg Config) *Provider {
	p := &Provider{
		config: cfg,
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
			RedirectURL: "http://" + cfg.CallbackAddr + "/callback",
		},
	}

	creds, err := loadCredentials(cfg.TokenFile)
	switch {
	case err == nil:
		p.token = &creds.Token
		p.user = creds.User
	case errors.Is(err, errNoCredentials):
		// First run; nothing saved yet.
	default:
		p.loadErr = err
		slog.Warn("failed to read saved credentials", "error", err, "file", cfg.TokenFile)
	}

	return p
}

// Status returns the current authentication state.
func (p *Provider) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.token == nil {
		return StatusUnauthenticated
	}
	return StatusAuthenticated
}

// IsAuthenticated reports whether a token is available.
func (p *Provider) IsAuthenticated() bool {
	return p.Status() == StatusAuthenticated
}

// User returns the identity captured at login, or nil.
func (p *Provider) User() *User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.user
}

// Token returns a bearer token for a single request, refreshing through
// the auth provider when the saved token has expired. Tokens are obtained
// fresh on every call; nothing outside this provider caches them.
func (p *Provider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token == nil {
		return "", ErrNotAuthenticated
	}

	tok, err := p.oauth.TokenSource(ctx, p.token).Token()
	if err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}

	if tok.AccessToken != p.token.AccessToken {
		p.token = tok
		if saveErr := saveCredentials(p.config.TokenFile, credentials{Token: *tok, User: p.user}); saveErr != nil {
			slog.Warn("failed to persist refreshed token", "error", saveErr)
		}
	}

	return tok.AccessToken, nil
}

// Logout discards the saved credentials.
func (p *Provider) Logout() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.token = nil
	p.user = nil
	return removeCredentials(p.config.TokenFile)
}

// setSession installs a freshly obtained token and identity and persists
// them. Used by the login flow.
func (p *Provider) setSession(token *oauth2.Token, user *User) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.token = token
	p.user = user
	return saveCredentials(p.config.TokenFile, credentials{Token: *token, User: user})
}
