package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const loginTimeout = 5 * time.Minute

// Login performs the interactive OAuth2 authorization-code flow: it starts
// a local callback server, prints the provider URL for the user to visit,
// exchanges the returned code for a token, captures the user identity, and
// persists both.
func (p *Provider) Login(ctx context.Context) error {
	state, err := randomState()
	if err != nil {
		return fmt.Errorf("failed to generate state: %w", err)
	}

	codeChan := make(chan string, 1)
	errChan := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			errChan <- fmt.Errorf("state mismatch in callback")
			_, _ = fmt.Fprint(w, "<html><body><h1>Authentication Failed</h1><p>State mismatch. Please try again.</p></body></html>")
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no authorization code received")
			_, _ = fmt.Fprint(w, "<html><body><h1>Authentication Failed</h1><p>No authorization code received. Please try again.</p></body></html>")
			return
		}
		codeChan <- code
		_, _ = fmt.Fprint(w, "<html><body><h1>Authentication Successful!</h1><p>You can close this window and return to the terminal.</p></body></html>")
	})

	server := &http.Server{Addr: p.config.CallbackAddr, Handler: mux}
	go func() {
		if serveErr := server.ListenAndServe(); serveErr != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to start callback server: %w", serveErr)
		}
	}()
	defer func() { _ = server.Shutdown(ctx) }()

	opts := []oauth2.AuthCodeOption{oauth2.AccessTypeOffline}
	if p.config.Audience != "" {
		opts = append(opts, oauth2.SetAuthURLParam("audience", p.config.Audience))
	}
	authURL := p.oauth.AuthCodeURL(state, opts...)

	slog.Info("Authentication required")
	slog.Info("Please visit this URL to sign in", "url", authURL)
	slog.Info("Waiting for authentication...")

	var code string
	select {
	case code = <-codeChan:
	case loginErr := <-errChan:
		return loginErr
	case <-time.After(loginTimeout):
		return fmt.Errorf("authentication timeout - no response received within %s", loginTimeout)
	case <-ctx.Done():
		return ctx.Err()
	}

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	user := p.fetchUserInfo(ctx, token)

	if err := p.setSession(token, user); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	slog.Info("Signed in", "user", userLabel(user))
	return nil
}

// fetchUserInfo asks the auth provider who just signed in. Best effort:
// the backend profile endpoint is the authoritative identity source.
func (p *Provider) fetchUserInfo(ctx context.Context, token *oauth2.Token) *User {
	if p.config.UserInfoURL == "" {
		return nil
	}

	client := p.oauth.Client(ctx, token)
	resp, err := client.Get(p.config.UserInfoURL)
	if err != nil {
		slog.Warn("failed to fetch user info", "error", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("user info request failed", "status", resp.StatusCode)
		return nil
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		slog.Warn("failed to decode user info", "error", err)
		return nil
	}
	return &user
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func userLabel(user *User) string {
	if user == nil {
		return "unknown"
	}
	if user.Email != "" {
		return user.Email
	}
	return user.Name
}
