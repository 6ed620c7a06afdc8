package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

var errNoCredentials = errors.New("no saved credentials")

// credentials is the on-disk shape of the session: the OAuth2 token plus
// the identity captured at login.
type credentials struct {
	User  *User        `json:"user,omitempty"`
	Token oauth2.Token `json:"token"`
}

func loadCredentials(path string) (credentials, error) {
	var creds credentials

	f, err := os.Open(path) // #nosec G304
	if err != nil {
		if os.IsNotExist(err) {
			return creds, errNoCredentials
		}
		return creds, fmt.Errorf("failed to open credentials file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewDecoder(f).Decode(&creds); err != nil {
		return creds, fmt.Errorf("failed to decode credentials file: %w", err)
	}
	return creds, nil
}

func saveCredentials(path string, creds credentials) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create credentials file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewEncoder(f).Encode(creds); err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	return nil
}

func removeCredentials(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}
	return nil
}
