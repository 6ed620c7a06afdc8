package main

import (
	"fmt"

	"ledgerview/internal/api"
	"ledgerview/internal/config"
	"ledgerview/internal/session"
)

// buildProvider loads configuration and creates the session provider.
func buildProvider() (config.Config, *session.Provider, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, session.NewProvider(cfg.Auth), nil
}

// buildClient wires the API client to the session provider.
func buildClient(cfg config.Config, provider *session.Provider) *api.Client {
	return api.NewClient(cfg.API.BaseURL, provider, cfg.API.Timeout)
}
