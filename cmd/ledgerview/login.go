package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in to the backend",
		Long: `Sign in via the configured OAuth provider.

A browser window opens for consent; the resulting credentials are stored in
the config directory and refreshed automatically from then on.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, provider, err := buildProvider()
			if err != nil {
				return err
			}

			if provider.IsAuthenticated() {
				if user := provider.User(); user != nil {
					fmt.Printf("Already signed in as %s.\n", user.Email)
					return nil
				}
			}

			if err := provider.Login(cmd.Context()); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			if user := provider.User(); user != nil {
				fmt.Printf("Signed in as %s.\n", user.Email)
			} else {
				fmt.Println("Signed in.")
			}
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and remove stored credentials",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, provider, err := buildProvider()
			if err != nil {
				return err
			}

			if err := provider.Logout(); err != nil {
				return fmt.Errorf("logout failed: %w", err)
			}
			slog.Debug("credentials removed")
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, provider, err := buildProvider()
			if err != nil {
				return err
			}

			if !provider.IsAuthenticated() {
				fmt.Println("Not signed in. Run 'ledgerview login'.")
				return nil
			}

			client := buildClient(cfg, provider)
			profile, err := client.GetProfile(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching profile: %w", err)
			}
			fmt.Printf("%s <%s>\n", profile.Username, profile.Email)
			return nil
		},
	}
}
