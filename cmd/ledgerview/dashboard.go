package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ledgerview/internal/tui"
	"ledgerview/internal/tui/themes"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open the full-screen terminal dashboard.

The dashboard shows your account summary and gives access to the
transaction list, the add-transaction form, receipt scanning, and reports.`,
		RunE: runDashboard,
	}

	cmd.Flags().Bool("demo", false, "Use generated sample data instead of the backend")
	cmd.Flags().Uint64("demo-seed", 42, "Seed for the generated sample data")
	cmd.Flags().String("theme", "", "Color theme (default, catppuccin-mocha)")
	_ = viper.BindPFlag("ui.demo", cmd.Flags().Lookup("demo"))
	_ = viper.BindPFlag("ui.demo_seed", cmd.Flags().Lookup("demo-seed"))
	_ = viper.BindPFlag("ui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	cfg, provider, err := buildProvider()
	if err != nil {
		return err
	}

	opts := []tui.Option{
		tui.WithBackend(buildClient(cfg, provider)),
		tui.WithSession(provider),
		tui.WithTheme(themes.GetTheme(cfg.UI.Theme)),
		tui.WithPageSize(cfg.UI.PageSize),
	}
	if viper.GetBool("ui.demo") {
		opts = append(opts,
			tui.WithBackend(tui.NewDemoBackend(viper.GetUint64("ui.demo_seed"))),
			tui.WithDemoMode(true),
		)
	}

	return tui.Run(cmd.Context(), opts...)
}
