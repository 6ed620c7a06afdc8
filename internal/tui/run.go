package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI and blocks until it exits.
func Run(ctx context.Context, opts ...Option) error {
	model := NewModel(opts...)
	if model.config.Backend == nil {
		return fmt.Errorf("tui: no backend configured")
	}

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
