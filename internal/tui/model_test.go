package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerview/internal/tui/components"
)

func demoModel() Model {
	return NewModel(
		WithBackend(NewDemoBackend(1)),
		WithDemoMode(true),
	)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	typed, ok := next.(Model)
	require.True(t, ok)
	return typed, cmd
}

func TestGateShownWithoutSession(t *testing.T) {
	m := NewModel(WithBackend(NewDemoBackend(1)))

	require.False(t, m.authenticated())
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "not signed in")
	assert.Contains(t, m.View(), "ledgerview login")
}

func TestGateBlocksNavigation(t *testing.T) {
	m := NewModel(WithBackend(NewDemoBackend(1)))

	m, cmd := update(t, m, keyMsg("t"))
	assert.Nil(t, cmd)
	assert.Equal(t, ViewDashboard, m.view)
	assert.Contains(t, m.View(), "not signed in")
}

func TestDemoModeBypassesGate(t *testing.T) {
	m := demoModel()

	require.True(t, m.authenticated())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "demo mode")
}

func TestNavigationFromDashboard(t *testing.T) {
	tests := []struct {
		key  string
		want View
	}{
		{"t", ViewTransactions},
		{"a", ViewForm},
		{"i", ViewForm},
		{"g", ViewReports},
		{"s", ViewReceipt},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := demoModel()
			m, cmd := update(t, m, keyMsg(tt.key))
			assert.Equal(t, tt.want, m.view)
			assert.NotNil(t, cmd)
		})
	}
}

func TestEscReturnsToDashboardAndRefreshes(t *testing.T) {
	m := demoModel()
	m, _ = update(t, m, keyMsg("g"))
	require.Equal(t, ViewReports, m.view)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewDashboard, m.view)
	assert.NotNil(t, cmd, "returning to the dashboard reloads it")
}

func TestFormDoneReturnsToDashboard(t *testing.T) {
	m := demoModel()
	m, _ = update(t, m, keyMsg("a"))
	require.Equal(t, ViewForm, m.view)

	m, cmd := update(t, m, components.FormDoneMsg{})
	assert.Equal(t, ViewDashboard, m.view)
	assert.NotNil(t, cmd)
}

func TestHelpToggle(t *testing.T) {
	m := demoModel()
	m, _ = update(t, m, keyMsg("g"))

	m, _ = update(t, m, keyMsg("?"))
	assert.Equal(t, ViewHelp, m.view)
	assert.Contains(t, m.View(), "Key bindings")

	m, _ = update(t, m, keyMsg("?"))
	assert.Equal(t, ViewReports, m.view)
}

func TestQuit(t *testing.T) {
	m := demoModel()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}
