package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ledgerview/internal/session"
)

// View renders the active screen inside the app chrome.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.authenticated() {
		return m.renderGate()
	}

	var body string
	switch m.view {
	case ViewDashboard:
		body = m.dashboard.View()
	case ViewTransactions:
		body = m.list.View()
	case ViewForm:
		body = m.form.View()
	case ViewReceipt:
		body = m.receipt.View()
	case ViewReports:
		body = m.reports.View()
	case ViewHelp:
		body = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		"",
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	theme := m.config.Theme
	left := theme.Title.Render("ledgerview")
	right := ""
	switch {
	case m.config.DemoMode:
		right = theme.StatusWarning.Render("demo mode")
	case m.config.Session != nil && m.config.Session.User() != nil:
		right = theme.Faint.Render(m.config.Session.User().Email)
	}
	if right == "" {
		return left
	}
	return left + "  " + right
}

func (m Model) renderFooter() string {
	theme := m.config.Theme
	if m.view == ViewDashboard {
		return theme.Faint.Render("a expense  i income  t transactions  g reports  s scan  r refresh  ? help  q quit")
	}
	return theme.Faint.Render("esc back  ? help  ctrl+c quit")
}

// renderGate is the screen shown while no session exists.
func (m Model) renderGate() string {
	theme := m.config.Theme

	var lines []string
	switch m.sessionStatus() {
	case session.StatusInitializing:
		lines = []string{
			theme.Title.Render("ledgerview"),
			"",
			theme.Faint.Render("Checking session..."),
		}
	default:
		lines = []string{
			theme.Title.Render("ledgerview"),
			"",
			"You are not signed in.",
			"",
			"Run " + theme.Bold.Render("ledgerview login") + " to sign in, or start with",
			theme.Bold.Render("ledgerview dashboard --demo") + " to explore with sample data.",
			"",
			theme.Faint.Render("q quit"),
		}
	}
	return theme.BorderedBox.Render(strings.Join(lines, "\n"))
}

func (m Model) renderHelp() string {
	theme := m.config.Theme
	rows := [][2]string{
		{"a", "add an expense"},
		{"i", "add income"},
		{"t", "browse transactions"},
		{"g", "view reports"},
		{"s", "scan a receipt"},
		{"r", "refresh the dashboard"},
		{"esc", "back to the dashboard"},
		{"?", "toggle this help"},
		{"ctrl+c", "quit"},
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Key bindings"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(theme.Bold.Render(padKey(row[0])))
		b.WriteString("  ")
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	return b.String()
}

func padKey(k string) string {
	const width = 7
	if len(k) >= width {
		return k
	}
	return k + strings.Repeat(" ", width-len(k))
}
