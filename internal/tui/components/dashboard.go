package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ledgerview/internal/model"
	"ledgerview/internal/tui/themes"
	"ledgerview/internal/tui/viewmodel"
)

// dashboardRefreshedMsg carries the result of one profile+summary fetch.
// Both values come from the same fetch; a failure in either leaves both nil.
type dashboardRefreshedMsg struct {
	profile     *model.Profile
	summary     *model.DashboardSummary
	completedAt time.Time
	err         error
}

// DashboardModel renders the summary stat cards and the quick-action hints.
type DashboardModel struct {
	backend Backend
	theme   themes.Theme
	spinner spinner.Model

	profile     *model.Profile
	summary     *model.DashboardSummary
	lastUpdated time.Time
	errMsg      string
	loading     bool

	width  int
	height int
}

// NewDashboardModel creates a dashboard component in its empty state.
func NewDashboardModel(backend Backend, theme themes.Theme) DashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Subtitle
	return DashboardModel{
		backend: backend,
		theme:   theme,
		spinner: sp,
	}
}

// Open starts a fresh fetch. Previous data stays on screen until the fetch
// resolves, mirroring a reload.
func (m DashboardModel) Open() (DashboardModel, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	m.loading = true
	m.errMsg = ""
	return m, tea.Batch(m.fetch(), m.spinner.Tick)
}

// Loading reports whether a refresh is in flight.
func (m DashboardModel) Loading() bool {
	return m.loading
}

// Profile returns the fetched profile, or nil before the first successful load.
func (m DashboardModel) Profile() *model.Profile {
	return m.profile
}

func (m DashboardModel) fetch() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()

		profile, err := backend.GetProfile(ctx)
		if err != nil {
			return dashboardRefreshedMsg{err: err}
		}
		summary, err := backend.GetDashboardSummary(ctx)
		if err != nil {
			return dashboardRefreshedMsg{err: err}
		}
		return dashboardRefreshedMsg{
			profile:     &profile,
			summary:     &summary,
			completedAt: time.Now(),
		}
	}
}

// Update handles messages for the dashboard.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m.Open()
		}

	case dashboardRefreshedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.profile = nil
			m.summary = nil
			return m, nil
		}
		m.errMsg = ""
		m.profile = msg.profile
		m.summary = msg.summary
		m.lastUpdated = msg.completedAt
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// SetSize updates the layout bounds.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	var b strings.Builder

	title := "Financial Dashboard"
	if m.profile != nil {
		if name := m.profile.FirstName(); name != "" {
			title = fmt.Sprintf("Welcome back, %s!", name)
		}
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Monitor and manage your financial portfolio"))
	b.WriteString("\n\n")

	switch {
	case m.loading && m.summary == nil:
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.Faint.Render(" Loading dashboard..."))
		b.WriteString("\n")
	case m.errMsg != "":
		b.WriteString(m.theme.StatusError.Render("Error: " + m.errMsg))
		b.WriteString("\n")
		b.WriteString(m.theme.Faint.Render("Press r to retry."))
		b.WriteString("\n")
	case m.summary != nil:
		b.WriteString(m.renderCards())
		b.WriteString("\n")
		if m.summary.TotalTransactionsLast30Days == 0 {
			b.WriteString(m.renderGettingStarted())
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m DashboardModel) renderCards() string {
	cards := viewmodel.BuildStatCards(*m.summary)
	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		rendered = append(rendered, m.renderCard(card))
	}

	perRow := 3
	if m.width > 0 && m.width < 72 {
		perRow = 2
	}
	var rows []string
	for i := 0; i < len(rendered); i += perRow {
		end := min(i+perRow, len(rendered))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m DashboardModel) renderCard(card viewmodel.StatCard) string {
	var valueStyle lipgloss.Style
	switch card.Tone {
	case viewmodel.TonePositive:
		valueStyle = m.theme.Income
	case viewmodel.ToneNegative:
		valueStyle = m.theme.Expense
	default:
		valueStyle = m.theme.Bold
	}

	lines := []string{
		m.theme.Subtitle.Render(card.Title),
		valueStyle.Render(card.Value),
	}
	if card.Detail != "" {
		lines = append(lines, m.theme.Faint.Render(card.Detail))
	}
	return m.theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m DashboardModel) renderGettingStarted() string {
	lines := []string{
		m.theme.Bold.Render("Getting started"),
		"No transactions in the last 30 days.",
		"Press a to add an expense or i to add income.",
		"Press s to scan a receipt.",
	}
	return m.theme.BorderedBox.Render(strings.Join(lines, "\n"))
}

func (m DashboardModel) renderStatus() string {
	var parts []string
	if !m.lastUpdated.IsZero() {
		parts = append(parts, "Last updated: "+m.lastUpdated.Format("3:04:05 PM"))
	}
	if m.loading {
		parts = append(parts, m.spinner.View()+" Refreshing...")
	} else {
		parts = append(parts, "r refresh")
	}
	return m.theme.Faint.Render(strings.Join(parts, "  •  "))
}
