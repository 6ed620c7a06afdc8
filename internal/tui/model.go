// Package tui implements the terminal dashboard. The root model owns view
// routing and the auth gate; each feature is a self-contained component.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ledgerview/internal/model"
	"ledgerview/internal/session"
	"ledgerview/internal/tui/components"
)

// View identifies the active screen.
type View int

const (
	// ViewDashboard is the summary landing screen.
	ViewDashboard View = iota
	// ViewTransactions is the paginated transaction list.
	ViewTransactions
	// ViewForm is the add-transaction form.
	ViewForm
	// ViewReceipt is the receipt scanner.
	ViewReceipt
	// ViewReports is the chart browser.
	ViewReports
	// ViewHelp is the key binding overview.
	ViewHelp
)

// Model is the root TUI model.
type Model struct {
	config Config
	keymap KeyMap

	dashboard components.DashboardModel
	list      components.TransactionListModel
	form      components.TransactionFormModel
	receipt   components.ReceiptModel
	reports   components.ReportsModel

	view     View
	prevView View
	width    int
	height   int
	quitting bool
}

// NewModel builds the root model from the given options.
func NewModel(opts ...Option) Model {
	cfg := newConfig(opts...)
	return Model{
		config:    cfg,
		keymap:    cfg.KeyMap,
		dashboard: components.NewDashboardModel(cfg.Backend, cfg.Theme),
		list:      components.NewTransactionListModel(cfg.Backend, cfg.Theme, cfg.PageSize),
		form:      components.NewTransactionFormModel(cfg.Backend, cfg.Theme),
		receipt:   components.NewReceiptModel(cfg.Backend, cfg.Theme),
		reports:   components.NewReportsModel(cfg.Backend, cfg.Theme),
	}
}

// authenticated reports whether the auth gate is open. Demo mode bypasses
// the session entirely.
func (m Model) authenticated() bool {
	if m.config.DemoMode {
		return true
	}
	return m.config.Session != nil && m.config.Session.IsAuthenticated()
}

func (m Model) sessionStatus() session.Status {
	if m.config.Session == nil {
		return session.StatusUnauthenticated
	}
	return m.config.Session.Status()
}

type initMsg struct{}

// Init kicks off the initial dashboard load when a session exists.
func (m Model) Init() tea.Cmd {
	if !m.authenticated() {
		return nil
	}
	return func() tea.Msg { return initMsg{} }
}

// Update routes messages. Key presses go to the active view only; every
// other message is broadcast so in-flight fetch results reach their owner
// even after the user navigated away.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dashboard = m.dashboard.SetSize(msg.Width, msg.Height)
		m.list = m.list.SetSize(msg.Width, msg.Height)
		m.receipt = m.receipt.SetSize(msg.Width, msg.Height)
		m.reports = m.reports.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case initMsg:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Open()
		return m, cmd

	case components.FormDoneMsg:
		next, cmd := m.showDashboard()
		return next, cmd
	}

	return m.broadcast(msg)
}

func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.dashboard, cmd = m.dashboard.Update(msg)
	cmds = append(cmds, cmd)
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	m.form, cmd = m.form.Update(msg)
	cmds = append(cmds, cmd)
	m.receipt, cmd = m.receipt.Update(msg)
	cmds = append(cmds, cmd)
	m.reports, cmd = m.reports.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.authenticated() {
		if msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if key.Matches(msg, m.keymap.Help) && !m.typing() {
		if m.view == ViewHelp {
			m.view = m.prevView
		} else {
			m.prevView = m.view
			m.view = ViewHelp
		}
		return m, nil
	}

	if key.Matches(msg, m.keymap.Back) && m.view != ViewDashboard && !m.editingDates() {
		if m.view == ViewHelp {
			m.view = m.prevView
			return m, nil
		}
		next, cmd := m.showDashboard()
		return next, cmd
	}

	if m.view == ViewDashboard {
		if handled, next, cmd := m.handleDashboardKey(msg); handled {
			return next, cmd
		}
	}

	return m.updateActive(msg)
}

// typing reports whether the active view owns free-text input, in which
// case global single-letter shortcuts must not fire.
func (m Model) typing() bool {
	return m.view == ViewForm || m.view == ViewReceipt || m.editingDates()
}

func (m Model) editingDates() bool {
	return m.view == ViewTransactions && m.list.EditingDates()
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keymap.Transactions):
		m.view = ViewTransactions
		m.list, cmd = m.list.Open()
	case key.Matches(msg, m.keymap.AddExpense):
		m.view = ViewForm
		m.form, cmd = m.form.Open(model.TypeExpense)
	case key.Matches(msg, m.keymap.AddIncome):
		m.view = ViewForm
		m.form, cmd = m.form.Open(model.TypeIncome)
	case key.Matches(msg, m.keymap.Reports):
		m.view = ViewReports
		m.reports, cmd = m.reports.Open()
	case key.Matches(msg, m.keymap.Receipt):
		m.view = ViewReceipt
		m.receipt, cmd = m.receipt.Open()
	case msg.String() == "q":
		m.quitting = true
		return true, m, tea.Quit
	default:
		return false, m, nil
	}
	return true, m, cmd
}

// showDashboard returns to the dashboard and refreshes it so the summary
// reflects whatever just happened elsewhere.
func (m Model) showDashboard() (Model, tea.Cmd) {
	m.view = ViewDashboard
	var cmd tea.Cmd
	m.dashboard, cmd = m.dashboard.Open()
	return m, cmd
}

func (m Model) updateActive(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewTransactions:
		m.list, cmd = m.list.Update(msg)
	case ViewForm:
		m.form, cmd = m.form.Update(msg)
	case ViewReceipt:
		m.receipt, cmd = m.receipt.Update(msg)
	case ViewReports:
		m.reports, cmd = m.reports.Update(msg)
	}
	return m, cmd
}
