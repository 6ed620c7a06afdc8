package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ledgerview/internal/api"
	"ledgerview/internal/model"
	"ledgerview/internal/tui/themes"
	"ledgerview/internal/tui/viewmodel"
)

const defaultPageSize = 10

var pageSizes = []int{10, 25, 50}

// typeFilters cycles through the type filter values. The first entry means
// no type restriction.
var typeFilters = []string{
	api.FilterAllTypes,
	string(model.TypeIncome),
	string(model.TypeExpense),
}

type listFocus int

const (
	focusTable listFocus = iota
	focusStartDate
	focusEndDate
)

type listCategoriesMsg struct {
	categories []model.Category
	err        error
}

type listPageMsg struct {
	page model.TransactionPage
	err  error
}

// TransactionListModel renders the paginated, filterable transaction table.
type TransactionListModel struct {
	backend Backend
	theme   themes.Theme
	spinner spinner.Model

	table      table.Model
	startInput textinput.Model
	endInput   textinput.Model
	focus      listFocus

	page    model.TransactionPage
	reqPage int
	limit   int
	loading bool
	listErr string

	categories []model.Category
	catErr     string

	typeIdx     int
	categoryIdx int // -1 means all categories

	// applied date range; the inputs hold the draft being edited
	startDate string
	endDate   string

	width  int
	height int
}

// NewTransactionListModel creates the transaction list component.
func NewTransactionListModel(backend Backend, theme themes.Theme, pageSize int) TransactionListModel {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Subtitle

	start := textinput.New()
	start.Placeholder = "YYYY-MM-DD"
	start.CharLimit = 10
	start.Width = 12

	end := textinput.New()
	end.Placeholder = "YYYY-MM-DD"
	end.CharLimit = 10
	end.Width = 12

	t := table.New(
		table.WithColumns(listColumns(80)),
		table.WithFocused(true),
		table.WithHeight(pageSize+1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(theme.Primary)
	styles.Selected = theme.Selected
	t.SetStyles(styles)

	return TransactionListModel{
		backend:     backend,
		theme:       theme,
		spinner:     sp,
		table:       t,
		startInput:  start,
		endInput:    end,
		limit:       pageSize,
		reqPage:     1,
		categoryIdx: -1,
	}
}

func listColumns(width int) []table.Column {
	flexible := max(width-52, 14)
	return []table.Column{
		{Title: "Date", Width: 18},
		{Title: "Category", Width: 14},
		{Title: "Merchant", Width: flexible},
		{Title: "Amount", Width: 12},
		{Title: "Payment", Width: 10},
	}
}

// Open resets all filters and loads the first page along with the category
// list. Filters never survive a close.
func (m TransactionListModel) Open() (TransactionListModel, tea.Cmd) {
	m.typeIdx = 0
	m.categoryIdx = -1
	m.startDate = ""
	m.endDate = ""
	m.startInput.SetValue("")
	m.endInput.SetValue("")
	m.focus = focusTable
	m.reqPage = 1
	m.page = model.TransactionPage{}
	m.listErr = ""
	m.catErr = ""
	m.loading = true
	m.table.SetRows(nil)
	return m, tea.Batch(m.fetchCategories(), m.fetchPage(), m.spinner.Tick)
}

func (m TransactionListModel) fetchCategories() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		categories, err := backend.GetCategories(ctx)
		return listCategoriesMsg{categories: categories, err: err}
	}
}

func (m TransactionListModel) fetchPage() tea.Cmd {
	backend := m.backend
	opts := m.listOptions()
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		page, err := backend.ListTransactions(ctx, opts)
		return listPageMsg{page: page, err: err}
	}
}

// listOptions builds the request options from the applied filters.
func (m TransactionListModel) listOptions() api.ListTransactionsOptions {
	opts := api.ListTransactionsOptions{
		Type:       typeFilters[m.typeIdx],
		CategoryID: api.FilterAllCategories,
		StartDate:  m.startDate,
		EndDate:    m.endDate,
		Page:       m.reqPage,
		Limit:      m.limit,
	}
	if m.categoryIdx >= 0 && m.categoryIdx < len(m.categories) {
		opts.CategoryID = m.categories[m.categoryIdx].ID
	}
	return opts
}

func (m TransactionListModel) pagination() viewmodel.Pagination {
	return viewmodel.Pagination{Current: m.page.CurrentPage, Total: m.page.TotalPages}
}

// EditingDates reports whether a date input has keyboard focus.
func (m TransactionListModel) EditingDates() bool {
	return m.focus != focusTable
}

// refetch starts a page load for the current filters.
func (m TransactionListModel) refetch(page int) (TransactionListModel, tea.Cmd) {
	m.reqPage = page
	m.loading = true
	m.listErr = ""
	return m, tea.Batch(m.fetchPage(), m.spinner.Tick)
}

// Update handles messages for the transaction list.
func (m TransactionListModel) Update(msg tea.Msg) (TransactionListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case listCategoriesMsg:
		if msg.err != nil {
			m.catErr = msg.err.Error()
			m.categories = nil
			m.categoryIdx = -1
			return m, nil
		}
		m.catErr = ""
		m.categories = msg.categories
		return m, nil

	case listPageMsg:
		m.loading = false
		if msg.err != nil {
			m.listErr = msg.err.Error()
			m.page = model.TransactionPage{}
			m.table.SetRows(nil)
			return m, nil
		}
		m.listErr = ""
		m.page = msg.page
		m.reqPage = msg.page.CurrentPage
		m.table.SetRows(m.buildRows(msg.page.Transactions))
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

func (m TransactionListModel) handleKey(msg tea.KeyMsg) (TransactionListModel, tea.Cmd) {
	if m.focus != focusTable {
		return m.handleDateKey(msg)
	}

	switch msg.String() {
	case "n", "right":
		if m.pagination().CanNext() {
			return m.refetch(m.pagination().Clamp(m.page.CurrentPage + 1))
		}
		return m, nil

	case "p", "left":
		if m.pagination().CanPrev() {
			return m.refetch(m.pagination().Clamp(m.page.CurrentPage - 1))
		}
		return m, nil

	case "t":
		m.typeIdx = (m.typeIdx + 1) % len(typeFilters)
		return m.refetch(1)

	case "c":
		if m.catErr != "" || len(m.categories) == 0 {
			return m, nil
		}
		m.categoryIdx++
		if m.categoryIdx >= len(m.categories) {
			m.categoryIdx = -1
		}
		return m.refetch(1)

	case "l":
		m.limit = nextPageSize(m.limit)
		m.table.SetHeight(m.limit + 1)
		return m.refetch(1)

	case "f":
		m.focus = focusStartDate
		m.startInput.Focus()
		return m, textinput.Blink

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
}

func (m TransactionListModel) handleDateKey(msg tea.KeyMsg) (TransactionListModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.startInput.SetValue(m.startDate)
		m.endInput.SetValue(m.endDate)
		m.startInput.Blur()
		m.endInput.Blur()
		m.focus = focusTable
		return m, nil

	case "tab", "shift+tab":
		if m.focus == focusStartDate {
			m.focus = focusEndDate
			m.startInput.Blur()
			m.endInput.Focus()
		} else {
			m.focus = focusStartDate
			m.endInput.Blur()
			m.startInput.Focus()
		}
		return m, textinput.Blink

	case "enter":
		m.startDate = strings.TrimSpace(m.startInput.Value())
		m.endDate = strings.TrimSpace(m.endInput.Value())
		m.startInput.Blur()
		m.endInput.Blur()
		m.focus = focusTable
		return m.refetch(1)
	}

	var cmd tea.Cmd
	if m.focus == focusStartDate {
		m.startInput, cmd = m.startInput.Update(msg)
	} else {
		m.endInput, cmd = m.endInput.Update(msg)
	}
	return m, cmd
}

func nextPageSize(current int) int {
	for i, size := range pageSizes {
		if size == current {
			return pageSizes[(i+1)%len(pageSizes)]
		}
	}
	return pageSizes[0]
}

func (m TransactionListModel) buildRows(transactions []model.Transaction) []table.Row {
	rows := make([]table.Row, 0, len(transactions))
	for _, txn := range transactions {
		amount := fmt.Sprintf("-$%.2f", txn.Amount)
		if txn.Type == model.TypeIncome {
			amount = fmt.Sprintf("+$%.2f", txn.Amount)
		}
		rows = append(rows, table.Row{
			formatDate(txn.Date),
			orNA(txn.CategoryName()),
			orNA(txn.DisplayName()),
			amount,
			orNA(txn.PaymentMethod),
		})
	}
	return rows
}

func formatDate(date time.Time) string {
	if date.IsZero() {
		return "N/A"
	}
	return date.Format("Jan 2, 2006 3:04 PM")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// SetSize updates the layout bounds.
func (m TransactionListModel) SetSize(width, height int) TransactionListModel {
	m.width = width
	m.height = height
	m.table.SetColumns(listColumns(width))
	return m
}

// View renders the list with its filter bar and pagination footer.
func (m TransactionListModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("All Transactions"))
	b.WriteString("\n\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")

	switch {
	case m.listErr != "":
		b.WriteString(m.theme.StatusError.Render("Error: " + m.listErr))
		b.WriteString("\n")
	case m.loading && len(m.page.Transactions) == 0:
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.Faint.Render(" Loading transactions..."))
		b.WriteString("\n")
	case len(m.page.Transactions) == 0:
		b.WriteString(m.theme.Faint.Render("No transactions found for the selected filters."))
		b.WriteString("\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m TransactionListModel) renderFilterBar() string {
	typeLabel := "All Types"
	switch typeFilters[m.typeIdx] {
	case string(model.TypeIncome):
		typeLabel = "Income"
	case string(model.TypeExpense):
		typeLabel = "Expense"
	}

	categoryLabel := "All Categories"
	switch {
	case m.catErr != "":
		categoryLabel = "Error loading categories"
	case m.categoryIdx >= 0 && m.categoryIdx < len(m.categories):
		categoryLabel = m.categories[m.categoryIdx].Name
	}

	dateLabel := "Any date"
	if m.startDate != "" || m.endDate != "" {
		dateLabel = fmt.Sprintf("%s to %s", orNA(m.startDate), orNA(m.endDate))
	}
	if m.focus != focusTable {
		dateLabel = m.startInput.View() + " to " + m.endInput.View()
	}

	parts := []string{
		"[t] Type: " + m.theme.Bold.Render(typeLabel),
		"[c] Category: " + m.theme.Bold.Render(categoryLabel),
		"[f] Dates: " + dateLabel,
		fmt.Sprintf("[l] Per page: %s", m.theme.Bold.Render(fmt.Sprintf("%d", m.limit))),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "   "))
}

func (m TransactionListModel) renderFooter() string {
	pag := m.pagination()

	prev := "[p] Previous"
	if !pag.CanPrev() {
		prev = m.theme.Faint.Render(prev)
	}
	next := "[n] Next"
	if !pag.CanNext() {
		next = m.theme.Faint.Render(next)
	}

	parts := []string{prev, next}
	if pag.Total > 0 {
		parts = append(parts, m.theme.Faint.Render(pag.Label()))
	}
	if m.loading {
		parts = append(parts, m.spinner.View()+" Loading...")
	}
	return strings.Join(parts, "   ")
}
