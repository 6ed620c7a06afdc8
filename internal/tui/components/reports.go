package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"ledgerview/internal/model"
	"ledgerview/internal/tui/themes"
	"ledgerview/internal/tui/viewmodel"
)

const chartCells = 40

// reportLoadedMsg carries one report response together with the sequence
// number of the request that produced it.
type reportLoadedMsg struct {
	seq    int
	report model.Report
	err    error
}

// ReportsModel renders the three report charts, one at a time.
//
// Every fetch is stamped with a sequence number and only the response
// matching the latest stamp is applied. Responses from superseded requests
// are discarded no matter when they arrive.
type ReportsModel struct {
	backend Backend
	theme   themes.Theme
	spinner spinner.Model

	typeIdx int
	seq     int

	report  model.Report
	hasData bool
	loading bool
	errMsg  string

	width  int
	height int
}

// NewReportsModel creates the reports component.
func NewReportsModel(backend Backend, theme themes.Theme) ReportsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Subtitle
	return ReportsModel{
		backend: backend,
		theme:   theme,
		spinner: sp,
	}
}

// Open resets to the first report type and fetches it.
func (m ReportsModel) Open() (ReportsModel, tea.Cmd) {
	m.typeIdx = 0
	return m.load()
}

// SelectedType returns the report type currently displayed.
func (m ReportsModel) SelectedType() model.ReportType {
	return model.ReportTypes[m.typeIdx]
}

// load discards the current chart and starts a fetch for the selected type.
func (m ReportsModel) load() (ReportsModel, tea.Cmd) {
	m.seq++
	m.loading = true
	m.errMsg = ""
	m.report = model.Report{}
	m.hasData = false

	seq := m.seq
	reportType := m.SelectedType()
	backend := m.backend
	return m, tea.Batch(
		func() tea.Msg {
			ctx, cancel := fetchContext()
			defer cancel()
			report, err := backend.GetReport(ctx, reportType)
			return reportLoadedMsg{seq: seq, report: report, err: err}
		},
		m.spinner.Tick,
	)
}

// Update handles messages for the reports view.
func (m ReportsModel) Update(msg tea.Msg) (ReportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "right", "tab", "n":
			m.typeIdx = (m.typeIdx + 1) % len(model.ReportTypes)
			return m.load()
		case "left", "shift+tab", "p":
			m.typeIdx = (m.typeIdx + len(model.ReportTypes) - 1) % len(model.ReportTypes)
			return m.load()
		}

	case reportLoadedMsg:
		if msg.seq != m.seq {
			// stale response from a superseded request
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.report = msg.report
		m.hasData = true
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
func (m ReportsModel) SetSize(width, height int) ReportsModel {
	m.width = width
	m.height = height
	return m
}

// View renders the report selector and the active chart.
func (m ReportsModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Reports"))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Faint.Render("◀ "))
	b.WriteString(m.theme.Bold.Render(m.SelectedType().Label()))
	b.WriteString(m.theme.Faint.Render(" ▶"))
	b.WriteString(m.theme.Faint.Render(fmt.Sprintf("   (%d/%d)", m.typeIdx+1, len(model.ReportTypes))))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.Faint.Render(" Loading chart..."))
		b.WriteString("\n")
	case m.errMsg != "":
		b.WriteString(m.theme.StatusError.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	case m.hasData && m.report.Empty():
		b.WriteString(m.theme.Faint.Render("No data available for this report."))
		b.WriteString("\n")
	case m.hasData:
		b.WriteString(m.renderChart())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render("←/→ switch report  •  esc back"))
	return b.String()
}

func (m ReportsModel) renderChart() string {
	switch m.report.Type {
	case model.ReportMonthlySpending:
		return m.renderBars()
	case model.ReportExpensesByCategory:
		return m.renderPie()
	case model.ReportIncomeVsExpense:
		return m.renderLines()
	default:
		return ""
	}
}

func (m ReportsModel) renderBars() string {
	var b strings.Builder
	for _, row := range viewmodel.BarRows(m.report.Bars, chartCells) {
		b.WriteString(fmt.Sprintf("%-8s ", row.Label))
		b.WriteString(m.theme.Bar.Render(strings.Repeat("█", row.Cells)))
		b.WriteString(fmt.Sprintf(" %s\n", viewmodel.FormatMoney(row.Value)))
	}
	return b.String()
}

func (m ReportsModel) renderPie() string {
	var b strings.Builder
	for _, row := range viewmodel.PieRows(m.report.PiePoints(), chartCells) {
		b.WriteString(fmt.Sprintf("%-18s ", row.Name))
		b.WriteString(m.theme.Bar.Render(strings.Repeat("█", row.Cells)))
		b.WriteString(fmt.Sprintf(" %.1f%% (%s)\n", row.Percent, viewmodel.FormatMoney(row.Value)))
	}
	return b.String()
}

func (m ReportsModel) renderLines() string {
	var b strings.Builder
	for _, row := range viewmodel.LineRows(m.report.Lines, chartCells) {
		b.WriteString(fmt.Sprintf("%-8s ", row.Label))
		b.WriteString(m.theme.BarAlt.Render(strings.Repeat("█", row.IncomeCells)))
		b.WriteString(fmt.Sprintf(" %s in\n", viewmodel.FormatMoney(row.Income)))
		b.WriteString(strings.Repeat(" ", 9))
		b.WriteString(m.theme.Expense.Render(strings.Repeat("█", row.ExpenseCells)))
		b.WriteString(fmt.Sprintf(" %s out\n", viewmodel.FormatMoney(row.Expense)))
	}
	return b.String()
}
