package components

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerview/internal/model"
	"ledgerview/internal/tui/themes"
)

func TestReportsOpenLoadsFirstType(t *testing.T) {
	backend := &stubBackend{
		reportFn: func(_ context.Context, reportType model.ReportType) (model.Report, error) {
			return model.Report{
				Type: reportType,
				Bars: []model.SpendingPoint{{MonthYear: "2024-01", Amount: 321.50}},
			}, nil
		},
	}
	m := NewReportsModel(backend, themes.Default)

	m, cmd := m.Open()
	require.NotNil(t, cmd)
	assert.Equal(t, model.ReportMonthlySpending, m.SelectedType())
	assert.True(t, m.loading)

	m, _ = m.Update(findMsg[reportLoadedMsg](t, cmd()))
	assert.False(t, m.loading)
	assert.True(t, m.hasData)
	assert.Contains(t, m.View(), "2024-01")
	assert.Contains(t, m.View(), "$321.50")
}

func TestReportsStaleResponseDiscarded(t *testing.T) {
	backend := &stubBackend{}
	m := NewReportsModel(backend, themes.Default)

	m, firstCmd := m.Open()
	require.NotNil(t, firstCmd)
	firstMsg := findMsg[reportLoadedMsg](t, firstCmd())

	// switch type before the first response lands
	m, secondCmd := m.Update(keyMsg("n"))
	require.NotNil(t, secondCmd)
	assert.Equal(t, model.ReportExpensesByCategory, m.SelectedType())

	// the superseded response must not touch the state
	m, _ = m.Update(firstMsg)
	assert.True(t, m.loading)
	assert.False(t, m.hasData)

	// the current response is applied normally
	secondMsg := findMsg[reportLoadedMsg](t, secondCmd())
	m, _ = m.Update(secondMsg)
	assert.False(t, m.loading)
	assert.True(t, m.hasData)
	assert.Equal(t, model.ReportExpensesByCategory, m.report.Type)
}

func TestReportsTypeChangeDiscardsPriorChart(t *testing.T) {
	backend := &stubBackend{
		reportFn: func(_ context.Context, reportType model.ReportType) (model.Report, error) {
			return model.Report{
				Type: reportType,
				Bars: []model.SpendingPoint{{MonthYear: "2024-01", Amount: 10}},
			}, nil
		},
	}
	m := NewReportsModel(backend, themes.Default)
	m, cmd := m.Open()
	m, _ = m.Update(findMsg[reportLoadedMsg](t, cmd()))
	require.True(t, m.hasData)

	// prior chart disappears the moment the selection changes
	m, _ = m.Update(keyMsg("n"))
	assert.True(t, m.loading)
	assert.False(t, m.hasData)
	assert.True(t, m.report.Empty())
}

func TestReportsErrorState(t *testing.T) {
	backend := &stubBackend{
		reportFn: func(context.Context, model.ReportType) (model.Report, error) {
			return model.Report{}, errors.New("Failed to fetch report data from backend.")
		},
	}
	m := NewReportsModel(backend, themes.Default)
	m, cmd := m.Open()
	m, _ = m.Update(findMsg[reportLoadedMsg](t, cmd()))

	assert.False(t, m.loading)
	assert.Contains(t, m.View(), "Failed to fetch report data")
}

func TestReportsEmptyState(t *testing.T) {
	backend := &stubBackend{
		reportFn: func(_ context.Context, reportType model.ReportType) (model.Report, error) {
			return model.Report{Type: reportType}, nil
		},
	}
	m := NewReportsModel(backend, themes.Default)
	m, cmd := m.Open()
	m, _ = m.Update(findMsg[reportLoadedMsg](t, cmd()))

	assert.Contains(t, m.View(), "No data available for this report.")
}

func TestReportsSelectorWrapsAround(t *testing.T) {
	backend := &stubBackend{}
	m := NewReportsModel(backend, themes.Default)
	m, _ = m.Open()

	m, _ = m.Update(keyMsg("p"))
	assert.Equal(t, model.ReportIncomeVsExpense, m.SelectedType())

	m, _ = m.Update(keyMsg("n"))
	assert.Equal(t, model.ReportMonthlySpending, m.SelectedType())
}
