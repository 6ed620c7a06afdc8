package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerview/internal/model"
)

func TestBarRows(t *testing.T) {
	points := []model.SpendingPoint{
		{MonthYear: "2024-01", Amount: 100},
		{MonthYear: "2024-02", Amount: 50},
		{MonthYear: "2024-03", Amount: 1},
		{MonthYear: "2024-04", Amount: 0},
	}

	rows := BarRows(points, 20)
	require.Len(t, rows, 4)

	assert.Equal(t, 20, rows[0].Cells, "largest value spans the full width")
	assert.Equal(t, 10, rows[1].Cells)
	assert.Equal(t, 1, rows[2].Cells, "non-zero values render at least one cell")
	assert.Equal(t, 0, rows[3].Cells)
	assert.Equal(t, "2024-01", rows[0].Label)
}

func TestBarRowsEmpty(t *testing.T) {
	assert.Empty(t, BarRows(nil, 20))
}

func TestPieRows(t *testing.T) {
	points := []model.PiePoint{
		{Name: "Groceries", Value: 75},
		{Name: "Transport", Value: 25},
	}

	rows := PieRows(points, 10)
	require.Len(t, rows, 2)

	assert.Equal(t, "Groceries", rows[0].Name)
	assert.InDelta(t, 75.0, rows[0].Percent, 0.001)
	assert.InDelta(t, 25.0, rows[1].Percent, 0.001)
	assert.Equal(t, 10, rows[0].Cells)
}

func TestPieRowsZeroTotal(t *testing.T) {
	rows := PieRows([]model.PiePoint{{Name: "Nothing", Value: 0}}, 10)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].Percent)
	assert.Zero(t, rows[0].Cells)
}

func TestLineRows(t *testing.T) {
	points := []model.IncomeExpensePoint{
		{MonthYear: "2024-01", Income: 5000, Expense: 2500},
		{MonthYear: "2024-02", Income: 4000, Expense: 5000},
	}

	rows := LineRows(points, 20)
	require.Len(t, rows, 2)

	// Both series scale against the same maximum (5000).
	assert.Equal(t, 20, rows[0].IncomeCells)
	assert.Equal(t, 10, rows[0].ExpenseCells)
	assert.Equal(t, 16, rows[1].IncomeCells)
	assert.Equal(t, 20, rows[1].ExpenseCells)
}
