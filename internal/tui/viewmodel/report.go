package viewmodel

import "ledgerview/internal/model"

// BarRow is one row of a horizontal bar chart: a label, the raw value,
// and the bar length in cells scaled against the largest value.
type BarRow struct {
	Label string
	Value float64
	Cells int
}

// BarRows shapes monthly spending points into chart rows. The largest
// amount spans maxCells; any non-zero amount renders at least one cell.
func BarRows(points []model.SpendingPoint, maxCells int) []BarRow {
	maxAmount := 0.0
	for _, p := range points {
		if p.Amount > maxAmount {
			maxAmount = p.Amount
		}
	}

	rows := make([]BarRow, 0, len(points))
	for _, p := range points {
		rows = append(rows, BarRow{
			Label: p.MonthYear,
			Value: p.Amount,
			Cells: scaleCells(p.Amount, maxAmount, maxCells),
		})
	}
	return rows
}

// PieRow is one row of the category breakdown: a (name, value) pair with
// its share of the total and a proportional bar.
type PieRow struct {
	Name    string
	Value   float64
	Percent float64
	Cells   int
}

// PieRows shapes the category breakdown's (name, value) pairs into rows
// with percentage shares.
func PieRows(points []model.PiePoint, maxCells int) []PieRow {
	total := 0.0
	maxValue := 0.0
	for _, p := range points {
		total += p.Value
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}

	rows := make([]PieRow, 0, len(points))
	for _, p := range points {
		percent := 0.0
		if total > 0 {
			percent = p.Value / total * 100
		}
		rows = append(rows, PieRow{
			Name:    p.Name,
			Value:   p.Value,
			Percent: percent,
			Cells:   scaleCells(p.Value, maxValue, maxCells),
		})
	}
	return rows
}

// LineRow is one month of the income-vs-expense chart, with both series
// scaled against the same maximum so the bars are comparable.
type LineRow struct {
	Label        string
	Income       float64
	Expense      float64
	IncomeCells  int
	ExpenseCells int
}

// LineRows shapes income-vs-expense points into paired chart rows.
func LineRows(points []model.IncomeExpensePoint, maxCells int) []LineRow {
	maxValue := 0.0
	for _, p := range points {
		if p.Income > maxValue {
			maxValue = p.Income
		}
		if p.Expense > maxValue {
			maxValue = p.Expense
		}
	}

	rows := make([]LineRow, 0, len(points))
	for _, p := range points {
		rows = append(rows, LineRow{
			Label:        p.MonthYear,
			Income:       p.Income,
			Expense:      p.Expense,
			IncomeCells:  scaleCells(p.Income, maxValue, maxCells),
			ExpenseCells: scaleCells(p.Expense, maxValue, maxCells),
		})
	}
	return rows
}

// scaleCells maps value into [0, maxCells] proportionally to max, with a
// floor of one cell for any non-zero value.
func scaleCells(value, max float64, maxCells int) int {
	if value <= 0 || max <= 0 || maxCells <= 0 {
		return 0
	}
	cells := int(value / max * float64(maxCells))
	if cells < 1 {
		cells = 1
	}
	if cells > maxCells {
		cells = maxCells
	}
	return cells
}
