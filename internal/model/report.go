package model

// ReportType selects which aggregation endpoint and chart shape to use.
type ReportType string

const (
	// ReportMonthlySpending is the 12-month spending bar chart.
	ReportMonthlySpending ReportType = "monthly-spending"
	// ReportExpensesByCategory is the category breakdown pie chart.
	ReportExpensesByCategory ReportType = "expenses-by-category"
	// ReportIncomeVsExpense is the dual-line income/expense chart.
	ReportIncomeVsExpense ReportType = "income-vs-expense"
)

// ReportTypes lists every selectable report in display order.
var ReportTypes = []ReportType{
	ReportMonthlySpending,
	ReportExpensesByCategory,
	ReportIncomeVsExpense,
}

// Label returns the human-readable name of the report type.
func (rt ReportType) Label() string {
	switch rt {
	case ReportMonthlySpending:
		return "Spending: Last 12 Months"
	case ReportExpensesByCategory:
		return "Expense by Category"
	case ReportIncomeVsExpense:
		return "Income vs Expense"
	default:
		return string(rt)
	}
}

// Valid reports whether rt is a member of the closed report-type set.
func (rt ReportType) Valid() bool {
	switch rt {
	case ReportMonthlySpending, ReportExpensesByCategory, ReportIncomeVsExpense:
		return true
	default:
		return false
	}
}

// SpendingPoint is one bar of the monthly spending report.
type SpendingPoint struct {
	MonthYear string  `json:"monthYear"`
	Amount    float64 `json:"amount"`
}

// CategorySlice is one slice of the category breakdown report.
type CategorySlice struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// IncomeExpensePoint is one point of the income-vs-expense report.
type IncomeExpensePoint struct {
	MonthYear string  `json:"monthYear"`
	Income    float64 `json:"income"`
	Expense   float64 `json:"expense"`
}

// Report is a tagged union over the per-type response shapes: exactly one
// of Bars, Slices, or Lines is populated, selected by Type. Consumers must
// switch on Type rather than probing the slices.
type Report struct {
	Type   ReportType
	Bars   []SpendingPoint
	Slices []CategorySlice
	Lines  []IncomeExpensePoint
}

// Empty reports whether the report carries no data points for its type.
func (r Report) Empty() bool {
	switch r.Type {
	case ReportMonthlySpending:
		return len(r.Bars) == 0
	case ReportExpensesByCategory:
		return len(r.Slices) == 0
	case ReportIncomeVsExpense:
		return len(r.Lines) == 0
	default:
		return true
	}
}

// PiePoint is a (name, value) pair ready for pie charting.
type PiePoint struct {
	Name  string
	Value float64
}

// PiePoints reshapes the category breakdown rows into (name, value) pairs.
// It returns nil for the other report types.
func (r Report) PiePoints() []PiePoint {
	if r.Type != ReportExpensesByCategory {
		return nil
	}
	points := make([]PiePoint, 0, len(r.Slices))
	for _, s := range r.Slices {
		points = append(points, PiePoint{Name: s.Category, Value: s.Amount})
	}
	return points
}
