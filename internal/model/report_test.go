package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportTypeValid(t *testing.T) {
	for _, rt := range ReportTypes {
		assert.True(t, rt.Valid(), "expected %q to be valid", rt)
	}
	assert.False(t, ReportType("weekly-spending").Valid())
	assert.False(t, ReportType("").Valid())
}

func TestReportEmpty(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   bool
	}{
		{
			name:   "bars populated",
			report: Report{Type: ReportMonthlySpending, Bars: []SpendingPoint{{MonthYear: "2024-01", Amount: 12}}},
			want:   false,
		},
		{
			name:   "bars empty",
			report: Report{Type: ReportMonthlySpending},
			want:   true,
		},
		{
			name:   "slices populated",
			report: Report{Type: ReportExpensesByCategory, Slices: []CategorySlice{{Category: "Food", Amount: 3}}},
			want:   false,
		},
		{
			name:   "lines empty",
			report: Report{Type: ReportIncomeVsExpense},
			want:   true,
		},
		{
			name:   "unknown type is always empty",
			report: Report{Type: ReportType("bogus"), Bars: []SpendingPoint{{Amount: 1}}},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.report.Empty())
		})
	}
}

func TestReportPiePoints(t *testing.T) {
	report := Report{
		Type: ReportExpensesByCategory,
		Slices: []CategorySlice{
			{Category: "Groceries", Amount: 120.5},
			{Category: "Transport", Amount: 44},
		},
	}

	points := report.PiePoints()
	assert.Equal(t, []PiePoint{
		{Name: "Groceries", Value: 120.5},
		{Name: "Transport", Value: 44},
	}, points)
}

func TestReportPiePointsWrongType(t *testing.T) {
	report := Report{Type: ReportMonthlySpending, Bars: []SpendingPoint{{Amount: 1}}}
	assert.Nil(t, report.PiePoints())
}
