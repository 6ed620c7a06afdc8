package viewmodel

import (
	"fmt"

	"ledgerview/internal/model"
)

// Tone selects how a stat card value is colored.
type Tone int

const (
	// ToneNeutral renders in the default foreground.
	ToneNeutral Tone = iota
	// TonePositive renders in the income color.
	TonePositive
	// ToneNegative renders in the expense color.
	ToneNegative
	// ToneInfo renders in the info color.
	ToneInfo
)

// StatCard is one dashboard statistics card.
type StatCard struct {
	Title  string
	Value  string
	Detail string
	Tone   Tone
}

// BuildStatCards shapes the dashboard summary into renderable cards.
// Missing numeric fields are zero, so an empty account renders $0.00
// everywhere rather than blanks.
func BuildStatCards(s model.DashboardSummary) []StatCard {
	balanceTone := TonePositive
	if s.TotalBalance < 0 {
		balanceTone = ToneNegative
	}
	netTone := TonePositive
	if s.NetIncomeLast30Days < 0 {
		netTone = ToneNegative
	}

	return []StatCard{
		{
			Title: "Total Balance",
			Value: FormatMoney(s.TotalBalance),
			Tone:  balanceTone,
		},
		{
			Title:  "Monthly Income",
			Value:  FormatMoney(s.MonthlyIncome),
			Detail: FormatChange(s.IncomeChange),
			Tone:   TonePositive,
		},
		{
			Title:  "Monthly Expenses",
			Value:  FormatMoney(s.MonthlyExpenses),
			Detail: FormatChange(s.ExpenseChange),
			Tone:   ToneNegative,
		},
		{
			Title:  "Net (30 days)",
			Value:  FormatMoney(s.NetIncomeLast30Days),
			Detail: fmt.Sprintf("spent %s", FormatMoney(s.TotalExpenseLast30Days)),
			Tone:   netTone,
		},
		{
			Title: "Savings Rate",
			Value: fmt.Sprintf("%.1f%%", s.SavingsRate),
			Tone:  ToneInfo,
		},
		{
			Title: "Transactions (30 days)",
			Value: fmt.Sprintf("%d", s.TotalTransactionsLast30Days),
			Tone:  ToneInfo,
		},
	}
}

// FormatMoney renders an amount as dollars with a leading sign for
// negative values.
func FormatMoney(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

// FormatChange renders a percentage delta with an explicit sign, or an
// empty string for zero.
func FormatChange(v float64) string {
	if v == 0 {
		return ""
	}
	if v > 0 {
		return fmt.Sprintf("+%.1f%% vs last month", v)
	}
	return fmt.Sprintf("%.1f%% vs last month", v)
}
