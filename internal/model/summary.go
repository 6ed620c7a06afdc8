package model

// Profile is the backend's view of the authenticated user.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Picture  string `json:"picture"`
}

// FirstName returns the first word of the username for greetings.
func (p Profile) FirstName() string {
	for i, r := range p.Username {
		if r == ' ' {
			return p.Username[:i]
		}
	}
	return p.Username
}

// DashboardSummary is the aggregate statistics block rendered on the
// dashboard. Numeric fields absent from the response decode to zero, which
// is exactly the display default.
type DashboardSummary struct {
	TotalBalance                float64 `json:"totalBalance"`
	MonthlyIncome               float64 `json:"monthlyIncome"`
	MonthlyExpenses             float64 `json:"monthlyExpenses"`
	NetIncomeLast30Days         float64 `json:"netIncomeLast30Days"`
	TotalExpenseLast30Days      float64 `json:"totalExpenseLast30Days"`
	TotalTransactionsLast30Days int     `json:"totalTransactionsLast30Days"`
	SavingsRate                 float64 `json:"savingsRate"`
	IncomeChange                float64 `json:"incomeChange"`
	ExpenseChange               float64 `json:"expenseChange"`
}
