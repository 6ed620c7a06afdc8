package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFirstName(t *testing.T) {
	assert.Equal(t, "Ada", Profile{Username: "Ada Lovelace"}.FirstName())
	assert.Equal(t, "ada", Profile{Username: "ada"}.FirstName())
	assert.Equal(t, "", Profile{}.FirstName())
}

func TestDashboardSummaryDefaultsToZero(t *testing.T) {
	// Absent fields must decode to zero so empty accounts render as $0.00.
	var summary DashboardSummary
	require.NoError(t, json.Unmarshal([]byte(`{"monthlyIncome": 1200.5}`), &summary))

	assert.Equal(t, 1200.5, summary.MonthlyIncome)
	assert.Zero(t, summary.TotalBalance)
	assert.Zero(t, summary.MonthlyExpenses)
	assert.Zero(t, summary.TotalTransactionsLast30Days)
	assert.Zero(t, summary.SavingsRate)
}
