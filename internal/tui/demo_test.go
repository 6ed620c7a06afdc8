package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerview/internal/api"
	"ledgerview/internal/model"
)

func TestDemoBackendPaginatesAndClamps(t *testing.T) {
	d := NewDemoBackend(42)
	ctx := context.Background()

	page, err := d.ListTransactions(ctx, api.ListTransactionsOptions{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Transactions, 10)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Greater(t, page.TotalPages, 1)

	// out-of-range requests clamp instead of erroring
	beyond, err := d.ListTransactions(ctx, api.ListTransactionsOptions{Page: 9999, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, beyond.TotalPages, beyond.CurrentPage)
	assert.NotEmpty(t, beyond.Transactions)
}

func TestDemoBackendFiltersByType(t *testing.T) {
	d := NewDemoBackend(42)

	page, err := d.ListTransactions(context.Background(), api.ListTransactionsOptions{
		Type:  string(model.TypeIncome),
		Page:  1,
		Limit: 50,
	})
	require.NoError(t, err)
	require.NotEmpty(t, page.Transactions)
	for _, txn := range page.Transactions {
		assert.Equal(t, model.TypeIncome, txn.Type)
	}
}

func TestDemoBackendCreateAndSummary(t *testing.T) {
	d := NewDemoBackend(42)
	ctx := context.Background()

	created, err := d.CreateTransaction(ctx, model.CreateTransactionRequest{
		Type:       model.TypeExpense,
		Amount:     12.34,
		Date:       "2024-06-01",
		CategoryID: d.categories[0].ID,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "demo-txn-"))
	require.NotNil(t, created.Category)
	assert.Equal(t, "Groceries", created.Category.Name)

	summary, err := d.GetDashboardSummary(ctx)
	require.NoError(t, err)
	assert.NotZero(t, summary.TotalTransactionsLast30Days)
}

func TestDemoBackendReportsCoverTwelveMonths(t *testing.T) {
	d := NewDemoBackend(42)
	ctx := context.Background()

	for _, reportType := range model.ReportTypes {
		report, err := d.GetReport(ctx, reportType)
		require.NoError(t, err)
		assert.Equal(t, reportType, report.Type)
		assert.False(t, report.Empty())
	}

	bars, err := d.GetReport(ctx, model.ReportMonthlySpending)
	require.NoError(t, err)
	assert.Len(t, bars.Bars, 12)
}
