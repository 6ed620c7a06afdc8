// Package components contains the feature controllers of the TUI. Each
// component owns one feature's fetch/loading/error/data state exclusively;
// there is no shared cache and no cross-component state.
package components

import (
	"context"
	"io"
	"time"

	"ledgerview/internal/api"
	"ledgerview/internal/model"
)

// fetchTimeout bounds every backend call issued from a component.
const fetchTimeout = 30 * time.Second

// Backend is the slice of the API client the components consume.
// *api.Client satisfies it; tests substitute stubs.
type Backend interface {
	GetProfile(ctx context.Context) (model.Profile, error)
	GetDashboardSummary(ctx context.Context) (model.DashboardSummary, error)
	GetCategories(ctx context.Context) ([]model.Category, error)
	ListTransactions(ctx context.Context, opts api.ListTransactionsOptions) (model.TransactionPage, error)
	CreateTransaction(ctx context.Context, req model.CreateTransactionRequest) (model.Transaction, error)
	UploadReceipt(ctx context.Context, filename string, file io.Reader) (string, error)
	GetReport(ctx context.Context, reportType model.ReportType) (model.Report, error)
}

func fetchContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), fetchTimeout)
}
