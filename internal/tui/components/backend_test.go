package components

import (
	"context"
	"io"
	"sync/atomic"

	"ledgerview/internal/api"
	"ledgerview/internal/model"
)

// stubBackend lets each test script exactly the responses it needs and
// count how many requests a component issued.
type stubBackend struct {
	profileFn     func(ctx context.Context) (model.Profile, error)
	summaryFn     func(ctx context.Context) (model.DashboardSummary, error)
	categoriesFn  func(ctx context.Context) ([]model.Category, error)
	listFn        func(ctx context.Context, opts api.ListTransactionsOptions) (model.TransactionPage, error)
	createFn      func(ctx context.Context, req model.CreateTransactionRequest) (model.Transaction, error)
	uploadFn      func(ctx context.Context, filename string, file io.Reader) (string, error)
	reportFn      func(ctx context.Context, reportType model.ReportType) (model.Report, error)
	profileCalls  atomic.Int64
	summaryCalls  atomic.Int64
	listCalls     atomic.Int64
	createCalls   atomic.Int64
	uploadCalls   atomic.Int64
	reportCalls   atomic.Int64
	categoryCalls atomic.Int64
}

func (s *stubBackend) GetProfile(ctx context.Context) (model.Profile, error) {
	s.profileCalls.Add(1)
	if s.profileFn == nil {
		return model.Profile{}, nil
	}
	return s.profileFn(ctx)
}

func (s *stubBackend) GetDashboardSummary(ctx context.Context) (model.DashboardSummary, error) {
	s.summaryCalls.Add(1)
	if s.summaryFn == nil {
		return model.DashboardSummary{}, nil
	}
	return s.summaryFn(ctx)
}

func (s *stubBackend) GetCategories(ctx context.Context) ([]model.Category, error) {
	s.categoryCalls.Add(1)
	if s.categoriesFn == nil {
		return nil, nil
	}
	return s.categoriesFn(ctx)
}

func (s *stubBackend) ListTransactions(ctx context.Context, opts api.ListTransactionsOptions) (model.TransactionPage, error) {
	s.listCalls.Add(1)
	if s.listFn == nil {
		return model.TransactionPage{CurrentPage: 1, TotalPages: 1}, nil
	}
	return s.listFn(ctx, opts)
}

func (s *stubBackend) CreateTransaction(ctx context.Context, req model.CreateTransactionRequest) (model.Transaction, error) {
	s.createCalls.Add(1)
	if s.createFn == nil {
		return model.Transaction{}, nil
	}
	return s.createFn(ctx, req)
}

func (s *stubBackend) UploadReceipt(ctx context.Context, filename string, file io.Reader) (string, error) {
	s.uploadCalls.Add(1)
	if s.uploadFn == nil {
		return "", nil
	}
	return s.uploadFn(ctx, filename, file)
}

func (s *stubBackend) GetReport(ctx context.Context, reportType model.ReportType) (model.Report, error) {
	s.reportCalls.Add(1)
	if s.reportFn == nil {
		return model.Report{Type: reportType}, nil
	}
	return s.reportFn(ctx, reportType)
}
