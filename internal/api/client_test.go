package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerview/internal/model"
)

type staticTokens struct {
	token string
	err   error
	calls int
}

func (s *staticTokens) Token(_ context.Context) (string, error) {
	s.calls++
	return s.token, s.err
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *staticTokens) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	tokens := &staticTokens{token: "test-token"}
	return NewClient(server.URL, tokens, 5*time.Second), tokens
}

func TestGetProfileAttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/api/auth/profile", r.URL.Path)
		_ = json.NewEncoder(w).Encode(model.Profile{Username: "Ada Lovelace", Email: "ada@example.com"})
	})

	profile, err := client.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "Ada Lovelace", profile.Username)
	assert.Equal(t, 1, tokens.calls, "token must be obtained fresh per request")
}

func TestTokenFailureTreatedAsFailedFetch(t *testing.T) {
	requests := 0
	client, tokens := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	})
	tokens.err = errors.New("session expired")

	_, err := client.GetDashboardSummary(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Zero(t, requests, "no request should be issued without a token")
}

func TestListTransactionsQueryAssembly(t *testing.T) {
	tests := []struct {
		name       string
		opts       ListTransactionsOptions
		wantParams map[string]string
		omitted    []string
	}{
		{
			name: "all filters set",
			opts: ListTransactionsOptions{
				Page: 2, Limit: 25,
				Type: "expense", CategoryID: "cat-9",
				StartDate: "2024-01-01", EndDate: "2024-02-01",
			},
			wantParams: map[string]string{
				"page": "2", "limit": "25",
				"type": "expense", "categoryId": "cat-9",
				"startDate": "2024-01-01", "endDate": "2024-02-01",
			},
		},
		{
			name: "type all omits type parameter",
			opts: ListTransactionsOptions{Page: 1, Limit: 10, Type: FilterAllTypes, CategoryID: "cat-9"},
			wantParams: map[string]string{
				"page": "1", "limit": "10", "categoryId": "cat-9",
			},
			omitted: []string{"type"},
		},
		{
			name: "category _all omits categoryId parameter",
			opts: ListTransactionsOptions{Page: 1, Limit: 10, Type: "income", CategoryID: FilterAllCategories},
			wantParams: map[string]string{
				"page": "1", "limit": "10", "type": "income",
			},
			omitted: []string{"categoryId"},
		},
		{
			name:       "empty dates omitted",
			opts:       ListTransactionsOptions{Page: 3, Limit: 50},
			wantParams: map[string]string{"page": "3", "limit": "50"},
			omitted:    []string{"type", "categoryId", "startDate", "endDate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery map[string][]string
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				_ = json.NewEncoder(w).Encode(model.TransactionPage{CurrentPage: 1, TotalPages: 1})
			})

			_, err := client.ListTransactions(context.Background(), tt.opts)
			require.NoError(t, err)

			for key, want := range tt.wantParams {
				require.Contains(t, gotQuery, key)
				assert.Equal(t, want, gotQuery[key][0])
			}
			for _, key := range tt.omitted {
				assert.NotContains(t, gotQuery, key)
			}
		})
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "message field surfaced verbatim",
			status:  http.StatusBadRequest,
			body:    `{"message": "Amount is required"}`,
			wantMsg: "Amount is required",
		},
		{
			name:    "non-JSON body falls back",
			status:  http.StatusInternalServerError,
			body:    "<html>oops</html>",
			wantMsg: fallbackTransactions,
		},
		{
			name:    "empty message falls back",
			status:  http.StatusBadGateway,
			body:    `{"message": ""}`,
			wantMsg: fallbackTransactions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.ListTransactions(context.Background(), ListTransactionsOptions{Page: 1, Limit: 10})
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "token expired"}`))
	})

	_, err := client.GetDashboardSummary(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsUnauthorized(errors.New("other")))
}

func TestCreateTransaction(t *testing.T) {
	var gotBody model.CreateTransactionRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/transactions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{"_id": "txn-1", "amount": gotBody.Amount})
	})

	created, err := client.CreateTransaction(context.Background(), model.CreateTransactionRequest{
		Type:       model.TypeExpense,
		Amount:     42.5,
		Date:       "2024-01-01",
		CategoryID: "cat-1",
		Tags:       []string{"food", "work"},
	})
	require.NoError(t, err)

	assert.Equal(t, 42.5, gotBody.Amount)
	assert.Equal(t, model.TypeExpense, gotBody.Type)
	assert.Equal(t, []string{"food", "work"}, gotBody.Tags)
	assert.Equal(t, "txn-1", created.ID)
}

func TestCreateTransactionSurfacesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "Category not found"}`))
	})

	_, err := client.CreateTransaction(context.Background(), model.CreateTransactionRequest{})
	require.Error(t, err)
	assert.Equal(t, "Category not found", err.Error())
}

func TestUploadReceipt(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ocr/upload-receipt", r.URL.Path)

		file, header, err := r.FormFile("receipt")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()

		assert.Equal(t, "lunch.pdf", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake pdf bytes", string(content))

		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Receipt processed"})
	})

	msg, err := client.UploadReceipt(context.Background(), "lunch.pdf", strings.NewReader("fake pdf bytes"))
	require.NoError(t, err)
	assert.Equal(t, "Receipt processed", msg)
}

func TestGetReportDecodesByType(t *testing.T) {
	responses := map[string]string{
		"/api/reports/monthly-spending":     `[{"monthYear": "2024-01", "amount": 321.5}]`,
		"/api/reports/expenses-by-category": `[{"category": "Groceries", "amount": 120}]`,
		"/api/reports/income-vs-expense":    `[{"monthYear": "2024-01", "income": 5000, "expense": 3200}]`,
	}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Path]
		require.True(t, ok, "unexpected path %s", r.URL.Path)
		_, _ = w.Write([]byte(body))
	})

	bars, err := client.GetReport(context.Background(), model.ReportMonthlySpending)
	require.NoError(t, err)
	require.Len(t, bars.Bars, 1)
	assert.Equal(t, 321.5, bars.Bars[0].Amount)
	assert.Empty(t, bars.Slices)

	slices, err := client.GetReport(context.Background(), model.ReportExpensesByCategory)
	require.NoError(t, err)
	require.Len(t, slices.Slices, 1)
	assert.Equal(t, "Groceries", slices.Slices[0].Category)

	lines, err := client.GetReport(context.Background(), model.ReportIncomeVsExpense)
	require.NoError(t, err)
	require.Len(t, lines.Lines, 1)
	assert.Equal(t, 5000.0, lines.Lines[0].Income)
}

func TestGetReportRejectsUnknownType(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.GetReport(context.Background(), model.ReportType("weekly"))
	require.Error(t, err)
	assert.Zero(t, requests)
}
