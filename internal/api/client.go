// Package api is the REST client for the finance backend. Each method
// obtains a fresh bearer token from the session provider, issues one
// request, and decodes the JSON response; there is no caching and no
// automatic retry. Failed responses surface the body's "message" field
// when present so controllers can show it verbatim.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ledgerview/internal/model"
)

// Fallback messages shown when a failed response carries no message field.
const (
	fallbackProfile      = "Failed to fetch user profile from backend."
	fallbackSummary      = "Failed to fetch dashboard summary."
	fallbackTransactions = "Failed to fetch transactions."
	fallbackCreate       = "Failed to add transaction."
	fallbackCategories   = "Failed to fetch categories."
	fallbackReceipt      = "Failed to process receipt."
)

// Filter sentinels understood by the transaction list: both omit their
// query parameter entirely so the server returns the unfiltered set.
const (
	FilterAllTypes      = "all"
	FilterAllCategories = "_all"
)

// TokenSource supplies a bearer token for a single request. Implemented by
// the session provider; tokens are never cached by this package.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client talks to the finance backend.
type Client struct {
	tokens     TokenSource
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetProfile fetches the authenticated user's backend profile.
func (c *Client) GetProfile(ctx context.Context) (model.Profile, error) {
	var profile model.Profile
	err := c.getJSON(ctx, "/api/auth/profile", nil, fallbackProfile, &profile)
	return profile, err
}

// GetDashboardSummary fetches the aggregate dashboard statistics.
func (c *Client) GetDashboardSummary(ctx context.Context) (model.DashboardSummary, error) {
	var summary model.DashboardSummary
	err := c.getJSON(ctx, "/api/reports/dashboard-summary", nil, fallbackSummary, &summary)
	return summary, err
}

// GetCategories fetches the full category list.
func (c *Client) GetCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := c.getJSON(ctx, "/api/categories", nil, fallbackCategories, &categories)
	return categories, err
}

// ListTransactionsOptions are the pagination and filter inputs for a
// transaction page fetch.
type ListTransactionsOptions struct {
	Type       string
	CategoryID string
	StartDate  string
	EndDate    string
	Page       int
	Limit      int
}

// query assembles the request parameters, omitting the type parameter for
// "all", the category parameter for "_all", and empty date bounds.
func (o ListTransactionsOptions) query() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(o.Page))
	q.Set("limit", strconv.Itoa(o.Limit))
	if o.Type != "" && o.Type != FilterAllTypes {
		q.Set("type", o.Type)
	}
	if o.CategoryID != "" && o.CategoryID != FilterAllCategories {
		q.Set("categoryId", o.CategoryID)
	}
	if o.StartDate != "" {
		q.Set("startDate", o.StartDate)
	}
	if o.EndDate != "" {
		q.Set("endDate", o.EndDate)
	}
	return q
}

// ListTransactions fetches one page of transactions.
func (c *Client) ListTransactions(ctx context.Context, opts ListTransactionsOptions) (model.TransactionPage, error) {
	var page model.TransactionPage
	err := c.getJSON(ctx, "/api/transactions", opts.query(), fallbackTransactions, &page)
	return page, err
}

// CreateTransaction posts a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, req model.CreateTransactionRequest) (model.Transaction, error) {
	var created model.Transaction

	body, err := json.Marshal(req)
	if err != nil {
		return created, fmt.Errorf("failed to encode transaction: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/api/transactions", nil, bytes.NewReader(body))
	if err != nil {
		return created, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	err = c.do(httpReq, fallbackCreate, &created)
	return created, err
}

// UploadReceipt sends one receipt file as multipart form data to the OCR
// endpoint and returns the server's confirmation message. The file is never
// parsed client-side.
func (c *Client) UploadReceipt(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("receipt", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err = io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read receipt: %w", err)
	}
	if err = writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/ocr/upload-receipt", nil, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result struct {
		Message string `json:"message"`
	}
	if err = c.do(req, fallbackReceipt, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}

// GetReport fetches one report and decodes it into the shape that report
// type carries.
func (c *Client) GetReport(ctx context.Context, reportType model.ReportType) (model.Report, error) {
	report := model.Report{Type: reportType}
	if !reportType.Valid() {
		return report, fmt.Errorf("unknown report type: %q", reportType)
	}

	path := "/api/reports/" + string(reportType)
	fallback := fmt.Sprintf("Failed to fetch %s data.", reportType)

	switch reportType {
	case model.ReportMonthlySpending:
		err := c.getJSON(ctx, path, nil, fallback, &report.Bars)
		return report, err
	case model.ReportExpensesByCategory:
		err := c.getJSON(ctx, path, nil, fallback, &report.Slices)
		return report, err
	case model.ReportIncomeVsExpense:
		err := c.getJSON(ctx, path, nil, fallback, &report.Lines)
		return report, err
	default:
		return report, fmt.Errorf("unknown report type: %q", reportType)
	}
}

// newRequest builds an authenticated request. The token is obtained fresh
// for every call; failure to obtain one is reported like a failed fetch.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, tokenError(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return req, nil
}

// getJSON issues an authenticated GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, fallback string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, fallback, out)
}

func (c *Client) do(req *http.Request, fallback string, out any) error {
	slog.Debug("backend request",
		"method", req.Method,
		"path", req.URL.Path,
		"query", req.URL.RawQuery)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newResponseError(resp, fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
