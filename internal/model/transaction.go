// Package model holds the transient client-side view models exchanged with
// the backend. Nothing here is persisted locally; every fetch replaces the
// prior value wholesale.
package model

import "time"

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	// TypeIncome marks money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense marks money going out.
	TypeExpense TransactionType = "expense"
)

// Transaction is a single record as returned by the backend. Immutable once
// fetched; the list view holds a server-paginated window, never the full
// collection.
type Transaction struct {
	Date          time.Time       `json:"date"`
	ID            string          `json:"_id"`
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"`
	MerchantName  string          `json:"merchantName"`
	PaymentMethod string          `json:"paymentMethod"`
	Currency      string          `json:"currency"`
	Tags          []string        `json:"tags"`
	Category      *Category       `json:"category"`
	Amount        float64         `json:"amount"`
}

// DisplayName returns the merchant name, falling back to the description.
func (t Transaction) DisplayName() string {
	if t.MerchantName != "" {
		return t.MerchantName
	}
	return t.Description
}

// CategoryName returns the category name or an empty string when the
// backend returned no category.
func (t Transaction) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}

// TransactionPage is one server-paginated window of transactions.
// Whenever TotalPages >= 1, 1 <= CurrentPage <= TotalPages holds; an empty
// result set still reports TotalPages >= 1.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	CurrentPage  int           `json:"currentPage"`
	TotalPages   int           `json:"totalPages"`
}

// CreateTransactionRequest is the body of a transaction POST. Validation
// tags mirror the required-field rules enforced before any network call.
type CreateTransactionRequest struct {
	Type          TransactionType `json:"type" validate:"required,oneof=income expense"`
	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	Description   string          `json:"description"`
	MerchantName  string          `json:"merchantName"`
	CategoryID    string          `json:"categoryId" validate:"required"`
	PaymentMethod string          `json:"paymentMethod"`
	Tags          []string        `json:"tags"`
	Amount        float64         `json:"amount" validate:"required,gt=0"`
}
