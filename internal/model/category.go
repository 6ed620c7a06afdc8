package model

// CategoryType indicates whether a category applies to income, expense, or both.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
	// CategoryTypeBoth represents categories valid for either direction.
	CategoryTypeBoth CategoryType = "both"
)

// Category is a server-owned classification bucket. The client only uses it
// to populate filter and selection controls.
type Category struct {
	ID   string       `json:"_id"`
	Name string       `json:"name"`
	Type CategoryType `json:"type"`
}

// Matches reports whether the category can be applied to a transaction of
// the given type. "both" categories match either direction.
func (c Category) Matches(t TransactionType) bool {
	return c.Type == CategoryTypeBoth || string(c.Type) == string(t)
}

// FilterCategories returns the categories applicable to the given
// transaction type, preserving order.
func FilterCategories(categories []Category, t TransactionType) []Category {
	filtered := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c.Matches(t) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
