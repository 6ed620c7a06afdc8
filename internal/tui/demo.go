package tui

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"ledgerview/internal/api"
	"ledgerview/internal/model"
)

// DemoBackend serves generated data so the TUI can be explored without a
// running backend or a session. All state lives in memory.
type DemoBackend struct {
	faker        *gofakeit.Faker
	profile      model.Profile
	categories   []model.Category
	transactions []model.Transaction
	nextID       int
}

var demoCategories = []struct {
	name    string
	catType model.CategoryType
}{
	{"Groceries", model.CategoryTypeExpense},
	{"Rent", model.CategoryTypeExpense},
	{"Dining Out", model.CategoryTypeExpense},
	{"Transport", model.CategoryTypeExpense},
	{"Entertainment", model.CategoryTypeExpense},
	{"Salary", model.CategoryTypeIncome},
	{"Freelance", model.CategoryTypeIncome},
	{"Other", model.CategoryTypeBoth},
}

// NewDemoBackend builds a demo backend seeded with a year of transactions.
func NewDemoBackend(seed uint64) *DemoBackend {
	faker := gofakeit.New(seed)

	d := &DemoBackend{
		faker: faker,
		profile: model.Profile{
			Username: faker.Name(),
			Email:    faker.Email(),
		},
	}

	for i, c := range demoCategories {
		d.categories = append(d.categories, model.Category{
			ID:   fmt.Sprintf("demo-cat-%d", i+1),
			Name: c.name,
			Type: c.catType,
		})
	}

	now := time.Now()
	for range 180 {
		d.transactions = append(d.transactions, d.randomTransaction(now))
	}
	// one salary per month so the income charts have a steady series
	salary := d.categoryByName("Salary")
	for monthsAgo := range 12 {
		d.transactions = append(d.transactions, model.Transaction{
			ID:            d.newID(),
			Type:          model.TypeIncome,
			Amount:        4200,
			Date:          now.AddDate(0, -monthsAgo, 0),
			MerchantName:  "Acme Corp",
			Description:   "Monthly salary",
			PaymentMethod: "transfer",
			Currency:      "USD",
			Category:      salary,
		})
	}
	sortTransactions(d.transactions)
	return d
}

func (d *DemoBackend) newID() string {
	d.nextID++
	return fmt.Sprintf("demo-txn-%d", d.nextID)
}

func (d *DemoBackend) categoryByName(name string) *model.Category {
	for i := range d.categories {
		if d.categories[i].Name == name {
			return &d.categories[i]
		}
	}
	return nil
}

func (d *DemoBackend) randomTransaction(now time.Time) model.Transaction {
	category := &d.categories[d.faker.Number(0, 4)]
	return model.Transaction{
		ID:            d.newID(),
		Type:          model.TypeExpense,
		Amount:        d.faker.Price(3, 250),
		Date:          now.AddDate(0, 0, -d.faker.Number(0, 364)),
		MerchantName:  d.faker.Company(),
		Description:   d.faker.ProductName(),
		PaymentMethod: d.faker.RandomString([]string{"card", "cash", "transfer"}),
		Currency:      "USD",
		Category:      category,
		Tags:          []string{strings.ToLower(category.Name)},
	}
}

func sortTransactions(transactions []model.Transaction) {
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
}

// GetProfile returns the generated demo user.
func (d *DemoBackend) GetProfile(context.Context) (model.Profile, error) {
	return d.profile, nil
}

// GetDashboardSummary aggregates the in-memory transactions.
func (d *DemoBackend) GetDashboardSummary(context.Context) (model.DashboardSummary, error) {
	now := time.Now()
	cutoff30 := now.AddDate(0, 0, -30)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var summary model.DashboardSummary
	var income30 float64
	for _, txn := range d.transactions {
		if txn.Type == model.TypeIncome {
			summary.TotalBalance += txn.Amount
		} else {
			summary.TotalBalance -= txn.Amount
		}
		if txn.Date.After(cutoff30) {
			summary.TotalTransactionsLast30Days++
			if txn.Type == model.TypeIncome {
				income30 += txn.Amount
			} else {
				summary.TotalExpenseLast30Days += txn.Amount
			}
		}
		if txn.Date.After(monthStart) {
			if txn.Type == model.TypeIncome {
				summary.MonthlyIncome += txn.Amount
			} else {
				summary.MonthlyExpenses += txn.Amount
			}
		}
	}
	summary.NetIncomeLast30Days = income30 - summary.TotalExpenseLast30Days
	if income30 > 0 {
		summary.SavingsRate = summary.NetIncomeLast30Days / income30 * 100
	}
	return summary, nil
}

// GetCategories returns the demo category set.
func (d *DemoBackend) GetCategories(context.Context) ([]model.Category, error) {
	return d.categories, nil
}

// ListTransactions filters and paginates the in-memory set the way the
// real backend does.
func (d *DemoBackend) ListTransactions(_ context.Context, opts api.ListTransactionsOptions) (model.TransactionPage, error) {
	var filtered []model.Transaction
	for _, txn := range d.transactions {
		if !matchesOptions(txn, opts) {
			continue
		}
		filtered = append(filtered, txn)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}
	totalPages := max((len(filtered)+limit-1)/limit, 1)
	page := min(max(opts.Page, 1), totalPages)

	start := (page - 1) * limit
	end := min(start+limit, len(filtered))
	var window []model.Transaction
	if start < len(filtered) {
		window = filtered[start:end]
	}

	return model.TransactionPage{
		Transactions: window,
		CurrentPage:  page,
		TotalPages:   totalPages,
	}, nil
}

func matchesOptions(txn model.Transaction, opts api.ListTransactionsOptions) bool {
	if opts.Type != "" && opts.Type != api.FilterAllTypes && string(txn.Type) != opts.Type {
		return false
	}
	if opts.CategoryID != "" && opts.CategoryID != api.FilterAllCategories {
		if txn.Category == nil || txn.Category.ID != opts.CategoryID {
			return false
		}
	}
	day := txn.Date.Format("2006-01-02")
	if opts.StartDate != "" && day < opts.StartDate {
		return false
	}
	if opts.EndDate != "" && day > opts.EndDate {
		return false
	}
	return true
}

// CreateTransaction appends a new record and returns it.
func (d *DemoBackend) CreateTransaction(_ context.Context, req model.CreateTransactionRequest) (model.Transaction, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.Transaction{}, &api.Error{Message: "Invalid date.", StatusCode: 400}
	}

	var category *model.Category
	for i := range d.categories {
		if d.categories[i].ID == req.CategoryID {
			category = &d.categories[i]
			break
		}
	}
	if category == nil {
		return model.Transaction{}, &api.Error{Message: "Unknown category.", StatusCode: 400}
	}

	txn := model.Transaction{
		ID:            d.newID(),
		Type:          req.Type,
		Amount:        req.Amount,
		Date:          date,
		MerchantName:  req.MerchantName,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Currency:      "USD",
		Category:      category,
		Tags:          req.Tags,
	}
	d.transactions = append(d.transactions, txn)
	sortTransactions(d.transactions)
	return txn, nil
}

// UploadReceipt fabricates a plausible extracted transaction.
func (d *DemoBackend) UploadReceipt(ctx context.Context, filename string, _ io.Reader) (string, error) {
	_, err := d.CreateTransaction(ctx, model.CreateTransactionRequest{
		Type:        model.TypeExpense,
		Amount:      d.faker.Price(5, 120),
		Date:        time.Now().Format("2006-01-02"),
		CategoryID:  d.categories[0].ID,
		Description: "Scanned from " + filename,
	})
	if err != nil {
		return "", err
	}
	return "Receipt processed successfully. Transaction created.", nil
}

// GetReport aggregates the in-memory transactions into the requested chart.
func (d *DemoBackend) GetReport(_ context.Context, reportType model.ReportType) (model.Report, error) {
	switch reportType {
	case model.ReportMonthlySpending:
		return model.Report{Type: reportType, Bars: d.monthlySpending()}, nil
	case model.ReportExpensesByCategory:
		return model.Report{Type: reportType, Slices: d.expensesByCategory()}, nil
	case model.ReportIncomeVsExpense:
		return model.Report{Type: reportType, Lines: d.incomeVsExpense()}, nil
	default:
		return model.Report{}, &api.Error{Message: "Unknown report type.", StatusCode: 400}
	}
}

func monthKeys(now time.Time) []string {
	keys := make([]string, 0, 12)
	for monthsAgo := 11; monthsAgo >= 0; monthsAgo-- {
		keys = append(keys, now.AddDate(0, -monthsAgo, 0).Format("2006-01"))
	}
	return keys
}

func (d *DemoBackend) monthlySpending() []model.SpendingPoint {
	totals := map[string]float64{}
	for _, txn := range d.transactions {
		if txn.Type == model.TypeExpense {
			totals[txn.Date.Format("2006-01")] += txn.Amount
		}
	}
	var points []model.SpendingPoint
	for _, key := range monthKeys(time.Now()) {
		points = append(points, model.SpendingPoint{MonthYear: key, Amount: totals[key]})
	}
	return points
}

func (d *DemoBackend) expensesByCategory() []model.CategorySlice {
	totals := map[string]float64{}
	for _, txn := range d.transactions {
		if txn.Type == model.TypeExpense {
			totals[txn.CategoryName()] += txn.Amount
		}
	}
	var slices []model.CategorySlice
	for name, amount := range totals {
		slices = append(slices, model.CategorySlice{Category: name, Amount: amount})
	}
	sort.Slice(slices, func(i, j int) bool { return slices[i].Amount > slices[j].Amount })
	return slices
}

func (d *DemoBackend) incomeVsExpense() []model.IncomeExpensePoint {
	income := map[string]float64{}
	expense := map[string]float64{}
	for _, txn := range d.transactions {
		key := txn.Date.Format("2006-01")
		if txn.Type == model.TypeIncome {
			income[key] += txn.Amount
		} else {
			expense[key] += txn.Amount
		}
	}
	var points []model.IncomeExpensePoint
	for _, key := range monthKeys(time.Now()) {
		points = append(points, model.IncomeExpensePoint{
			MonthYear: key,
			Income:    income[key],
			Expense:   expense[key],
		})
	}
	return points
}
