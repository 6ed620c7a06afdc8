package components

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"

	"ledgerview/internal/model"
	"ledgerview/internal/tui/themes"
	"ledgerview/internal/tui/viewmodel"
)

// closeDelay is how long the success message stays visible before the form
// dismisses itself.
const closeDelay = 1500 * time.Millisecond

const (
	msgRequiredFields  = "Please fill in all required fields: Type, Amount, Date, Category."
	msgInvalidAmount   = "Amount must be a positive number."
	msgInvalidDate     = "Date must be in YYYY-MM-DD format."
	msgSubmitFallback  = "Failed to add transaction."
	msgTransactionDone = "Transaction added successfully!"
)

type formField int

const (
	fieldType formField = iota
	fieldAmount
	fieldDate
	fieldCategory
	fieldMerchant
	fieldDescription
	fieldPayment
	fieldTags
	fieldCount
)

type formCategoriesMsg struct {
	categories []model.Category
	err        error
}

type formSubmittedMsg struct {
	err error
}

type formCloseTickMsg struct{}

// TransactionFormModel is the add-transaction form.
type TransactionFormModel struct {
	backend  Backend
	theme    themes.Theme
	spinner  spinner.Model
	validate *validator.Validate

	txnType     model.TransactionType
	amount      textinput.Model
	date        textinput.Model
	merchant    textinput.Model
	description textinput.Model
	payment     textinput.Model
	tags        textinput.Model

	categories  []model.Category
	categoryIdx int // index into filteredCategories, -1 means none selected
	catLoading  bool
	catErr      string

	focus      formField
	submitting bool
	message    string
	isError    bool

	width int
}

// NewTransactionFormModel creates the form component.
func NewTransactionFormModel(backend Backend, theme themes.Theme) TransactionFormModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Subtitle

	newInput := func(placeholder string, width int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Width = width
		return in
	}

	return TransactionFormModel{
		backend:     backend,
		theme:       theme,
		spinner:     sp,
		validate:    validator.New(),
		amount:      newInput("0.00", 12),
		date:        newInput("YYYY-MM-DD", 12),
		merchant:    newInput("Merchant", 28),
		description: newInput("Description", 28),
		payment:     newInput("cash, card, ...", 16),
		tags:        newInput("comma, separated, tags", 28),
		categoryIdx: -1,
	}
}

// Open resets the form for a new entry of the given type and loads the
// category list. The date defaults to today.
func (m TransactionFormModel) Open(txnType model.TransactionType) (TransactionFormModel, tea.Cmd) {
	m.txnType = txnType
	m.amount.SetValue("")
	m.date.SetValue(time.Now().Format("2006-01-02"))
	m.merchant.SetValue("")
	m.description.SetValue("")
	m.payment.SetValue("")
	m.tags.SetValue("")
	m.categoryIdx = -1
	m.focus = fieldAmount
	m.submitting = false
	m.message = ""
	m.isError = false
	m.catErr = ""
	m.catLoading = true
	m.blurAll()
	m.amount.Focus()
	return m, tea.Batch(m.fetchCategories(), m.spinner.Tick)
}

func (m *TransactionFormModel) blurAll() {
	m.amount.Blur()
	m.date.Blur()
	m.merchant.Blur()
	m.description.Blur()
	m.payment.Blur()
	m.tags.Blur()
}

func (m TransactionFormModel) fetchCategories() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		categories, err := backend.GetCategories(ctx)
		return formCategoriesMsg{categories: categories, err: err}
	}
}

// filteredCategories returns the categories selectable for the current type.
func (m TransactionFormModel) filteredCategories() []model.Category {
	return model.FilterCategories(m.categories, m.txnType)
}

func (m TransactionFormModel) selectedCategory() *model.Category {
	filtered := m.filteredCategories()
	if m.categoryIdx < 0 || m.categoryIdx >= len(filtered) {
		return nil
	}
	return &filtered[m.categoryIdx]
}

// Update handles messages for the form.
func (m TransactionFormModel) Update(msg tea.Msg) (TransactionFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case formCategoriesMsg:
		m.catLoading = false
		if msg.err != nil {
			m.catErr = msg.err.Error()
			m.categories = nil
			return m, nil
		}
		m.catErr = ""
		m.categories = msg.categories
		return m, nil

	case formSubmittedMsg:
		m.submitting = false
		if msg.err != nil {
			m.message = msg.err.Error()
			if m.message == "" {
				m.message = msgSubmitFallback
			}
			m.isError = true
			return m, nil
		}
		m.message = msgTransactionDone
		m.isError = false
		m.amount.SetValue("")
		m.merchant.SetValue("")
		m.description.SetValue("")
		m.payment.SetValue("")
		m.tags.SetValue("")
		m.categoryIdx = -1
		return m, tea.Tick(closeDelay, func(time.Time) tea.Msg {
			return formCloseTickMsg{}
		})

	case formCloseTickMsg:
		return m, func() tea.Msg { return FormDoneMsg{} }

	case spinner.TickMsg:
		if m.submitting || m.catLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m TransactionFormModel) handleKey(msg tea.KeyMsg) (TransactionFormModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		return m.setFocus((m.focus + 1) % fieldCount), nil
	case "shift+tab", "up":
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil
	case "ctrl+s":
		return m.submit()
	}

	switch m.focus {
	case fieldType:
		switch msg.String() {
		case "left", "right", " ":
			if m.txnType == model.TypeExpense {
				m.txnType = model.TypeIncome
			} else {
				m.txnType = model.TypeExpense
			}
			// selection does not carry across type changes
			m.categoryIdx = -1
		}
		return m, nil

	case fieldCategory:
		filtered := m.filteredCategories()
		if len(filtered) == 0 {
			return m, nil
		}
		switch msg.String() {
		case "right", " ":
			m.categoryIdx = (m.categoryIdx + 1) % len(filtered)
		case "left":
			if m.categoryIdx <= 0 {
				m.categoryIdx = len(filtered) - 1
			} else {
				m.categoryIdx--
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldAmount:
		m.amount, cmd = m.amount.Update(msg)
	case fieldDate:
		m.date, cmd = m.date.Update(msg)
	case fieldMerchant:
		m.merchant, cmd = m.merchant.Update(msg)
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	case fieldPayment:
		m.payment, cmd = m.payment.Update(msg)
	case fieldTags:
		m.tags, cmd = m.tags.Update(msg)
	}
	return m, cmd
}

func (m TransactionFormModel) setFocus(field formField) TransactionFormModel {
	m.focus = field
	m.blurAll()
	switch field {
	case fieldAmount:
		m.amount.Focus()
	case fieldDate:
		m.date.Focus()
	case fieldMerchant:
		m.merchant.Focus()
	case fieldDescription:
		m.description.Focus()
	case fieldPayment:
		m.payment.Focus()
	case fieldTags:
		m.tags.Focus()
	}
	return m
}

// submit validates the form locally and, if it passes, posts the transaction.
// Validation failures never reach the network.
func (m TransactionFormModel) submit() (TransactionFormModel, tea.Cmd) {
	category := m.selectedCategory()
	if strings.TrimSpace(m.amount.Value()) == "" ||
		strings.TrimSpace(m.date.Value()) == "" ||
		category == nil {
		m.message = msgRequiredFields
		m.isError = true
		return m, nil
	}

	amount, err := viewmodel.ParseAmount(m.amount.Value())
	if err != nil {
		m.message = msgInvalidAmount
		m.isError = true
		return m, nil
	}

	req := model.CreateTransactionRequest{
		Type:          m.txnType,
		Amount:        amount,
		Date:          strings.TrimSpace(m.date.Value()),
		CategoryID:    category.ID,
		MerchantName:  strings.TrimSpace(m.merchant.Value()),
		Description:   strings.TrimSpace(m.description.Value()),
		PaymentMethod: strings.TrimSpace(m.payment.Value()),
		Tags:          viewmodel.ParseTags(m.tags.Value()),
	}

	if err := m.validate.Struct(req); err != nil {
		m.message = validationMessage(err)
		m.isError = true
		return m, nil
	}

	m.submitting = true
	m.message = ""
	m.isError = false
	backend := m.backend
	return m, tea.Batch(
		func() tea.Msg {
			ctx, cancel := fetchContext()
			defer cancel()
			_, err := backend.CreateTransaction(ctx, req)
			return formSubmittedMsg{err: err}
		},
		m.spinner.Tick,
	)
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return msgRequiredFields
	}
	switch fieldErrs[0].Field() {
	case "Amount":
		return msgInvalidAmount
	case "Date":
		return msgInvalidDate
	default:
		return msgRequiredFields
	}
}

// View renders the form.
func (m TransactionFormModel) View() string {
	var b strings.Builder

	title := "Add Expense"
	if m.txnType == model.TypeIncome {
		title = "Add Income"
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.renderField(fieldType, "Type", m.renderTypeToggle()))
	b.WriteString(m.renderField(fieldAmount, "Amount", m.amount.View()))
	b.WriteString(m.renderField(fieldDate, "Date", m.date.View()))
	b.WriteString(m.renderField(fieldCategory, "Category", m.renderCategoryPicker()))
	b.WriteString(m.renderField(fieldMerchant, "Merchant", m.merchant.View()))
	b.WriteString(m.renderField(fieldDescription, "Description", m.description.View()))
	b.WriteString(m.renderField(fieldPayment, "Payment method", m.payment.View()))
	b.WriteString(m.renderField(fieldTags, "Tags", m.tags.View()))

	b.WriteString("\n")
	if m.message != "" {
		style := m.theme.StatusSuccess
		if m.isError {
			style = m.theme.StatusError
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.Faint.Render(" Saving..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render("tab next field  •  ctrl+s save  •  esc cancel"))
	return b.String()
}

func (m TransactionFormModel) renderField(field formField, label, value string) string {
	labelStyle := m.theme.Subtitle
	if m.focus == field {
		labelStyle = m.theme.Bold
	}
	return labelStyle.Render(padLabel(label)) + " " + value + "\n"
}

func padLabel(label string) string {
	const width = 15
	if len(label) >= width {
		return label
	}
	return label + strings.Repeat(" ", width-len(label))
}

func (m TransactionFormModel) renderTypeToggle() string {
	income := "Income"
	expense := "Expense"
	if m.txnType == model.TypeIncome {
		income = m.theme.Selected.Render(" Income ")
	} else {
		expense = m.theme.Selected.Render(" Expense ")
	}
	return expense + "  " + income
}

func (m TransactionFormModel) renderCategoryPicker() string {
	switch {
	case m.catLoading:
		return m.theme.Faint.Render("Loading categories...")
	case m.catErr != "":
		return m.theme.StatusError.Render("Error loading categories")
	}

	filtered := m.filteredCategories()
	if len(filtered) == 0 {
		return m.theme.Faint.Render("No categories available")
	}
	if category := m.selectedCategory(); category != nil {
		return "◀ " + m.theme.Bold.Render(category.Name) + " ▶"
	}
	return m.theme.Faint.Render("◀ Select a category ▶")
}
