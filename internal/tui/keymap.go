package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global key bindings. Component-local bindings live in
// the components themselves.
type KeyMap struct {
	Quit         key.Binding
	Help         key.Binding
	Back         key.Binding
	Refresh      key.Binding
	Transactions key.Binding
	AddExpense   key.Binding
	AddIncome    key.Binding
	Reports      key.Binding
	Receipt      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Transactions: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "transactions"),
		),
		AddExpense: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add expense"),
		),
		AddIncome: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "add income"),
		),
		Reports: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "reports"),
		),
		Receipt: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scan receipt"),
		),
	}
}
