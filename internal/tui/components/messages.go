package components

// FormDoneMsg signals that the transaction form finished a successful
// submission and dismissed itself. The parent model decides where to go next.
type FormDoneMsg struct{}
