package domain

// Summary is a snapshot of the tracker state, used for the cumulative report.
type Summary struct {
	TransactionCount int     `json:"transaction_count"`
	CumulativeTotal  float64 `json:"cumulative_total"`
	IncomeTotal      float64 `json:"income_total"`
	ExpenseTotal     float64 `json:"expense_total"`
	PendingUndo      int     `json:"pending_undo"`
	PendingReminders int     `json:"pending_reminders"`
}
