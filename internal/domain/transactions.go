package domain

// Conventional category labels. The ledger does not enforce them.
const (
	CategoryIncome  = "income"
	CategoryExpense = "expense"
)

// Transaction represents a single ledger entry.
type Transaction struct {
	ID       int     `json:"id"`
	Amount   float64 `json:"amount"` // Can be negative or zero
	Date     string  `json:"date"`   // Free text, never parsed
	Category string  `json:"category"`
}

// UndoStatus tells whether an undo popped an identifier or found nothing to pop.
type UndoStatus string

const (
	UndoDone  UndoStatus = "UNDONE"
	UndoEmpty UndoStatus = "EMPTY"
)

// UndoResult is the outcome of reverting the most recent addition.
// Removed is false when the popped id had already been deleted directly;
// the status is still UndoDone in that case.
type UndoResult struct {
	Status  UndoStatus `json:"status"`
	ID      int        `json:"id,omitempty"`
	Removed bool       `json:"removed"`
}

// Undone builds the result for a popped identifier.
func Undone(id int, removed bool) UndoResult {
	return UndoResult{Status: UndoDone, ID: id, Removed: removed}
}

// EmptyHistory builds the result for an undo with nothing recorded.
func EmptyHistory() UndoResult {
	return UndoResult{Status: UndoEmpty}
}

// IsEmpty reports whether there was nothing to undo.
func (r UndoResult) IsEmpty() bool {
	return r.Status == UndoEmpty
}
