package usecase

import (
	"iter"
	"log/slog"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/ledger"

	"github.com/google/uuid"
)

// Tracker composes the ledger, the undo history and the reminder queue into
// the operations offered to the shell. It is the only place identifiers are
// assigned.
type Tracker struct {
	ledger    TransactionLedger
	history   UndoHistory
	reminders ReminderQueue
	lastID    int

	sessionID string
	logger    *slog.Logger
}

// NewTracker creates a tracker backed by the in-memory ledger structures.
func NewTracker(logger *slog.Logger) *Tracker {
	return NewTrackerWith(ledger.New(), ledger.NewHistory(), ledger.NewReminders(), logger)
}

// NewTrackerWith creates a tracker over the given collaborators.
// A nil logger discards all output.
func NewTrackerWith(l TransactionLedger, h UndoHistory, r ReminderQueue, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sessionID := uuid.NewString()
	return &Tracker{
		ledger:    l,
		history:   h,
		reminders: r,
		sessionID: sessionID,
		logger:    logger.With("component", "tracker", "session_id", sessionID),
	}
}

// SessionID identifies this tracker instance in logs.
func (t *Tracker) SessionID() string {
	return t.sessionID
}

// AddTransaction records a new transaction and returns its identifier.
func (t *Tracker) AddTransaction(amount float64, date, category string) int {
	t.lastID++
	id := t.lastID
	t.ledger.InsertFront(id, amount, date, category)
	t.history.RecordAddition(id)

	t.logger.Debug("Transaction added", "operation", "add", "transaction_id", id, "amount", amount, "category", category)
	return id
}

// DeleteTransaction removes a transaction by id. The undo history is left as is.
func (t *Tracker) DeleteTransaction(id int) bool {
	deleted := t.ledger.DeleteByID(id)
	t.logger.Debug("Transaction delete", "operation", "delete", "transaction_id", id, "found", deleted)
	return deleted
}

// SearchTransaction returns the most recent transaction with exactly this amount.
func (t *Tracker) SearchTransaction(amount float64) (domain.Transaction, bool) {
	return t.ledger.FindByAmount(amount)
}

// UndoLastTransaction deletes the most recently added transaction that is
// still on the undo stack.
func (t *Tracker) UndoLastTransaction() domain.UndoResult {
	res := t.history.UndoLast(t.ledger)
	if res.IsEmpty() {
		t.logger.Debug("Nothing to undo", "operation", "undo")
		return res
	}
	t.logger.Debug("Transaction undone", "operation", "undo", "transaction_id", res.ID, "removed", res.Removed)
	return res
}

// Transactions yields the ledger newest first.
func (t *Tracker) Transactions() iter.Seq[domain.Transaction] {
	return t.ledger.All()
}

// AddReminder queues a reminder for the next ProcessReminders call.
func (t *Tracker) AddReminder(text string) {
	t.reminders.Enqueue(text)
	t.logger.Debug("Reminder added", "operation", "remind", "pending", t.reminders.Len())
}

// ProcessReminders drains the reminder queue. Each reminder is returned once.
func (t *Tracker) ProcessReminders() []string {
	out := t.reminders.DrainAll()
	t.logger.Debug("Reminders processed", "operation", "process_reminders", "count", len(out))
	return out
}

// CumulativeTotal is the sum of every amount currently in the ledger.
func (t *Tracker) CumulativeTotal() float64 {
	return ledger.CumulativeSum(t.ledger.All())
}

// Summary reports the totals and pending work of the session.
func (t *Tracker) Summary() domain.Summary {
	all := t.ledger.All()
	return domain.Summary{
		TransactionCount: t.ledger.Len(),
		CumulativeTotal:  ledger.CumulativeSum(all),
		IncomeTotal:      ledger.SumByCategory(all, domain.CategoryIncome),
		ExpenseTotal:     ledger.SumByCategory(all, domain.CategoryExpense),
		PendingUndo:      t.history.Len(),
		PendingReminders: t.reminders.Len(),
	}
}
