package usecase

import (
	"iter"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/ledger"
)

// TransactionLedger stores transaction records newest first.
// The tracker depends on these interfaces, not on the concrete ledger types.
//
//go:generate mockgen -destination=mocks/mock_tracker.go -source=interface.go
type TransactionLedger interface {
	InsertFront(id int, amount float64, date, category string)
	FindByAmount(amount float64) (domain.Transaction, bool)
	DeleteByID(id int) bool
	All() iter.Seq[domain.Transaction]
	Len() int
}

// UndoHistory records additions so the most recent one can be reverted.
type UndoHistory interface {
	RecordAddition(id int)
	UndoLast(store ledger.Deleter) domain.UndoResult
	Len() int
}

// ReminderQueue holds pending reminders in arrival order.
type ReminderQueue interface {
	Enqueue(text string)
	DrainAll() []string
	Len() int
}
