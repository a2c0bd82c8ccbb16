// Package ledger holds the in-memory structures behind the tracker: the
// transaction ledger, the undo history, the reminder queue and the aggregator.
package ledger

import (
	"iter"

	"finance-tracker/internal/domain"
)

// Ledger owns every transaction record. Records are kept newest first, so
// traversal, search and aggregation all visit the most recent addition first.
type Ledger struct {
	records []domain.Transaction
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// InsertFront stores a new record ahead of all existing ones.
// Identifiers are supplied by the caller and are not checked for duplicates.
func (l *Ledger) InsertFront(id int, amount float64, date, category string) {
	tx := domain.Transaction{
		ID:       id,
		Amount:   amount,
		Date:     date,
		Category: category,
	}
	l.records = append(l.records, domain.Transaction{})
	copy(l.records[1:], l.records)
	l.records[0] = tx
}

// FindByAmount returns the most recently added record whose amount equals
// the given value exactly. No tolerance is applied, so a value such as
// 0.1+0.2 will not match a stored 0.3.
func (l *Ledger) FindByAmount(amount float64) (domain.Transaction, bool) {
	for _, tx := range l.records {
		if tx.Amount == amount {
			return tx, true
		}
	}
	return domain.Transaction{}, false
}

// DeleteByID removes the record with the given identifier and reports
// whether one was found.
func (l *Ledger) DeleteByID(id int) bool {
	for i, tx := range l.records {
		if tx.ID != id {
			continue
		}
		copy(l.records[i:], l.records[i+1:])
		l.records[len(l.records)-1] = domain.Transaction{}
		l.records = l.records[:len(l.records)-1]
		return true
	}
	return false
}

// All yields the records newest first. The sequence can be ranged over any
// number of times and never mutates the ledger.
func (l *Ledger) All() iter.Seq[domain.Transaction] {
	return func(yield func(domain.Transaction) bool) {
		for _, tx := range l.records {
			if !yield(tx) {
				return
			}
		}
	}
}

// Len returns the number of records held.
func (l *Ledger) Len() int {
	return len(l.records)
}

// IsEmpty reports whether the ledger holds no records.
func (l *Ledger) IsEmpty() bool {
	return len(l.records) == 0
}
