package ledger

import "finance-tracker/internal/domain"

// Deleter is the part of a ledger the undo history needs.
type Deleter interface {
	DeleteByID(id int) bool
}

// History is a LIFO stack of transaction identifiers in the order they were added.
type History struct {
	ids []int
}

// NewHistory creates an empty undo history.
func NewHistory() *History {
	return &History{}
}

// RecordAddition pushes an identifier onto the stack.
func (h *History) RecordAddition(id int) {
	h.ids = append(h.ids, id)
}

// UndoLast pops the newest identifier and deletes it from the store.
// A popped identifier always yields UndoDone, even if the store no longer
// held it; Removed tells the two cases apart.
func (h *History) UndoLast(store Deleter) domain.UndoResult {
	if len(h.ids) == 0 {
		return domain.EmptyHistory()
	}
	id := h.ids[len(h.ids)-1]
	h.ids = h.ids[:len(h.ids)-1]
	return domain.Undone(id, store.DeleteByID(id))
}

// Len returns the number of additions that can still be undone.
func (h *History) Len() int {
	return len(h.ids)
}
