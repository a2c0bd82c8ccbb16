package ledger

// Reminders is a FIFO queue of free-text reminders.
type Reminders struct {
	items []string
}

// NewReminders creates an empty reminder queue.
func NewReminders() *Reminders {
	return &Reminders{}
}

// Enqueue appends a reminder.
func (r *Reminders) Enqueue(text string) {
	r.items = append(r.items, text)
}

// DrainAll removes and returns every pending reminder, oldest first.
func (r *Reminders) DrainAll() []string {
	out := make([]string, len(r.items))
	copy(out, r.items)
	r.items = nil
	return out
}

// Len returns the number of pending reminders.
func (r *Reminders) Len() int {
	return len(r.items)
}
