package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"finance-tracker/internal/domain"

	"github.com/dustin/go-humanize"
)

// renderer turns tracker results into console output.
type renderer interface {
	transactions(w io.Writer, seq iter.Seq[domain.Transaction]) error
	found(w io.Writer, tx domain.Transaction) error
	reminders(w io.Writer, items []string) error
	cumulative(w io.Writer, tracker Tracker) error
}

type textRenderer struct {
	numberFormat string
}

func (r textRenderer) amount(v float64) string {
	return humanize.FormatFloat(r.numberFormat, v)
}

func (r textRenderer) line(tx domain.Transaction) string {
	return fmt.Sprintf("ID: %d, Amount: %s, Date: %s, Category: %s", tx.ID, r.amount(tx.Amount), tx.Date, tx.Category)
}

func (r textRenderer) transactions(w io.Writer, seq iter.Seq[domain.Transaction]) error {
	if _, err := fmt.Fprintln(w, "Transaction History:"); err != nil {
		return err
	}
	for tx := range seq {
		if _, err := fmt.Fprintln(w, r.line(tx)); err != nil {
			return err
		}
	}
	return nil
}

func (r textRenderer) found(w io.Writer, tx domain.Transaction) error {
	_, err := fmt.Fprintln(w, "Transaction Found - "+r.line(tx))
	return err
}

func (r textRenderer) reminders(w io.Writer, items []string) error {
	if _, err := fmt.Fprintln(w, "Processing Reminders:"); err != nil {
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	return nil
}

func (r textRenderer) cumulative(w io.Writer, tracker Tracker) error {
	_, err := fmt.Fprintf(w, "Cumulative Transaction Amount: %s\n", r.amount(tracker.CumulativeTotal()))
	return err
}

// jsonRenderer prints results as indented JSON documents.
type jsonRenderer struct{}

func (jsonRenderer) write(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func (r jsonRenderer) transactions(w io.Writer, seq iter.Seq[domain.Transaction]) error {
	txs := make([]domain.Transaction, 0)
	for tx := range seq {
		txs = append(txs, tx)
	}
	return r.write(w, txs)
}

func (r jsonRenderer) found(w io.Writer, tx domain.Transaction) error {
	return r.write(w, tx)
}

func (r jsonRenderer) reminders(w io.Writer, items []string) error {
	return r.write(w, items)
}

func (r jsonRenderer) cumulative(w io.Writer, tracker Tracker) error {
	return r.write(w, tracker.Summary())
}
