package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// assertInOrder checks that every fragment appears in out after the previous one.
func assertInOrder(t *testing.T, out string, fragments ...string) {
	t.Helper()
	pos := 0
	for _, f := range fragments {
		idx := strings.Index(out[pos:], f)
		if !assert.GreaterOrEqual(t, idx, 0, "missing %q after offset %d", f, pos) {
			return
		}
		pos += idx + len(f)
	}
}

func TestConsole_Run_FullSession(t *testing.T) {
	tracker := usecase.NewTracker(nil)
	var out bytes.Buffer
	in := script(
		"1", "10", "01-01-2025", "income",
		"1", "10", "02-01-2025", "expense",
		"2",
		"4", "10",
		"3", "1",
		"3", "1",
		"5", "5", "5",
		"6", "pay rent",
		"7", "7",
		"8",
		"9",
	)

	err := NewConsole(tracker, in, &out, Options{}).Run(context.Background())
	require.NoError(t, err)

	assertInOrder(t, out.String(),
		"Enter amount: ", "Enter date (DD-MM-YYYY): ", "Enter type (income/expense): ",
		"Transaction added.", "Assigned ID 1.",
		"Transaction added.", "Assigned ID 2.",
		"Transaction History:",
		"ID: 2, Amount: 10.00, Date: 02-01-2025, Category: expense",
		"ID: 1, Amount: 10.00, Date: 01-01-2025, Category: income",
		"Transaction Found - ID: 2, Amount: 10.00, Date: 02-01-2025, Category: expense",
		"Transaction 1 deleted.",
		"Transaction not found.",
		"Transaction 2 deleted.\nLast transaction undone.",
		"Transaction not found.\nLast transaction undone.",
		"No transactions to undo.",
		"Reminder added.",
		"Processing Reminders:\npay rent\n",
		"Processing Reminders:\n",
		"Cumulative Transaction Amount: 0.00",
		"Exiting...",
	)
	assert.Equal(t, 0, tracker.Summary().TransactionCount)
}

func TestConsole_Run_RejectsBadInput(t *testing.T) {
	tracker := usecase.NewTracker(nil)
	var out bytes.Buffer
	in := script(
		"abc",
		"0",
		"1", "ten",
		"3", "first",
		"4", "NaN",
		"4", "99",
		"9",
	)

	require.NoError(t, NewConsole(tracker, in, &out, Options{}).Run(context.Background()))

	assertInOrder(t, out.String(),
		"Invalid choice. Try again.",
		"Invalid choice. Try again.",
		"Invalid amount.",
		"Invalid ID.",
		"Invalid amount.",
		"No transaction with amount 99 found.",
		"Exiting...",
	)
	assert.Equal(t, 0, tracker.Summary().TransactionCount)
}

func TestConsole_Run_EndOfInput(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCount int
	}{
		{name: "empty input", input: "", wantCount: 0},
		{name: "no trailing newline", input: "1\n5\ntoday\nincome", wantCount: 1},
		{name: "closed mid command", input: "1\n5\n", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := usecase.NewTracker(nil)
			var out bytes.Buffer

			err := NewConsole(tracker, strings.NewReader(tt.input), &out, Options{}).Run(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCount, tracker.Summary().TransactionCount)
			assert.NotContains(t, out.String(), "Exiting...")
		})
	}
}

func TestConsole_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewConsole(usecase.NewTracker(nil), script("9"), &out, Options{}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConsole_Run_WriteError(t *testing.T) {
	err := NewConsole(usecase.NewTracker(nil), script("9"), failingWriter{}, Options{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestConsole_Execute_JSON(t *testing.T) {
	tracker := usecase.NewTracker(nil)
	tracker.AddTransaction(100, "01-01-2025", domain.CategoryIncome)
	tracker.AddTransaction(-40, "02-01-2025", domain.CategoryExpense)
	tracker.AddReminder("pay rent")

	t.Run("list", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(tracker, strings.NewReader(""), &out, Options{Output: "json"})
		require.NoError(t, c.Execute(CommandList))

		var got []domain.Transaction
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, []domain.Transaction{
			{ID: 2, Amount: -40, Date: "02-01-2025", Category: domain.CategoryExpense},
			{ID: 1, Amount: 100, Date: "01-01-2025", Category: domain.CategoryIncome},
		}, got)
	})

	t.Run("search", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(tracker, script("100"), &out, Options{Output: "json"})
		require.NoError(t, c.Execute(CommandSearch))

		body := strings.TrimPrefix(out.String(), "Enter amount to search: ")
		var got domain.Transaction
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		assert.Equal(t, 1, got.ID)
	})

	t.Run("cumulative prints summary", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(tracker, strings.NewReader(""), &out, Options{Output: "json"})
		require.NoError(t, c.Execute(CommandCumulative))

		var got domain.Summary
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, domain.Summary{
			TransactionCount: 2,
			CumulativeTotal:  60,
			IncomeTotal:      100,
			ExpenseTotal:     -40,
			PendingUndo:      2,
			PendingReminders: 1,
		}, got)
	})

	t.Run("reminders", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(tracker, strings.NewReader(""), &out, Options{Output: "json"})
		require.NoError(t, c.Execute(CommandProcessReminders))

		var got []string
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, []string{"pay rent"}, got)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(usecase.NewTracker(nil), strings.NewReader(""), &out, Options{Output: "json"})
		require.NoError(t, c.Execute(CommandList))
		assert.Equal(t, "[]\n", out.String())
	})
}

func TestConsole_Execute_NumberFormat(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{name: "default", format: "", want: "Cumulative Transaction Amount: 1,234.50\n"},
		{name: "european", format: "#.###,##", want: "Cumulative Transaction Amount: 1.234,50\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := usecase.NewTracker(nil)
			tracker.AddTransaction(1234.5, "", "")

			var out bytes.Buffer
			c := NewConsole(tracker, strings.NewReader(""), &out, Options{NumberFormat: tt.format})
			require.NoError(t, c.Execute(CommandCumulative))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestConsole_Execute_UnknownCommand(t *testing.T) {
	c := NewConsole(usecase.NewTracker(nil), strings.NewReader(""), &bytes.Buffer{}, Options{})
	assert.ErrorIs(t, c.Execute(Command(42)), domain.ErrInvalidChoice)
}

func TestConsole_Execute_UndoReportsDeletion(t *testing.T) {
	tests := []struct {
		name        string
		deleteFirst bool
		want        string
	}{
		{name: "pending addition", want: "Transaction 1 deleted.\nLast transaction undone.\n"},
		{name: "already deleted", deleteFirst: true, want: "Transaction not found.\nLast transaction undone.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := usecase.NewTracker(nil)
			id := tracker.AddTransaction(10, "", "")
			if tt.deleteFirst {
				require.True(t, tracker.DeleteTransaction(id))
			}

			var out bytes.Buffer
			c := NewConsole(tracker, strings.NewReader(""), &out, Options{})
			require.NoError(t, c.Execute(CommandUndo))
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, 0, tracker.Summary().TransactionCount)

			assert.ErrorIs(t, c.Execute(CommandUndo), domain.ErrEmptyHistory)
		})
	}
}
