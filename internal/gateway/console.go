package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"finance-tracker/internal/domain"
)

// Command is a menu option of the console session.
type Command int

const (
	CommandAdd Command = iota + 1
	CommandList
	CommandDelete
	CommandSearch
	CommandUndo
	CommandRemind
	CommandProcessReminders
	CommandCumulative
	CommandExit
)

const menu = `
Personal Finance Tracker:
1. Add Transaction
2. Display Transactions
3. Delete Transaction
4. Search Transaction by Amount
5. Undo Last Transaction
6. Add Reminder
7. Process Reminders
8. Calculate Cumulative Transactions
9. Exit
Choose an option: `

// Tracker is the set of operations the console drives.
type Tracker interface {
	AddTransaction(amount float64, date, category string) int
	DeleteTransaction(id int) bool
	SearchTransaction(amount float64) (domain.Transaction, bool)
	UndoLastTransaction() domain.UndoResult
	Transactions() iter.Seq[domain.Transaction]
	AddReminder(text string)
	ProcessReminders() []string
	CumulativeTotal() float64
	Summary() domain.Summary
}

// Options controls how the console renders results.
type Options struct {
	Output       string // "text" or "json"
	NumberFormat string
	Logger       *slog.Logger
}

// notFoundError carries the message shown for a missing transaction.
type notFoundError struct {
	msg string
}

func (e *notFoundError) Error() string { return e.msg }

func (e *notFoundError) Unwrap() error { return domain.ErrTransactionNotFound }

// Console is the interactive menu loop in front of a Tracker.
type Console struct {
	tracker  Tracker
	in       *lineReader
	out      io.Writer
	render   renderer
	logger   *slog.Logger
	writeErr error
}

// NewConsole creates a console reading commands from in and writing to out.
func NewConsole(tracker Tracker, in io.Reader, out io.Writer, opts Options) *Console {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var r renderer
	if opts.Output == "json" {
		r = jsonRenderer{}
	} else {
		format := opts.NumberFormat
		if format == "" {
			format = "#,###.##"
		}
		r = textRenderer{numberFormat: format}
	}

	return &Console{
		tracker: tracker,
		in:      newLineReader(in),
		out:     out,
		render:  r,
		logger:  logger.With("component", "console"),
	}
}

// Run processes commands until Exit, end of input or cancellation of ctx.
// Exit and end of input return nil.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.print(menu)
		if c.writeErr != nil {
			return c.writeErr
		}
		line, err := c.in.readLine()
		if errors.Is(err, io.EOF) {
			c.logger.Debug("Input closed, ending session")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read menu choice: %w", err)
		}

		cmd, err := parseCommand(line)
		if err != nil {
			c.logger.Debug("Rejected menu choice", "error", err)
			c.println("Invalid choice. Try again.")
			continue
		}
		if cmd == CommandExit {
			c.println("Exiting...")
			return c.writeErr
		}

		if err := c.Execute(cmd); err != nil {
			if errors.Is(err, io.EOF) {
				c.logger.Debug("Input closed mid-command, ending session", "command", int(cmd))
				return c.writeErr
			}
			if !c.report(err) {
				return err
			}
		}
		if c.writeErr != nil {
			return c.writeErr
		}
	}
}

// Execute runs a single command, prompting for its arguments.
func (c *Console) Execute(cmd Command) error {
	switch cmd {
	case CommandAdd:
		return c.handleAdd()
	case CommandList:
		return c.render.transactions(c.out, c.tracker.Transactions())
	case CommandDelete:
		return c.handleDelete()
	case CommandSearch:
		return c.handleSearch()
	case CommandUndo:
		return c.handleUndo()
	case CommandRemind:
		return c.handleRemind()
	case CommandProcessReminders:
		return c.render.reminders(c.out, c.tracker.ProcessReminders())
	case CommandCumulative:
		return c.render.cumulative(c.out, c.tracker)
	default:
		return fmt.Errorf("command %d: %w", int(cmd), domain.ErrInvalidChoice)
	}
}

func (c *Console) handleAdd() error {
	raw, err := c.prompt("Enter amount: ")
	if err != nil {
		return err
	}
	amount, err := parseAmount(raw)
	if err != nil {
		return err
	}
	date, err := c.prompt("Enter date (DD-MM-YYYY): ")
	if err != nil {
		return err
	}
	category, err := c.prompt("Enter type (income/expense): ")
	if err != nil {
		return err
	}

	id := c.tracker.AddTransaction(amount, date, category)
	c.println("Transaction added.")
	c.print(fmt.Sprintf("Assigned ID %d. Use option 5 to undo.\n", id))
	return nil
}

func (c *Console) handleDelete() error {
	raw, err := c.prompt("Enter transaction ID to delete: ")
	if err != nil {
		return err
	}
	id, err := parseID(raw)
	if err != nil {
		return err
	}
	if !c.tracker.DeleteTransaction(id) {
		return &notFoundError{msg: "Transaction not found."}
	}
	c.print(fmt.Sprintf("Transaction %d deleted.\n", id))
	return nil
}

func (c *Console) handleSearch() error {
	raw, err := c.prompt("Enter amount to search: ")
	if err != nil {
		return err
	}
	amount, err := parseAmount(raw)
	if err != nil {
		return err
	}
	tx, ok := c.tracker.SearchTransaction(amount)
	if !ok {
		return &notFoundError{msg: fmt.Sprintf("No transaction with amount %v found.", amount)}
	}
	return c.render.found(c.out, tx)
}

func (c *Console) handleUndo() error {
	res := c.tracker.UndoLastTransaction()
	if res.IsEmpty() {
		return domain.ErrEmptyHistory
	}
	// A stale id was already deleted directly; the undo still counts.
	if res.Removed {
		c.print(fmt.Sprintf("Transaction %d deleted.\n", res.ID))
	} else {
		c.println("Transaction not found.")
	}
	c.println("Last transaction undone.")
	return nil
}

func (c *Console) handleRemind() error {
	text, err := c.prompt("Enter reminder: ")
	if err != nil {
		return err
	}
	c.tracker.AddReminder(text)
	c.println("Reminder added.")
	return nil
}

// report prints the user message for a recoverable error. It returns false
// when err is not one the session can continue from.
func (c *Console) report(err error) bool {
	var nf *notFoundError
	switch {
	case errors.As(err, &nf):
		c.println(nf.msg)
	case errors.Is(err, domain.ErrEmptyHistory):
		c.println("No transactions to undo.")
	case errors.Is(err, domain.ErrInvalidAmount):
		c.println("Invalid amount.")
	case errors.Is(err, domain.ErrInvalidID):
		c.println("Invalid ID.")
	case errors.Is(err, domain.ErrInvalidChoice):
		c.println("Invalid choice. Try again.")
	default:
		return false
	}
	c.logger.Debug("Command rejected", "error", err)
	return true
}

func (c *Console) prompt(label string) (string, error) {
	c.print(label)
	if c.writeErr != nil {
		return "", c.writeErr
	}
	return c.in.readLine()
}

func (c *Console) print(s string) {
	if c.writeErr != nil {
		return
	}
	_, c.writeErr = io.WriteString(c.out, s)
}

func (c *Console) println(s string) {
	c.print(s + "\n")
}
