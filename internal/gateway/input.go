package gateway

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"finance-tracker/internal/domain"
)

// lineReader reads one line of console input at a time.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// readLine returns the next line without its line ending. A final line with
// no newline is returned normally; io.EOF is only reported once nothing is left.
func (lr *lineReader) readLine() (string, error) {
	line, err := lr.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse amount '%s': %w", s, domain.ErrInvalidAmount)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("amount '%s' is not finite: %w", s, domain.ErrInvalidAmount)
	}
	return amount, nil
}

func parseID(s string) (int, error) {
	s = strings.TrimSpace(s)
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("could not parse id '%s': %w", s, domain.ErrInvalidID)
	}
	return id, nil
}

func parseCommand(s string) (Command, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < int(CommandAdd) || n > int(CommandExit) {
		return 0, fmt.Errorf("unknown option '%s': %w", s, domain.ErrInvalidChoice)
	}
	return Command(n), nil
}
