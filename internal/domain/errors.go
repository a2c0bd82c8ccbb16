package domain

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrEmptyHistory        = errors.New("no transactions to undo")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidID           = errors.New("invalid transaction id")
	ErrInvalidChoice       = errors.New("invalid choice")
)
