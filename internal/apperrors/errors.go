package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInsufficientFunds indicates that a debit exceeds the available balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrNoStatementWriter is returned when a statement is printed before a writer was set.
var ErrNoStatementWriter = fmt.Errorf("no statement writer configured: %w", ErrValidation)
