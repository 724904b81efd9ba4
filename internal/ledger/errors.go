package ledger

import (
	"errors"
	"fmt"
)

// Error represents a ledger rule violation.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// System names the denomination system involved.
	System string
}

// ErrorCode categorizes ledger errors.
type ErrorCode string

const (
	// ErrCodeInsufficientBalance indicates a debit that would take the
	// running balance below zero.
	ErrCodeInsufficientBalance ErrorCode = "INSUFFICIENT_BALANCE"

	// ErrCodeBadDirection indicates a direction other than credit or debit.
	ErrCodeBadDirection ErrorCode = "BAD_DIRECTION"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.System != "" {
		return fmt.Sprintf("%s: %s (system=%s)", e.Code, e.Message, e.System)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInsufficientBalance returns true if the error is an insufficient
// balance error. Uses errors.As to handle wrapped errors.
func IsInsufficientBalance(err error) bool {
	var le *Error
	if errors.As(err, &le) {
		return le.Code == ErrCodeInsufficientBalance
	}
	return false
}
