package money

import (
	"errors"
	"fmt"
)

// Error represents a failure in amount construction, arithmetic, or parsing.
//
// Amount errors include:
//   - Construction: negative fields, wrong field count
//   - Arithmetic: underflow below zero, overflow, division by zero
//   - Mixing: arithmetic across different denomination systems
//   - Parsing: text that does not denote an amount
//
// Error includes structured fields for diagnostics.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// System names the denomination system involved.
	System string

	// Unit names the denomination unit involved, when one is.
	Unit string
}

// ErrorCode categorizes amount errors.
type ErrorCode string

const (
	// ErrCodeNegativeUnit indicates a negative field passed to a constructor.
	ErrCodeNegativeUnit ErrorCode = "NEGATIVE_UNIT"

	// ErrCodeNegativeScalar indicates a negative scalar multiplier or divisor.
	ErrCodeNegativeScalar ErrorCode = "NEGATIVE_SCALAR"

	// ErrCodeArityMismatch indicates the wrong number of fields for a system.
	ErrCodeArityMismatch ErrorCode = "ARITY_MISMATCH"

	// ErrCodeSystemMismatch indicates arithmetic across two different systems.
	ErrCodeSystemMismatch ErrorCode = "SYSTEM_MISMATCH"

	// ErrCodeUnderflow indicates a result that would drop below zero.
	ErrCodeUnderflow ErrorCode = "UNDERFLOW"

	// ErrCodeOverflow indicates a result that exceeds the representable range.
	ErrCodeOverflow ErrorCode = "OVERFLOW"

	// ErrCodeDivideByZero indicates division by a zero scalar or zero amount.
	ErrCodeDivideByZero ErrorCode = "DIVIDE_BY_ZERO"

	// ErrCodeParse indicates text that does not denote an amount.
	ErrCodeParse ErrorCode = "PARSE_AMOUNT"
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.System != "" && e.Unit != "":
		return fmt.Sprintf("%s: %s (system=%s, unit=%s)", e.Code, e.Message, e.System, e.Unit)
	case e.System != "":
		return fmt.Sprintf("%s: %s (system=%s)", e.Code, e.Message, e.System)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// CodeOf extracts the ErrorCode from an error, or "" if it is not a money error.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var me *Error
	if errors.As(err, &me) {
		return me.Code
	}
	return ""
}

// IsUnderflow returns true if the error is an underflow error.
func IsUnderflow(err error) bool {
	return CodeOf(err) == ErrCodeUnderflow
}

// IsOverflow returns true if the error is an overflow error.
func IsOverflow(err error) bool {
	return CodeOf(err) == ErrCodeOverflow
}

// IsSystemMismatch returns true if the error is a system mismatch error.
func IsSystemMismatch(err error) bool {
	return CodeOf(err) == ErrCodeSystemMismatch
}

// IsParse returns true if the error is a parse error.
func IsParse(err error) bool {
	return CodeOf(err) == ErrCodeParse
}
