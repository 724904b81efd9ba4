package registry

import (
	"errors"
	"fmt"
)

// Error codes for system loading and lookup.
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeNoFiles       = "NO_FILES"
	ErrCodeLoadFailed    = "LOAD_FAILED"
	ErrCodeBuildFailed   = "BUILD_FAILED"
	ErrCodeInvalidSystem = "INVALID_SYSTEM"
	ErrCodeDuplicate     = "DUPLICATE_SYSTEM"
	ErrCodeUnknownSystem = "UNKNOWN_SYSTEM"
)

// LoadError represents an error that occurred while loading or looking up
// denomination systems.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnknownSystem returns true if the error is an unknown-system lookup
// error. Uses errors.As to handle wrapped errors.
func IsUnknownSystem(err error) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == ErrCodeUnknownSystem
	}
	return false
}

// ValidationError describes one way a system definition is invalid.
type ValidationError struct {
	// System names the offending system definition.
	System string `json:"system"`

	// Field locates the problem, e.g. "units[2].count".
	Field string `json:"field"`

	// Code identifies the rule violated.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s (%s)", e.System, e.Field, e.Message, e.Code)
}

// Validation rule codes.
const (
	CodeTooFewUnits     = "V001" // fewer than two units
	CodeBadCount        = "V002" // carry base below 2, or set on the largest unit
	CodeMissingName     = "V003" // empty unit or system name
	CodeMissingSymbol   = "V004" // empty unit symbol
	CodeDuplicateSymbol = "V005" // two units share a symbol
	CodeDuplicateName   = "V006" // two units share a name
)
