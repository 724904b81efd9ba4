package dispatch

import (
	"errors"
	"fmt"
	"strings"
)

// DispatchError reports a failed method resolution.
//
// Resolution fails two ways:
//   - No method: no registered method is applicable to the operand kinds
//   - Ambiguous: several applicable methods exist and none is strictly
//     more specific than the others
type DispatchError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op is the operator being resolved.
	Op Op

	// Left and Right are the operand kind names.
	Left  string
	Right string

	// Candidates lists the tied method signatures (for ambiguity errors).
	Candidates []string
}

// ErrorCode categorizes dispatch errors.
type ErrorCode string

const (
	// ErrCodeNoMethod indicates no applicable method for the operand kinds.
	ErrCodeNoMethod ErrorCode = "NO_METHOD"

	// ErrCodeAmbiguous indicates several applicable methods with no unique
	// most-specific one.
	ErrCodeAmbiguous ErrorCode = "AMBIGUOUS_METHOD"
)

// Error implements the error interface.
func (e *DispatchError) Error() string {
	if e.Code == ErrCodeAmbiguous {
		return fmt.Sprintf("%s: %s(%s, %s) matches %s equally", e.Code, e.Op, e.Left, e.Right,
			strings.Join(e.Candidates, " and "))
	}
	return fmt.Sprintf("%s: no method for %s(%s, %s)", e.Code, e.Op, e.Left, e.Right)
}

// IsNoMethod returns true if the error is a missing-method error.
// Uses errors.As to handle wrapped errors.
func IsNoMethod(err error) bool {
	var de *DispatchError
	if errors.As(err, &de) {
		return de.Code == ErrCodeNoMethod
	}
	return false
}

// IsAmbiguous returns true if the error is an ambiguous-method error.
func IsAmbiguous(err error) bool {
	var de *DispatchError
	if errors.As(err, &de) {
		return de.Code == ErrCodeAmbiguous
	}
	return false
}
