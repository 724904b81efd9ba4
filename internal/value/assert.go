package value

import (
	"errors"
	"fmt"

	"github.com/oldpence/tally/internal/money"
)

// KindError reports a failed kind assertion: a value's runtime kind did not
// match the kind the caller asserted.
type KindError struct {
	Want *Kind
	Got  *Kind
}

// Error implements the error interface.
func (e *KindError) Error() string {
	return fmt.Sprintf("KIND_MISMATCH: value is %s, not %s", e.Got, e.Want)
}

// IsKindMismatch returns true if the error is a failed kind assertion.
// Uses errors.As to handle wrapped errors.
func IsKindMismatch(err error) bool {
	var ke *KindError
	return errors.As(err, &ke)
}

// AsInt asserts that v is an Int and returns its integer.
func AsInt(v Value) (int64, error) {
	i, ok := v.(Int)
	if !ok {
		return 0, &KindError{Want: IntKind, Got: v.Kind()}
	}
	return int64(i), nil
}

// AsBool asserts that v is a Bool.
func AsBool(v Value) (bool, error) {
	b, ok := v.(Bool)
	if !ok {
		return false, &KindError{Want: BoolKind, Got: v.Kind()}
	}
	return bool(b), nil
}

// AsText asserts that v is a Text.
func AsText(v Value) (string, error) {
	s, ok := v.(Text)
	if !ok {
		return "", &KindError{Want: TextKind, Got: v.Kind()}
	}
	return string(s), nil
}

// AsMoney asserts that v is a Money and returns the underlying amount.
func AsMoney(v Value) (money.Amount, error) {
	m, ok := v.(Money)
	if !ok {
		return money.Amount{}, &KindError{Want: MoneyKind, Got: v.Kind()}
	}
	return m.Amount(), nil
}
