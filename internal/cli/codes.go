package cli

import (
	"errors"

	"github.com/oldpence/tally/internal/dispatch"
	"github.com/oldpence/tally/internal/expr"
	"github.com/oldpence/tally/internal/ledger"
	"github.com/oldpence/tally/internal/money"
	"github.com/oldpence/tally/internal/registry"
	"github.com/oldpence/tally/internal/value"
)

// ErrCodeGeneric is reported when an error carries no structured code.
const ErrCodeGeneric = "ERROR"

// errorCode extracts the structured code from any of the domain error
// types, so CLI output reports "UNDERFLOW" or "NO_METHOD" rather than a
// catch-all.
func errorCode(err error) string {
	if code := money.CodeOf(err); code != "" {
		return string(code)
	}
	var de *dispatch.DispatchError
	if errors.As(err, &de) {
		return string(de.Code)
	}
	var ke *value.KindError
	if errors.As(err, &ke) {
		return "KIND_MISMATCH"
	}
	var pe *expr.ParseError
	if errors.As(err, &pe) {
		return "PARSE_EXPR"
	}
	var le *ledger.Error
	if errors.As(err, &le) {
		return string(le.Code)
	}
	var re *registry.LoadError
	if errors.As(err, &re) {
		return re.Code
	}
	return ErrCodeGeneric
}

// outputFailure reports err via the formatter and converts it into an
// ExitError with the given exit code.
func outputFailure(formatter *OutputFormatter, exitCode int, err error) error {
	if outErr := formatter.Error(errorCode(err), err.Error(), nil); outErr != nil {
		return outErr
	}
	return WrapExitError(exitCode, errorCode(err), err)
}
