package registry

import (
	"fmt"

	"cuelang.org/go/cue"
	"golang.org/x/text/unicode/norm"

	"github.com/oldpence/tally/internal/money"
)

// CompileSystem decodes a CUE value into a denomination System.
// The CUE value should be the system struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`system: merk: { units: [...] }`)
//	sys, errs := CompileSystem(v.LookupPath(cue.ParsePath("system.merk")))
//
// The system's name is taken from the struct label. Unit symbols and names
// are NFC-normalized so that rendering and parsing agree on one byte form
// regardless of how the source file encoded them.
func CompileSystem(v cue.Value) (*money.System, []ValidationError) {
	name := ""
	labels := v.Path().Selectors()
	if len(labels) > 0 {
		name = labels[len(labels)-1].String()
	}

	if err := v.Err(); err != nil {
		return nil, []ValidationError{{
			System: name, Field: "system", Code: ErrCodeBuildFailed,
			Message: err.Error(),
		}}
	}

	sys := &money.System{}
	if err := v.Decode(sys); err != nil {
		return nil, []ValidationError{{
			System: name, Field: "system", Code: ErrCodeBuildFailed,
			Message: fmt.Sprintf("decoding system: %v", err),
		}}
	}
	sys.Name = norm.NFC.String(name)
	for i := range sys.Units {
		sys.Units[i].Name = norm.NFC.String(sys.Units[i].Name)
		sys.Units[i].Symbol = norm.NFC.String(sys.Units[i].Symbol)
	}

	if errs := ValidateSystem(sys); len(errs) > 0 {
		return nil, errs
	}
	return sys, nil
}

// ValidateSystem checks the structural rules for a denomination system:
// at least two units, no carry base on the largest unit, carry bases of at
// least 2 below it, and names and symbols present and unique.
func ValidateSystem(sys *money.System) []ValidationError {
	var errs []ValidationError
	fail := func(field, code, format string, args ...any) {
		errs = append(errs, ValidationError{
			System: sys.Name, Field: field, Code: code,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if sys.Name == "" {
		fail("name", CodeMissingName, "system name is required")
	}
	if len(sys.Units) < 2 {
		fail("units", CodeTooFewUnits, "a system needs at least two units, got %d", len(sys.Units))
		return errs
	}

	symbols := make(map[string]int)
	names := make(map[string]int)
	for i, u := range sys.Units {
		field := fmt.Sprintf("units[%d]", i)
		if u.Name == "" {
			fail(field+".name", CodeMissingName, "unit name is required")
		}
		if u.Symbol == "" {
			fail(field+".symbol", CodeMissingSymbol, "unit symbol is required")
		}
		if i == 0 {
			if u.Count != 0 {
				fail(field+".count", CodeBadCount, "the largest unit has no carry base, got %d", u.Count)
			}
		} else if u.Count < 2 {
			fail(field+".count", CodeBadCount, "carry base must be at least 2, got %d", u.Count)
		}
		if prev, dup := symbols[u.Symbol]; dup && u.Symbol != "" {
			fail(field+".symbol", CodeDuplicateSymbol, "symbol %q already used by units[%d]", u.Symbol, prev)
		} else {
			symbols[u.Symbol] = i
		}
		if prev, dup := names[u.Name]; dup && u.Name != "" {
			fail(field+".name", CodeDuplicateName, "name %q already used by units[%d]", u.Name, prev)
		} else {
			names[u.Name] = i
		}
	}
	return errs
}
