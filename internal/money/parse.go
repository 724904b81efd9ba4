package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads an amount in traditional notation: whitespace-separated unit
// tokens, largest unit first, each unit at most once. Prefix units put the
// symbol first ("£1"), suffix units last ("4s", "6d"). Fields above a
// unit's carry base are accepted and normalized, matching New.
//
// Parse is the inverse of Amount.String for every normalized amount.
func Parse(sys *System, s string) (Amount, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Amount{}, &Error{
			Code:    ErrCodeParse,
			Message: "empty amount",
			System:  sys.Name,
		}
	}

	counts := make([]int64, len(sys.Units))
	next := 0 // next unit index a token may bind to; enforces order and uniqueness
	for _, tok := range fields {
		bound := false
		for i := next; i < len(sys.Units); i++ {
			n, ok := matchUnit(sys.Units[i], tok)
			if !ok {
				continue
			}
			counts[i] = n
			next = i + 1
			bound = true
			break
		}
		if !bound {
			return Amount{}, &Error{
				Code:    ErrCodeParse,
				Message: fmt.Sprintf("unrecognized token %q", tok),
				System:  sys.Name,
			}
		}
	}
	return New(sys, counts...)
}

// matchUnit reports whether tok denotes a count of unit u, e.g. "£12" for a
// prefix unit or "4s" for a suffix unit. Negative counts never match.
func matchUnit(u Unit, tok string) (int64, bool) {
	var digits string
	var ok bool
	if u.Prefix {
		digits, ok = strings.CutPrefix(tok, u.Symbol)
	} else {
		digits, ok = strings.CutSuffix(tok, u.Symbol)
	}
	if !ok || digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
