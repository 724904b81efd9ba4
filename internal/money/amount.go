package money

import (
	"fmt"
	"math"
	"strings"
)

// Amount is an immutable, non-negative quantity of money in one System.
//
// Amounts are held normalized: the per-unit decomposition returned by Split
// keeps every bounded field strictly below its unit's carry base. All
// arithmetic is exact integer arithmetic on the smallest unit; results that
// would be negative or exceed int64 are errors, never silent wraps.
//
// The zero Amount is the sterling zero.
type Amount struct {
	sys   *System
	minor int64
}

// New constructs a normalized Amount from per-unit counts, largest unit
// first. Counts must match the system's units in number and must be
// non-negative; counts at or above a unit's carry base overflow into the
// next higher unit, so New(Sterling(), 0, 25, 14) is £1 6s 2d.
func New(sys *System, counts ...int64) (Amount, error) {
	if len(counts) != len(sys.Units) {
		return Amount{}, &Error{
			Code:    ErrCodeArityMismatch,
			Message: fmt.Sprintf("system has %d units, got %d fields", len(sys.Units), len(counts)),
			System:  sys.Name,
		}
	}

	factors := sys.factors()
	var total int64
	for i, c := range counts {
		if c < 0 {
			return Amount{}, &Error{
				Code:    ErrCodeNegativeUnit,
				Message: fmt.Sprintf("negative count %d", c),
				System:  sys.Name,
				Unit:    sys.Units[i].Name,
			}
		}
		term, ok := mulInt64(c, factors[i])
		if !ok {
			return Amount{}, overflowError(sys)
		}
		total, ok = addInt64(total, term)
		if !ok {
			return Amount{}, overflowError(sys)
		}
	}
	return Amount{sys: sys, minor: total}, nil
}

// MustNew is New for amounts known valid at compile time. Panics on error.
func MustNew(sys *System, counts ...int64) Amount {
	a, err := New(sys, counts...)
	if err != nil {
		panic(err)
	}
	return a
}

// FromMinor constructs an Amount from a total in the system's smallest unit.
func FromMinor(sys *System, n int64) (Amount, error) {
	if n < 0 {
		return Amount{}, &Error{
			Code:    ErrCodeNegativeUnit,
			Message: fmt.Sprintf("negative total %d", n),
			System:  sys.Name,
			Unit:    sys.Smallest().Name,
		}
	}
	return Amount{sys: sys, minor: n}, nil
}

// Zero returns the zero amount of a system.
func Zero(sys *System) Amount {
	return Amount{sys: sys, minor: 0}
}

// System returns the amount's denomination system.
func (a Amount) System() *System {
	if a.sys == nil {
		return sterling
	}
	return a.sys
}

// Minor returns the total in the system's smallest unit.
func (a Amount) Minor() int64 {
	return a.minor
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.minor == 0
}

// Split returns the normalized per-unit counts, largest unit first.
// Every count except the first is strictly below its unit's carry base.
func (a Amount) Split() []int64 {
	sys := a.System()
	factors := sys.factors()
	counts := make([]int64, len(factors))
	rem := a.minor
	for i, f := range factors {
		counts[i] = rem / f
		rem %= f
	}
	return counts
}

// Add returns a + b. Both amounts must share a system.
func (a Amount) Add(b Amount) (Amount, error) {
	if err := a.sameSystem(b); err != nil {
		return Amount{}, err
	}
	total, ok := addInt64(a.minor, b.minor)
	if !ok {
		return Amount{}, overflowError(a.System())
	}
	return Amount{sys: a.System(), minor: total}, nil
}

// Sub returns a - b. Amounts are non-negative, so a < b is an underflow error.
func (a Amount) Sub(b Amount) (Amount, error) {
	if err := a.sameSystem(b); err != nil {
		return Amount{}, err
	}
	if a.minor < b.minor {
		return Amount{}, &Error{
			Code:    ErrCodeUnderflow,
			Message: fmt.Sprintf("%s - %s would be negative", a, b),
			System:  a.System().Name,
		}
	}
	return Amount{sys: a.System(), minor: a.minor - b.minor}, nil
}

// MulScalar returns a scaled by a non-negative integer.
func (a Amount) MulScalar(n int64) (Amount, error) {
	if n < 0 {
		return Amount{}, &Error{
			Code:    ErrCodeNegativeScalar,
			Message: fmt.Sprintf("negative multiplier %d", n),
			System:  a.System().Name,
		}
	}
	total, ok := mulInt64(a.minor, n)
	if !ok {
		return Amount{}, overflowError(a.System())
	}
	return Amount{sys: a.System(), minor: total}, nil
}

// DivScalar splits a into n equal shares. It returns the share and the
// remainder in the smallest unit that could not be divided evenly.
func (a Amount) DivScalar(n int64) (Amount, int64, error) {
	if n == 0 {
		return Amount{}, 0, &Error{
			Code:    ErrCodeDivideByZero,
			Message: "division by zero",
			System:  a.System().Name,
		}
	}
	if n < 0 {
		return Amount{}, 0, &Error{
			Code:    ErrCodeNegativeScalar,
			Message: fmt.Sprintf("negative divisor %d", n),
			System:  a.System().Name,
		}
	}
	return Amount{sys: a.System(), minor: a.minor / n}, a.minor % n, nil
}

// DivAmount returns how many times b fits into a, and the amount left over.
func (a Amount) DivAmount(b Amount) (int64, Amount, error) {
	if err := a.sameSystem(b); err != nil {
		return 0, Amount{}, err
	}
	if b.minor == 0 {
		return 0, Amount{}, &Error{
			Code:    ErrCodeDivideByZero,
			Message: "division by zero amount",
			System:  a.System().Name,
		}
	}
	return a.minor / b.minor, Amount{sys: a.System(), minor: a.minor % b.minor}, nil
}

// Cmp compares a and b: -1 if a < b, 0 if equal, 1 if a > b.
func (a Amount) Cmp(b Amount) (int, error) {
	if err := a.sameSystem(b); err != nil {
		return 0, err
	}
	switch {
	case a.minor < b.minor:
		return -1, nil
	case a.minor > b.minor:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports whether a and b are the same amount in the same system.
// Unlike Cmp, comparing across systems is not an error: the amounts are
// simply not equal.
func (a Amount) Equal(b Amount) bool {
	return a.System().Name == b.System().Name && a.minor == b.minor
}

// String renders the amount in traditional notation: each nonzero unit with
// its symbol, largest first ("£1 4s 6d"). Zero renders as the zero of the
// smallest unit ("0d").
func (a Amount) String() string {
	sys := a.System()
	counts := a.Split()

	var parts []string
	for i, c := range counts {
		if c == 0 {
			continue
		}
		parts = append(parts, renderUnit(sys.Units[i], c))
	}
	if len(parts) == 0 {
		return renderUnit(sys.Smallest(), 0)
	}
	return strings.Join(parts, " ")
}

func renderUnit(u Unit, count int64) string {
	if u.Prefix {
		return fmt.Sprintf("%s%d", u.Symbol, count)
	}
	return fmt.Sprintf("%d%s", count, u.Symbol)
}

func (a Amount) sameSystem(b Amount) error {
	as, bs := a.System(), b.System()
	if as.Name != bs.Name {
		return &Error{
			Code:    ErrCodeSystemMismatch,
			Message: fmt.Sprintf("cannot mix %s and %s amounts", as.Name, bs.Name),
			System:  as.Name,
		}
	}
	return nil
}

func overflowError(sys *System) error {
	return &Error{
		Code:    ErrCodeOverflow,
		Message: "amount exceeds representable range",
		System:  sys.Name,
	}
}

func addInt64(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}
