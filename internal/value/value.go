package value

import (
	"fmt"

	"github.com/oldpence/tally/internal/money"
)

// Value is a sealed interface over the evaluator's runtime values.
// Only Int, Bool, Text, and Money implement it; every Value reports a
// concrete Kind from the hierarchy in kind.go.
type Value interface {
	value() // Sealed - only these types implement it
	Kind() *Kind
	String() string
}

// Int is a plain integer value.
type Int int64

func (Int) value()           {}
func (Int) Kind() *Kind      { return IntKind }
func (v Int) String() string { return fmt.Sprintf("%d", int64(v)) }

// Bool is a boolean value, produced by comparisons.
type Bool bool

func (Bool) value()      {}
func (Bool) Kind() *Kind { return BoolKind }
func (v Bool) String() string {
	if v {
		return "true"
	}
	return "false"
}

// Text is a string value.
type Text string

func (Text) value()           {}
func (Text) Kind() *Kind      { return TextKind }
func (v Text) String() string { return string(v) }

// Money wraps a money.Amount as a runtime value.
type Money money.Amount

func (Money) value()      {}
func (Money) Kind() *Kind { return MoneyKind }

// Amount returns the underlying money.Amount.
func (v Money) Amount() money.Amount { return money.Amount(v) }

func (v Money) String() string { return v.Amount().String() }

// NewInt creates an Int value.
func NewInt(n int64) Int { return Int(n) }

// NewBool creates a Bool value.
func NewBool(b bool) Bool { return Bool(b) }

// NewText creates a Text value.
func NewText(s string) Text { return Text(s) }

// NewMoney creates a Money value.
func NewMoney(a money.Amount) Money { return Money(a) }

// JSON returns a JSON-marshalable description of a value: scalars for Int,
// Bool, and Text, and an object with rendering, system, and minor-unit
// total for Money.
func JSON(v Value) any {
	switch val := v.(type) {
	case Int:
		return map[string]any{"kind": "Int", "value": int64(val)}
	case Bool:
		return map[string]any{"kind": "Bool", "value": bool(val)}
	case Text:
		return map[string]any{"kind": "Text", "value": string(val)}
	case Money:
		a := val.Amount()
		return map[string]any{
			"kind":   "Money",
			"value":  a.String(),
			"system": a.System().Name,
			"minor":  a.Minor(),
		}
	default:
		return map[string]any{"kind": v.Kind().String(), "value": v.String()}
	}
}
