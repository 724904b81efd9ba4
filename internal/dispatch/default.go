package dispatch

import (
	"github.com/oldpence/tally/internal/money"
	"github.com/oldpence/tally/internal/value"
)

// Default builds the standard operator table for money expressions:
//
//	money ± money        exact, carry-normalized
//	money × int          both operand orders
//	money ÷ int          equal shares; the undivided remainder is dropped
//	money ÷ money        how many times the right fits into the left
//	int arithmetic       + - * /
//	text + text          concatenation
//	< <= > >=            same-kind numbers
//	== !=                any pair of values
func Default() *Table {
	t := NewTable()

	t.Register(OpAdd, value.MoneyKind, value.MoneyKind, moneyBinary(money.Amount.Add))
	t.Register(OpSub, value.MoneyKind, value.MoneyKind, moneyBinary(money.Amount.Sub))

	t.Register(OpMul, value.MoneyKind, value.IntKind, func(l, r value.Value) (value.Value, error) {
		return scaleMoney(l, r)
	})
	t.Register(OpMul, value.IntKind, value.MoneyKind, func(l, r value.Value) (value.Value, error) {
		return scaleMoney(r, l)
	})

	t.Register(OpDiv, value.MoneyKind, value.IntKind, func(l, r value.Value) (value.Value, error) {
		a, err := value.AsMoney(l)
		if err != nil {
			return nil, err
		}
		n, err := value.AsInt(r)
		if err != nil {
			return nil, err
		}
		share, _, err := a.DivScalar(n)
		if err != nil {
			return nil, err
		}
		return value.NewMoney(share), nil
	})
	t.Register(OpDiv, value.MoneyKind, value.MoneyKind, func(l, r value.Value) (value.Value, error) {
		a, err := value.AsMoney(l)
		if err != nil {
			return nil, err
		}
		b, err := value.AsMoney(r)
		if err != nil {
			return nil, err
		}
		times, _, err := a.DivAmount(b)
		if err != nil {
			return nil, err
		}
		return value.NewInt(times), nil
	})

	t.Register(OpAdd, value.IntKind, value.IntKind, intBinary(func(a, b int64) (value.Value, error) {
		return value.NewInt(a + b), nil
	}))
	t.Register(OpSub, value.IntKind, value.IntKind, intBinary(func(a, b int64) (value.Value, error) {
		return value.NewInt(a - b), nil
	}))
	t.Register(OpMul, value.IntKind, value.IntKind, intBinary(func(a, b int64) (value.Value, error) {
		return value.NewInt(a * b), nil
	}))
	t.Register(OpDiv, value.IntKind, value.IntKind, intBinary(func(a, b int64) (value.Value, error) {
		if b == 0 {
			return nil, &money.Error{Code: money.ErrCodeDivideByZero, Message: "division by zero"}
		}
		return value.NewInt(a / b), nil
	}))

	t.Register(OpAdd, value.TextKind, value.TextKind, func(l, r value.Value) (value.Value, error) {
		a, err := value.AsText(l)
		if err != nil {
			return nil, err
		}
		b, err := value.AsText(r)
		if err != nil {
			return nil, err
		}
		return value.NewText(a + b), nil
	})

	for _, op := range []Op{OpLt, OpLe, OpGt, OpGe} {
		t.Register(op, value.IntKind, value.IntKind, intCompare(op))
		t.Register(op, value.MoneyKind, value.MoneyKind, moneyCompare(op))
	}

	t.Register(OpEq, value.Any, value.Any, func(l, r value.Value) (value.Value, error) {
		return value.NewBool(equalValues(l, r)), nil
	})
	t.Register(OpNe, value.Any, value.Any, func(l, r value.Value) (value.Value, error) {
		return value.NewBool(!equalValues(l, r)), nil
	})

	return t
}

func moneyBinary(fn func(money.Amount, money.Amount) (money.Amount, error)) Func {
	return func(l, r value.Value) (value.Value, error) {
		a, err := value.AsMoney(l)
		if err != nil {
			return nil, err
		}
		b, err := value.AsMoney(r)
		if err != nil {
			return nil, err
		}
		res, err := fn(a, b)
		if err != nil {
			return nil, err
		}
		return value.NewMoney(res), nil
	}
}

func scaleMoney(m, n value.Value) (value.Value, error) {
	a, err := value.AsMoney(m)
	if err != nil {
		return nil, err
	}
	k, err := value.AsInt(n)
	if err != nil {
		return nil, err
	}
	scaled, err := a.MulScalar(k)
	if err != nil {
		return nil, err
	}
	return value.NewMoney(scaled), nil
}

func intBinary(fn func(a, b int64) (value.Value, error)) Func {
	return func(l, r value.Value) (value.Value, error) {
		a, err := value.AsInt(l)
		if err != nil {
			return nil, err
		}
		b, err := value.AsInt(r)
		if err != nil {
			return nil, err
		}
		return fn(a, b)
	}
}

func intCompare(op Op) Func {
	return intBinary(func(a, b int64) (value.Value, error) {
		c := 0
		switch {
		case a < b:
			c = -1
		case a > b:
			c = 1
		}
		return value.NewBool(orderHolds(op, c)), nil
	})
}

func moneyCompare(op Op) Func {
	return func(l, r value.Value) (value.Value, error) {
		a, err := value.AsMoney(l)
		if err != nil {
			return nil, err
		}
		b, err := value.AsMoney(r)
		if err != nil {
			return nil, err
		}
		c, err := a.Cmp(b)
		if err != nil {
			return nil, err
		}
		return value.NewBool(orderHolds(op, c)), nil
	}
}

func orderHolds(op Op, cmp int) bool {
	switch op {
	case OpLt:
		return cmp < 0
	case OpLe:
		return cmp <= 0
	case OpGt:
		return cmp > 0
	case OpGe:
		return cmp >= 0
	}
	return false
}

// equalValues compares across the whole union: values of different concrete
// kinds are unequal, never an error.
func equalValues(l, r value.Value) bool {
	if l.Kind() != r.Kind() {
		return false
	}
	if lm, ok := l.(value.Money); ok {
		return lm.Amount().Equal(r.(value.Money).Amount())
	}
	return l == r
}
