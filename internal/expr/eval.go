package expr

import (
	"fmt"

	"github.com/oldpence/tally/internal/dispatch"
	"github.com/oldpence/tally/internal/money"
	"github.com/oldpence/tally/internal/value"
)

// Evaluator walks expression ASTs, resolving operators through a dispatch
// table.
type Evaluator struct {
	table *dispatch.Table
}

// NewEvaluator creates an evaluator over the given dispatch table.
func NewEvaluator(table *dispatch.Table) *Evaluator {
	return &Evaluator{table: table}
}

// Eval evaluates a parsed expression to a runtime value.
func (e *Evaluator) Eval(n Node) (value.Value, error) {
	switch node := n.(type) {
	case IntLit:
		return value.NewInt(node.Value), nil

	case MoneyLit:
		return value.NewMoney(node.Amount), nil

	case Neg:
		operand, err := e.Eval(node.Expr)
		if err != nil {
			return nil, err
		}
		// Negation is integer-only; asserting Int on money surfaces the
		// kind mismatch to the caller.
		i, err := value.AsInt(operand)
		if err != nil {
			return nil, err
		}
		return value.NewInt(-i), nil

	case Binary:
		left, err := e.Eval(node.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.Eval(node.Right)
		if err != nil {
			return nil, err
		}
		return e.table.Apply(node.Op, left, right)

	default:
		return nil, fmt.Errorf("unknown node type: %T", n)
	}
}

// EvalString parses and evaluates an expression against a denomination
// system in one step.
func EvalString(sys *money.System, table *dispatch.Table, src string) (value.Value, error) {
	n, err := Parse(sys, src)
	if err != nil {
		return nil, err
	}
	return NewEvaluator(table).Eval(n)
}
