package dispatch

import (
	"fmt"

	"github.com/oldpence/tally/internal/value"
)

// Op names a binary operator.
type Op string

// Operators resolvable through a Table.
const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpLt  Op = "<"
	OpLe  Op = "<="
	OpGt  Op = ">"
	OpGe  Op = ">="
	OpEq  Op = "=="
	OpNe  Op = "!="
)

// Func implements one method of an operator for specific operand kinds.
type Func func(left, right value.Value) (value.Value, error)

// Method is a registered implementation of an operator, applicable when
// both operand kinds are descendants of (or equal to) its declared kinds.
type Method struct {
	Op    Op
	Left  *value.Kind
	Right *value.Kind
	Fn    Func
}

// Signature renders the method head, e.g. "*(Money, Int)".
func (m Method) Signature() string {
	return fmt.Sprintf("%s(%s, %s)", m.Op, m.Left, m.Right)
}

// Table resolves operators on the runtime kinds of BOTH operands.
// Resolution picks the unique most-specific applicable method, measuring
// specificity by parent-chain distance per operand; incomparable ties are
// ambiguity errors.
//
// A Table is built once at startup and then only read; it is not safe for
// concurrent registration.
type Table struct {
	methods map[Op][]Method
}

// NewTable creates an empty dispatch table.
func NewTable() *Table {
	return &Table{methods: make(map[Op][]Method)}
}

// Register adds a method for op at the given operand kinds.
// Registering the same (op, left, right) signature again replaces the
// earlier method.
func (t *Table) Register(op Op, left, right *value.Kind, fn Func) {
	m := Method{Op: op, Left: left, Right: right, Fn: fn}
	for i, existing := range t.methods[op] {
		if existing.Left == left && existing.Right == right {
			t.methods[op][i] = m
			return
		}
	}
	t.methods[op] = append(t.methods[op], m)
}

// candidate pairs an applicable method with its specificity distances.
type candidate struct {
	method Method
	dl, dr int
}

// dominates reports whether c is at least as specific as o on both operands
// and strictly more specific on one.
func (c candidate) dominates(o candidate) bool {
	if c.dl > o.dl || c.dr > o.dr {
		return false
	}
	return c.dl < o.dl || c.dr < o.dr
}

// Lookup resolves op for the given operand kinds.
func (t *Table) Lookup(op Op, left, right *value.Kind) (Method, error) {
	var applicable []candidate
	for _, m := range t.methods[op] {
		dl, ok := left.DistanceTo(m.Left)
		if !ok {
			continue
		}
		dr, ok := right.DistanceTo(m.Right)
		if !ok {
			continue
		}
		applicable = append(applicable, candidate{method: m, dl: dl, dr: dr})
	}

	if len(applicable) == 0 {
		return Method{}, &DispatchError{
			Code:  ErrCodeNoMethod,
			Op:    op,
			Left:  left.String(),
			Right: right.String(),
		}
	}

	// Keep only candidates not dominated by another.
	var minimal []candidate
	for _, c := range applicable {
		dominated := false
		for _, o := range applicable {
			if o.dominates(c) {
				dominated = true
				break
			}
		}
		if !dominated {
			minimal = append(minimal, c)
		}
	}

	if len(minimal) == 1 {
		return minimal[0].method, nil
	}

	sigs := make([]string, len(minimal))
	for i, c := range minimal {
		sigs[i] = c.method.Signature()
	}
	return Method{}, &DispatchError{
		Code:       ErrCodeAmbiguous,
		Op:         op,
		Left:       left.String(),
		Right:      right.String(),
		Candidates: sigs,
	}
}

// Apply resolves op on the runtime kinds of the operands and invokes the
// selected method.
func (t *Table) Apply(op Op, left, right value.Value) (value.Value, error) {
	m, err := t.Lookup(op, left.Kind(), right.Kind())
	if err != nil {
		return nil, err
	}
	return m.Fn(left, right)
}

// Methods returns the registered methods for an operator, in registration
// order. Used by diagnostics and tests.
func (t *Table) Methods(op Op) []Method {
	return t.methods[op]
}
