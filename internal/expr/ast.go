package expr

import (
	"github.com/oldpence/tally/internal/dispatch"
	"github.com/oldpence/tally/internal/money"
)

// Node is a sealed interface over expression AST nodes.
type Node interface {
	node()
	// Col returns the node's 1-based column in the source expression.
	Col() int
}

// IntLit is a bare integer literal.
type IntLit struct {
	ColPos int
	Value  int64
}

func (IntLit) node()      {}
func (n IntLit) Col() int { return n.ColPos }

// MoneyLit is a money literal, already resolved against a denomination
// system at parse time: "£1 4s 6d".
type MoneyLit struct {
	ColPos int
	Amount money.Amount
}

func (MoneyLit) node()      {}
func (n MoneyLit) Col() int { return n.ColPos }

// Neg is unary minus. It only applies to integers; money stays
// non-negative.
type Neg struct {
	ColPos int
	Expr   Node
}

func (Neg) node()      {}
func (n Neg) Col() int { return n.ColPos }

// Binary is a binary operator application, resolved through the dispatch
// table at evaluation time.
type Binary struct {
	ColPos int
	Op     dispatch.Op
	Left   Node
	Right  Node
}

func (Binary) node()      {}
func (n Binary) Col() int { return n.ColPos }
