package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oldpence/tally/internal/dispatch"
	"github.com/oldpence/tally/internal/money"
)

// Parse reads an expression into an AST. Money literals are resolved
// against sys at parse time, so "£1 4s 6d + 2 * 10s" parses to two money
// literals, an integer literal, and two binary nodes.
func Parse(sys *money.System, src string) (Node, error) {
	toks, err := (&lexer{src: src}).tokens()
	if err != nil {
		return nil, err
	}
	p := &parser{sys: sys, toks: toks}
	n, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, &ParseError{Col: tok.col, Message: fmt.Sprintf("unexpected %q", tok.text)}
	}
	return n, nil
}

// Operator precedence, loosest first: comparisons, additive,
// multiplicative. Binary operators are left-associative.
func precedence(op string) int {
	switch op {
	case "==", "!=", "<", "<=", ">", ">=":
		return 1
	case "+", "-":
		return 2
	case "*", "/":
		return 3
	}
	return 0
}

type parser struct {
	sys  *money.System
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) advance() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expression(minPrec int) (Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokOp {
			return left, nil
		}
		prec := precedence(tok.text)
		if prec == 0 || prec < minPrec {
			return left, nil
		}
		p.advance()
		right, err := p.expression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = Binary{ColPos: tok.col, Op: dispatch.Op(tok.text), Left: left, Right: right}
	}
}

func (p *parser) unary() (Node, error) {
	if tok := p.peek(); tok.kind == tokOp && tok.text == "-" {
		p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return Neg{ColPos: tok.col, Expr: operand}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Node, error) {
	tok := p.peek()
	switch tok.kind {
	case tokInt:
		p.advance()
		n, err := strconv.ParseInt(tok.text, 10, 64)
		if err != nil {
			return nil, &ParseError{Col: tok.col, Message: fmt.Sprintf("integer %q out of range", tok.text)}
		}
		return IntLit{ColPos: tok.col, Value: n}, nil

	case tokMoneyPart:
		// Consecutive unit-tagged counts form one money literal.
		var parts []string
		for p.peek().kind == tokMoneyPart {
			parts = append(parts, p.advance().text)
		}
		a, err := money.Parse(p.sys, strings.Join(parts, " "))
		if err != nil {
			return nil, &ParseError{Col: tok.col, Message: fmt.Sprintf("invalid money literal: %v", err)}
		}
		return MoneyLit{ColPos: tok.col, Amount: a}, nil

	case tokLParen:
		p.advance()
		inner, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		if closing := p.peek(); closing.kind != tokRParen {
			return nil, &ParseError{Col: closing.col, Message: "expected )"}
		}
		p.advance()
		return inner, nil

	case tokEOF:
		return nil, &ParseError{Col: tok.col, Message: "expected expression"}

	default:
		return nil, &ParseError{Col: tok.col, Message: fmt.Sprintf("unexpected %q", tok.text)}
	}
}
