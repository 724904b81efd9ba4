package expr

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// tokenKind classifies lexer output.
type tokenKind int

const (
	tokEOF       tokenKind = iota
	tokInt                 // bare integer: 42
	tokMoneyPart           // one unit-tagged count: £1, 4s, 6d
	tokOp                  // + - * / < <= > >= == !=
	tokLParen
	tokRParen
)

// token is one lexeme with its 1-based column in the source.
type token struct {
	kind tokenKind
	text string
	col  int
}

// ParseError reports a syntax error with its position in the expression.
type ParseError struct {
	Col     int
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at column %d: %s", e.Col, e.Message)
}

// lexer splits an expression into tokens. Unit symbols are not interpreted
// here; any symbol run attached to a number becomes a tokMoneyPart and the
// parser resolves it against the denomination system.
type lexer struct {
	src string
	pos int // byte offset
}

func (l *lexer) errf(col int, format string, args ...any) error {
	return &ParseError{Col: col, Message: fmt.Sprintf(format, args...)}
}

func (l *lexer) tokens() ([]token, error) {
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokEOF {
			return toks, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && l.src[l.pos] == ' ' {
		l.pos++
	}
	col := l.pos + 1
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, col: col}, nil
	}

	c := l.src[l.pos]
	switch {
	case c >= '0' && c <= '9':
		start := l.pos
		for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
			l.pos++
		}
		// A trailing symbol run makes this a unit-tagged count: "4s".
		symStart := l.pos
		l.scanSymbol()
		if l.pos > symStart {
			return token{kind: tokMoneyPart, text: l.src[start:l.pos], col: col}, nil
		}
		return token{kind: tokInt, text: l.src[start:l.pos], col: col}, nil

	case c == '(':
		l.pos++
		return token{kind: tokLParen, text: "(", col: col}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, text: ")", col: col}, nil

	case c == '+' || c == '-' || c == '*' || c == '/':
		l.pos++
		return token{kind: tokOp, text: string(c), col: col}, nil

	case c == '<' || c == '>':
		l.pos++
		op := string(c)
		if l.pos < len(l.src) && l.src[l.pos] == '=' {
			op += "="
			l.pos++
		}
		return token{kind: tokOp, text: op, col: col}, nil

	case c == '=' || c == '!':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '=' {
			op := l.src[l.pos : l.pos+2]
			l.pos += 2
			return token{kind: tokOp, text: op, col: col}, nil
		}
		return token{}, l.errf(col, "unexpected %q", string(c))

	default:
		// Symbol run followed by digits: a prefix-tagged count like "£1".
		start := l.pos
		l.scanSymbol()
		if l.pos == start {
			return token{}, l.errf(col, "unexpected %q", string(c))
		}
		digStart := l.pos
		for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
			l.pos++
		}
		if l.pos == digStart {
			return token{}, l.errf(col, "symbol %q without a count", l.src[start:digStart])
		}
		return token{kind: tokMoneyPart, text: l.src[start:l.pos], col: col}, nil
	}
}

// scanSymbol advances over a run of unit-symbol runes: letters and currency
// signs, anything that is not a digit, operator, paren, or space.
func (l *lexer) scanSymbol() {
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isSymbolRune(r) {
			return
		}
		l.pos += size
	}
}

func isSymbolRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Sc, r)
}
