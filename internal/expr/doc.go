// Package expr implements the money expression language: a lexer, a
// precedence-climbing parser, and an evaluator driven by the dispatch
// table.
//
// Literals are bare integers and money notation ("£1 4s 6d"); operators
// are + - * /, comparisons, and equality, with parentheses and integer
// unary minus. Syntax errors carry the offending column.
package expr
