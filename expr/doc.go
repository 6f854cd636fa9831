// Package expr implements a small floating-point expression calculator.
//
// The grammar is deliberately restricted: decimal numbers, the binary
// operators + - * /, exponentiation written ** or ^, unary plus and minus,
// round brackets for grouping, and calls to a fixed set of one-argument
// functions (sqrt, log, sin, cos, tan, abs). There is no implicit
// multiplication and there are no variables; an identifier that is not a
// known function is an error.
//
// Expressions are parsed into an explicit syntax tree and evaluated by
// walking it, so untrusted input never reaches anything more powerful than
// this grammar.
package expr
