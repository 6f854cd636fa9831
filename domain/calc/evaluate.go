package calc

import (
	"errors"
	"math"
	"strings"
	"unicode"

	"github.com/example/calculator-api/expr"
)

// funcNames is the set of function names the expression grammar recognizes.
var funcNames = func() map[string]bool {
	m := make(map[string]bool)
	for _, name := range expr.Funcs() {
		m[name] = true
	}
	return m
}()

// Evaluate evaluates a text expression and returns a finite result. The input
// is validated in stages, each failing fast with its own reason: empty input,
// characters outside the expression grammar, unbalanced parentheses. The
// surviving text is parsed and evaluated by the expr package; an infinite or
// NaN outcome is rejected. Evaluate is pure and safe for concurrent use.
func Evaluate(expression string) (float64, error) {
	expression = stripSpace(expression)
	if expression == "" {
		return 0, calcError("Invalid expression")
	}
	if err := screenTokens(expression); err != nil {
		return 0, err
	}
	if strings.Count(expression, "(") != strings.Count(expression, ")") {
		return 0, calcError("Unbalanced parentheses")
	}
	r, err := expr.EvalString(expression)
	if err != nil {
		return 0, wrapEvalError(err)
	}
	if math.IsInf(r, 0) {
		return 0, calcError("Result is infinity")
	}
	if math.IsNaN(r) {
		return 0, calcError("Invalid operation resulting in NaN")
	}
	return r, nil
}

// stripSpace removes all whitespace from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// screenTokens rejects any input that could not be a sentence of the
// expression grammar: the only characters allowed are digits, '.', the
// operators + - * / ^, parentheses, and letters forming exactly one of the
// recognized function names. Numeric literals are scanned with the same
// boundaries the lexer uses, so the e/E of an exponent is part of the number
// rather than a letter run. Remaining letter runs are checked as whole
// tokens, so a letter that merely appears inside some function name does not
// pass.
func screenTokens(expression string) error {
	runes := []rune(expression)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case '0' <= r && r <= '9', r == '.':
			i = scanNumber(runes, i)
		case strings.ContainsRune("+-*/^()", r):
			i++
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			if !funcNames[string(runes[i:j])] {
				return calcError("Expression contains invalid characters")
			}
			i = j
		default:
			return calcError("Expression contains invalid characters")
		}
	}
	return nil
}

// scanNumber advances past the numeric literal starting at i: digits and
// dots, then an optional exponent of e/E, an optional sign, and digits. An
// e/E with no digits after it is not consumed; it is screened as a letter
// run instead. Malformed literals like "1.1.1" are left for the parser to
// reject; the screen only decides token boundaries.
func scanNumber(runes []rune, i int) int {
	for i < len(runes) && ('0' <= runes[i] && runes[i] <= '9' || runes[i] == '.') {
		i++
	}
	if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
		j := i + 1
		if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
			j++
		}
		if j < len(runes) && '0' <= runes[j] && runes[j] <= '9' {
			for j < len(runes) && '0' <= runes[j] && runes[j] <= '9' {
				j++
			}
			return j
		}
	}
	return i
}

// wrapEvalError converts an expr parse or evaluation error into the
// calculator's error kind.
func wrapEvalError(err error) error {
	var dz *expr.DivideByZeroError
	if errors.As(err, &dz) {
		return calcError("Division by zero in expression")
	}
	var de *expr.DomainError
	if errors.As(err, &de) {
		return calcError("Invalid expression: " + err.Error())
	}
	var ie expr.InputError
	if errors.As(err, &ie) {
		return calcError("Invalid expression: " + err.Error())
	}
	return calcError("Error evaluating expression: " + err.Error())
}
