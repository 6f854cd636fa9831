package expr

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// Eval evaluates the expression and returns the result. Division by zero and
// out-of-domain function arguments are reported as errors; results which are
// infinite or NaN for other reasons (e.g. overflow) are returned as such for
// the caller to classify.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		v, err := strconv.ParseFloat(n.name, 64)
		if err != nil {
			var ne *strconv.NumError
			if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
				// Literal overflowed to an infinity. The caller's guards
				// classify the result.
				return v, nil
			}
			// The lexer screens number tokens.
			panic("expr: invalid number: " + n.name + " (" + err.Error() + ")")
		}
		return v, nil
	case nodeCall:
		x, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		return n.fn(x)
	case nodeNeg:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeNop:
		return n.left.eval()
	case nodeAdd:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case nodeSub:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		return l - r, nil
	case nodeMul:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		return l * r, nil
	case nodeDiv:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		if r == 0 {
			return 0, &DivideByZeroError{X: l}
		}
		return l / r, nil
	case nodePow:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		return math.Pow(l, r), nil
	default:
		panic("expr: invalid AST node " + n.kind.String())
	}
}

// eval2 evaluates both operands of a binary node.
func (n *node) eval2() (l, r float64, err error) {
	l, err = n.left.eval()
	if err != nil {
		return 0, 0, err
	}
	r, err = n.right.eval()
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// Eval is a shortcut to parse an expression and evaluate it.
func Eval(src io.RuneScanner) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

// DivideByZeroError is an error from evaluating a division whose divisor is
// zero.
type DivideByZeroError struct {
	// X is the dividend.
	X float64
}

func (err *DivideByZeroError) Error() string {
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " divided by zero"
}
