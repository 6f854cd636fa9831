package expr

import (
	"math"
	"strconv"
)

// Func is a function from reals to reals. A Func reports a *DomainError when
// its argument is outside the function's domain.
type Func func(x float64) (float64, error)

var globalfuncs = map[string]Func{
	"sqrt": func(x float64) (float64, error) {
		if x < 0 {
			return 0, &DomainError{X: x, Func: "sqrt"}
		}
		return math.Sqrt(x), nil
	},
	// log is the natural logarithm.
	"log": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, &DomainError{X: x, Func: "log"}
		}
		return math.Log(x), nil
	},
	"sin": func(x float64) (float64, error) { return math.Sin(x), nil },
	"cos": func(x float64) (float64, error) { return math.Cos(x), nil },
	"tan": func(x float64) (float64, error) { return math.Tan(x), nil },
	"abs": func(x float64) (float64, error) { return math.Abs(x), nil },
}

// Funcs returns the names of the functions the parser recognizes, sorted.
func Funcs() []string {
	v := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		v = append(v, k)
	}
	sortstrs(v)
	return v
}

// sortstrs sorts a small string slice without using package sort because that
// has reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// DomainError is an error returned when a function is called on an argument
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func
}
