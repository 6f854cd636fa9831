package expr_test

import (
	"fmt"
	"strings"

	"github.com/example/calculator-api/expr"
)

func ExampleEvalString() {
	r, err := expr.EvalString("sqrt(16) + 2 ** 3")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r)
	// Output:
	// 12
}

func ExampleParse() {
	a, err := expr.Parse(strings.NewReader("-2^2 + abs(-5)"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a)
	r, _ := a.Eval()
	fmt.Println(r)
	// Output:
	// ((-((2) ^ (2))) + (abs((-(5)))))
	// 1
}
