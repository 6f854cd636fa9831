package calc

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestAdd(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{2, 3, 5},
		{-1, 1, 0},
		{0, 0, 0},
		{2.5, 3.7, 6.2},
		{-5, -3, -8},
	}
	for _, c := range cases {
		if got := Add(c.a, c.b); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Add(%g, %g) = %g, want %g", c.a, c.b, got, c.want)
		}
	}
}

func TestSubtract(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{5, 3, 2},
		{0, 5, -5},
		{-3, -1, -2},
		{10.5, 5.5, 5},
		{1, 1, 0},
	}
	for _, c := range cases {
		if got := Subtract(c.a, c.b); got != c.want {
			t.Errorf("Subtract(%g, %g) = %g, want %g", c.a, c.b, got, c.want)
		}
	}
}

func TestMultiply(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{3, 4, 12},
		{0, 100, 0},
		{-2, 3, -6},
		{-2, -3, 6},
		{2.5, 4, 10},
	}
	for _, c := range cases {
		if got := Multiply(c.a, c.b); got != c.want {
			t.Errorf("Multiply(%g, %g) = %g, want %g", c.a, c.b, got, c.want)
		}
	}
}

func TestCommutativity(t *testing.T) {
	pairs := [][2]float64{{2, 3}, {-1, 7}, {0.5, 0.25}, {1e10, -1e-10}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if Add(a, b) != Add(b, a) {
			t.Errorf("Add(%g, %g) != Add(%g, %g)", a, b, b, a)
		}
		if Multiply(a, b) != Multiply(b, a) {
			t.Errorf("Multiply(%g, %g) != Multiply(%g, %g)", a, b, b, a)
		}
	}
}

func TestDivide(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{10, 2, 5},
		{7, 2, 3.5},
		{-8, 4, -2},
		{-6, -2, 3},
		{0, 5, 0},
	}
	for _, c := range cases {
		got, err := Divide(c.a, c.b)
		if err != nil {
			t.Fatalf("Divide(%g, %g) error: %v", c.a, c.b, err)
		}
		if got != c.want {
			t.Errorf("Divide(%g, %g) = %g, want %g", c.a, c.b, got, c.want)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	_, err := Divide(5, 0)
	assertCalcError(t, err, "Division by zero is not allowed")
}

func TestDivideRoundTrip(t *testing.T) {
	// For finite a and b != 0, Divide(a, b) * b is a within tolerance.
	cases := [][2]float64{{1, 3}, {10, 7}, {-2.5, 0.3}, {1e6, -17}}
	for _, c := range cases {
		a, b := c[0], c[1]
		q, err := Divide(a, b)
		if err != nil {
			t.Fatalf("Divide(%g, %g) error: %v", a, b, err)
		}
		if got := Multiply(q, b); math.Abs(got-a) > 1e-9*math.Abs(a) {
			t.Errorf("Divide(%g, %g) * %g = %g, want %g", a, b, b, got, a)
		}
	}
}

func TestPower(t *testing.T) {
	cases := []struct {
		base, exp, want float64
	}{
		{2, 3, 8},
		{5, 0, 1},
		{10, 1, 10},
		{2, -1, 0.5},
		{9, 0.5, 3},
		{-2, 2, 4},
		{-2, 3, -8},
	}
	for _, c := range cases {
		got, err := Power(c.base, c.exp)
		if err != nil {
			t.Fatalf("Power(%g, %g) error: %v", c.base, c.exp, err)
		}
		if got != c.want {
			t.Errorf("Power(%g, %g) = %g, want %g", c.base, c.exp, got, c.want)
		}
	}
}

func TestPowerEdgeCases(t *testing.T) {
	_, err := Power(10, 1000)
	assertCalcError(t, err, "Number too large to represent")

	_, err = Power(math.Inf(1), 2)
	assertCalcError(t, err, "Result is infinity")

	_, err = Power(-1, 0.5)
	assertCalcError(t, err, "Invalid operation resulting in NaN")
}

func TestSquareRoot(t *testing.T) {
	cases := []struct {
		n, want float64
	}{
		{9, 3},
		{16, 4},
		{0, 0},
		{2, math.Sqrt2},
		{0.25, 0.5},
	}
	for _, c := range cases {
		got, err := SquareRoot(c.n)
		if err != nil {
			t.Fatalf("SquareRoot(%g) error: %v", c.n, err)
		}
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("SquareRoot(%g) = %g, want %g", c.n, got, c.want)
		}
	}
}

func TestSquareRootNegative(t *testing.T) {
	_, err := SquareRoot(-1)
	assertCalcError(t, err, "Cannot calculate square root of negative number")
}

func TestPowerSquareRootRoundTrip(t *testing.T) {
	// Power and SquareRoot are inverse operations.
	powered, err := Power(5, 2)
	if err != nil {
		t.Fatal(err)
	}
	rooted, err := SquareRoot(powered)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rooted-5) > 1e-12 {
		t.Errorf("SquareRoot(Power(5, 2)) = %g, want 5", rooted)
	}
}

func TestModulus(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{10, 3, 1},
		{15, 5, 0},
		{7, 2, 1},
		// The sign of the result follows the divisor.
		{-10, 3, 2},
		{10, -3, -2},
		{-10, -3, -1},
	}
	for _, c := range cases {
		got, err := Modulus(c.a, c.b)
		if err != nil {
			t.Fatalf("Modulus(%g, %g) error: %v", c.a, c.b, err)
		}
		if got != c.want {
			t.Errorf("Modulus(%g, %g) = %g, want %g", c.a, c.b, got, c.want)
		}
	}
}

func TestModulusByZero(t *testing.T) {
	_, err := Modulus(5, 0)
	assertCalcError(t, err, "Modulus by zero is not allowed")
}

func TestFloatingPointPrecision(t *testing.T) {
	if got := Add(0.1, 0.2); math.Abs(got-0.3) > 1e-10 {
		t.Errorf("Add(0.1, 0.2) = %g, want about 0.3", got)
	}
	if got := Subtract(1.0, 0.9); math.Abs(got-0.1) > 1e-10 {
		t.Errorf("Subtract(1.0, 0.9) = %g, want about 0.1", got)
	}
}

// assertCalcError checks that err is a *CalculatorError mentioning reason.
func assertCalcError(t *testing.T, err error, reason string) {
	t.Helper()
	if err == nil {
		t.Fatal("no error")
	}
	var ce *CalculatorError
	if !errors.As(err, &ce) {
		t.Fatalf("error %#v is not *CalculatorError", err)
	}
	if !strings.Contains(ce.Reason, reason) {
		t.Fatalf("wrong reason: want %q, got %q", reason, ce.Reason)
	}
}
