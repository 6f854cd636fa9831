// Package calc implements the calculator core: pure arithmetic primitives and
// a sanitize-and-evaluate pipeline for text expressions. Every failure is a
// *CalculatorError with a descriptive reason; no other error kind escapes.
package calc

import "math"

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, calcError("Division by zero is not allowed")
	}
	return a / b, nil
}

// Power returns base raised to exponent. Finite operands overflowing the
// float64 range fail as too large; an infinity propagated from infinite input
// fails as an infinite result.
func Power(base, exponent float64) (float64, error) {
	r := math.Pow(base, exponent)
	switch {
	case math.IsInf(r, 0) && !math.IsInf(base, 0) && !math.IsInf(exponent, 0):
		return 0, calcError("Number too large to represent")
	case math.IsInf(r, 0):
		return 0, calcError("Result is infinity")
	case math.IsNaN(r):
		return 0, calcError("Invalid operation resulting in NaN")
	}
	return r, nil
}

// SquareRoot returns the square root of n.
func SquareRoot(n float64) (float64, error) {
	if n < 0 {
		return 0, calcError("Cannot calculate square root of negative number")
	}
	return math.Sqrt(n), nil
}

// Modulus returns the remainder of a / b. The sign of the result follows the
// divisor: Modulus(-10, 3) == 2 and Modulus(10, -3) == -2.
func Modulus(a, b float64) (float64, error) {
	if b == 0 {
		return 0, calcError("Modulus by zero is not allowed")
	}
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r, nil
}
