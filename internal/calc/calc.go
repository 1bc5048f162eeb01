package calc

import (
	"errors"
	gomath "math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ErrDivisionByZero is returned by Divide when the divisor is exactly zero.
var ErrDivisionByZero = errors.New("division by zero")

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

// Divide returns a / b, or ErrDivisionByZero when b == 0.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// IsEven reports whether n is divisible by 2 with no remainder.
// Remainder semantics follow math.Mod, so IsEven(-2) is true and
// non-integer inputs are never even.
func IsEven(n float64) bool {
	return gomath.Mod(n, 2) == 0
}

// ProcessArray returns a new slice containing the strictly-positive
// elements of xs, each doubled, sorted ascending. The input is not
// mutated; empty or all-non-positive input yields an empty slice.
func ProcessArray(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if x > 0 {
			out = append(out, x)
		}
	}
	floats.Scale(2, out)
	sort.Float64s(out)
	return out
}
