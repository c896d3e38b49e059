// Package vecops provides in-place elementwise arithmetic on float64 vectors.
//
// Binary operations check that both operands have the same length and return a
// ShapeError otherwise, instead of panicking like the underlying gonum routines.
package vecops

import (
	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/noisegen/pkg/errors"
)

// Add computes x[i] += y[i].
func Add(x, y []float64) error {
	if len(x) != len(y) {
		return errors.NewShapeError("vecops.Add", len(x), len(y))
	}
	floats.Add(x, y)
	return nil
}

// Subtract computes x[i] -= y[i].
func Subtract(x, y []float64) error {
	if len(x) != len(y) {
		return errors.NewShapeError("vecops.Subtract", len(x), len(y))
	}
	floats.Sub(x, y)
	return nil
}

// SquareElementwise computes x[i] = x[i]*x[i].
func SquareElementwise(x []float64) {
	floats.Mul(x, x)
}

// ScalarMultiply computes x[i] *= k.
func ScalarMultiply(x []float64, k float64) {
	floats.Scale(k, x)
}

// ScalarDivide computes x[i] /= k. A zero divisor yields ±Inf or NaN.
func ScalarDivide(x []float64, k float64) {
	// x*(1/k) would round differently from x/k.
	for i := range x {
		x[i] /= k
	}
}
