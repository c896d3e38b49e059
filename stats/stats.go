// Package stats estimates per-column statistics of an in-memory dataset.
package stats

import (
	"github.com/YuminosukeSato/noisegen/pkg/errors"
	"github.com/YuminosukeSato/noisegen/vecops"
)

// ColumnStats holds the per-column mean and unbiased sample variance.
type ColumnStats struct {
	Mean     []float64
	Variance []float64
}

// Columns returns the number of columns the statistics describe.
func (c ColumnStats) Columns() int {
	return len(c.Mean)
}

// MeanVariance computes the column means and sample variances of rows using
// two passes: the mean first, then the squared deviations divided by N-1.
//
// It fails with ErrEmptyDataset for zero rows, ErrInsufficientRows for a single
// row and ErrShapeMismatch when a row's length differs from the first row's.
// rows is never modified.
func MeanVariance(rows [][]float64) (ColumnStats, error) {
	const op = "stats.MeanVariance"

	n := len(rows)
	switch {
	case n == 0:
		return ColumnStats{}, errors.NewEmptyDatasetError(op)
	case n < 2:
		return ColumnStats{}, errors.NewInsufficientRowsError(op, n)
	}

	cols := len(rows[0])

	mean := make([]float64, cols)
	for i, row := range rows {
		if err := vecops.Add(mean, row); err != nil {
			return ColumnStats{}, errors.AtRow(err, i)
		}
	}
	vecops.ScalarDivide(mean, float64(n))

	variance := make([]float64, cols)
	dev := make([]float64, cols)
	for _, row := range rows {
		// shapes were checked by the first pass
		copy(dev, row)
		_ = vecops.Subtract(dev, mean)
		vecops.SquareElementwise(dev)
		_ = vecops.Add(variance, dev)
	}
	vecops.ScalarDivide(variance, float64(n-1))

	if err := errors.CheckNumericalStability(op, variance); err != nil {
		return ColumnStats{}, err
	}
	return ColumnStats{Mean: mean, Variance: variance}, nil
}
