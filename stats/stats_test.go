package stats

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/noisegen/pkg/errors"
)

func TestMeanVariance(t *testing.T) {
	tests := []struct {
		name         string
		rows         [][]float64
		wantMean     []float64
		wantVariance []float64
	}{
		{
			name:         "three rows two columns",
			rows:         [][]float64{{1, 2}, {3, 4}, {5, 6}},
			wantMean:     []float64{3, 4},
			wantVariance: []float64{4, 4},
		},
		{
			name:         "identical rows",
			rows:         [][]float64{{7, -1, 0.5}, {7, -1, 0.5}, {7, -1, 0.5}, {7, -1, 0.5}},
			wantMean:     []float64{7, -1, 0.5},
			wantVariance: []float64{0, 0, 0},
		},
		{
			name:         "two rows",
			rows:         [][]float64{{0}, {2}},
			wantMean:     []float64{1},
			wantVariance: []float64{2},
		},
		{
			name:         "zero columns",
			rows:         [][]float64{{}, {}},
			wantMean:     []float64{},
			wantVariance: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := MeanVariance(tt.rows)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.wantMean, cs.Mean, 1e-12)
			assert.InDeltaSlice(t, tt.wantVariance, cs.Variance, 1e-12)
			assert.Equal(t, len(tt.wantMean), cs.Columns())
		})
	}
}

func TestMeanVarianceMatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	const n, cols = 500, 4

	rows := make([][]float64, n)
	columns := make([][]float64, cols)
	for i := range rows {
		rows[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			v := rng.NormFloat64()*float64(j+1) + float64(10*j)
			rows[i][j] = v
			columns[j] = append(columns[j], v)
		}
	}

	cs, err := MeanVariance(rows)
	require.NoError(t, err)

	for j := 0; j < cols; j++ {
		mean, variance := stat.MeanVariance(columns[j], nil)
		assert.True(t, scalar.EqualWithinAbsOrRel(mean, cs.Mean[j], 1e-9, 1e-9), "mean column %d", j)
		assert.True(t, scalar.EqualWithinAbsOrRel(variance, cs.Variance[j], 1e-9, 1e-9), "variance column %d", j)
	}
}

func TestMeanVarianceDoesNotModifyRows(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	_, err := MeanVariance(rows)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, rows)
}

func TestMeanVarianceErrors(t *testing.T) {
	tests := []struct {
		name   string
		rows   [][]float64
		target error
	}{
		{"nil dataset", nil, errors.ErrEmptyDataset},
		{"empty dataset", [][]float64{}, errors.ErrEmptyDataset},
		{"single row", [][]float64{{1, 2, 3}}, errors.ErrInsufficientRows},
		{"short second row", [][]float64{{1, 2, 3}, {4, 5}}, errors.ErrShapeMismatch},
		{"long third row", [][]float64{{1, 2}, {3, 4}, {5, 6, 7}}, errors.ErrShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MeanVariance(tt.rows)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestMeanVarianceShapeErrorRow(t *testing.T) {
	_, err := MeanVariance([][]float64{{1, 2}, {3, 4}, {5, 6, 7}})

	var shapeErr *errors.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, 2, shapeErr.Row)
	assert.Equal(t, 2, shapeErr.Expected)
	assert.Equal(t, 3, shapeErr.Got)
}

func TestMeanVarianceNonFinite(t *testing.T) {
	_, err := MeanVariance([][]float64{{1, math.Inf(1)}, {2, 3}})

	var numErr *errors.NumericalInstabilityError
	assert.True(t, errors.As(err, &numErr), "got %v", err)
}
