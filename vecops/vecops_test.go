package vecops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/noisegen/pkg/errors"
)

func TestBinaryOps(t *testing.T) {
	tests := []struct {
		name    string
		op      func(x, y []float64) error
		x, y    []float64
		want    []float64
		wantErr bool
	}{
		{
			name: "add",
			op:   Add,
			x:    []float64{1, 2, 3},
			y:    []float64{0.5, -2, 10},
			want: []float64{1.5, 0, 13},
		},
		{
			name: "subtract",
			op:   Subtract,
			x:    []float64{1, 2, 3},
			y:    []float64{0.5, -2, 10},
			want: []float64{0.5, 4, -7},
		},
		{
			name: "add empty",
			op:   Add,
			x:    []float64{},
			y:    []float64{},
			want: []float64{},
		},
		{
			name:    "add shape mismatch",
			op:      Add,
			x:       []float64{1, 2, 3},
			y:       []float64{1, 2},
			want:    []float64{1, 2, 3},
			wantErr: true,
		},
		{
			name:    "subtract shape mismatch",
			op:      Subtract,
			x:       []float64{1},
			y:       []float64{1, 2},
			want:    []float64{1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op(tt.x, tt.y)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrShapeMismatch))
			} else {
				require.NoError(t, err)
			}
			// x is left untouched on error
			assert.Equal(t, tt.want, tt.x)
		})
	}
}

func TestSquareElementwise(t *testing.T) {
	x := []float64{-3, 0, 1.5}
	SquareElementwise(x)
	assert.Equal(t, []float64{9, 0, 2.25}, x)
}

func TestScalarOps(t *testing.T) {
	x := []float64{1, -2, 4}
	ScalarMultiply(x, 2.5)
	assert.Equal(t, []float64{2.5, -5, 10}, x)

	ScalarDivide(x, 5)
	assert.Equal(t, []float64{0.5, -1, 2}, x)

	y := []float64{9, 12}
	ScalarDivide(y, 3)
	assert.Equal(t, []float64{3, 4}, y)
}

func TestScalarDivideByZero(t *testing.T) {
	x := []float64{1, -1, 0}
	ScalarDivide(x, 0)
	assert.True(t, math.IsInf(x[0], 1))
	assert.True(t, math.IsInf(x[1], -1))
	assert.True(t, math.IsNaN(x[2]))
}
