package model

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/noisegen/pkg/errors"
)

func TestBaseEstimatorState(t *testing.T) {
	var e BaseEstimator
	if e.IsFitted() {
		t.Fatal("zero value should not be fitted")
	}
	e.SetFitted(3)
	if !e.IsFitted() {
		t.Fatal("expected fitted after SetFitted")
	}
	if e.NFeatures() != 3 {
		t.Errorf("NFeatures() = %d, want 3", e.NFeatures())
	}
	e.Reset()
	if e.IsFitted() || e.NFeatures() != 0 {
		t.Fatal("expected initial state after Reset")
	}
}

func TestCheckTransformInput(t *testing.T) {
	var e BaseEstimator

	var notFitted *errors.NotFittedError
	if err := e.CheckTransformInput("GaussianNoise", "Transform", mat.NewDense(2, 2, nil)); !errors.As(err, &notFitted) {
		t.Fatalf("expected NotFittedError, got %v", err)
	}

	e.SetFitted(2)
	tests := []struct {
		name    string
		X       mat.Matrix
		wantErr error
	}{
		{"matching columns", mat.NewDense(3, 2, nil), nil},
		{"no rows", &mat.Dense{}, errors.ErrEmptyDataset},
		{"extra column", mat.NewDense(3, 3, nil), errors.ErrShapeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.CheckTransformInput("GaussianNoise", "Transform", tt.X)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
