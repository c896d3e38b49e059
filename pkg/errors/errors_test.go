package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDatasetErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		wantMsg  string
	}{
		{
			name:     "empty dataset",
			err:      NewEmptyDatasetError("MeanVariance"),
			sentinel: ErrEmptyDataset,
			wantMsg:  "noisegen: MeanVariance: empty dataset (rows: 0)",
		},
		{
			name:     "single row",
			err:      NewInsufficientRowsError("MeanVariance", 1),
			sentinel: ErrInsufficientRows,
			wantMsg:  "noisegen: MeanVariance: insufficient rows (rows: 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", tt.err.Error(), tt.wantMsg)
			}
			if !Is(tt.err, tt.sentinel) {
				t.Errorf("expected error to match sentinel %v", tt.sentinel)
			}

			var datasetErr *DatasetError
			if !As(tt.err, &datasetErr) {
				t.Fatal("Error should be castable to *DatasetError")
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", tt.err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}
		})
	}
}

func TestShapeError(t *testing.T) {
	err := NewShapeError("vecops.Add", 3, 2)
	if !Is(err, ErrShapeMismatch) {
		t.Fatal("ShapeError should match ErrShapeMismatch")
	}
	if Is(err, ErrInvalidVariance) {
		t.Fatal("ShapeError should not match ErrInvalidVariance")
	}
	want := "noisegen: vecops.Add: shape mismatch. Expected length 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	err = AtRow(err, 4)
	want = "noisegen: vecops.Add: shape mismatch at row 4. Expected length 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() after AtRow = %v, want %v", err.Error(), want)
	}

	other := New("unrelated")
	if AtRow(other, 1) != other {
		t.Error("AtRow should return non-shape errors unchanged")
	}
}

func TestVarianceError(t *testing.T) {
	err := NewVarianceError("noise.NewSource", 1, -4)
	if !Is(err, ErrInvalidVariance) {
		t.Fatal("VarianceError should match ErrInvalidVariance")
	}
	var varErr *VarianceError
	if !As(err, &varErr) {
		t.Fatal("Error should be castable to *VarianceError")
	}
	if varErr.Column != 1 || varErr.Value != -4 {
		t.Errorf("unexpected fields: column=%d value=%v", varErr.Column, varErr.Value)
	}
	if !strings.Contains(err.Error(), "column 1") {
		t.Errorf("message should name the column: %s", err.Error())
	}
}

func TestErrorsMarshalZerolog(t *testing.T) {
	tests := []struct {
		name     string
		err      zerolog.LogObjectMarshaler
		wantType string
	}{
		{"dataset", &DatasetError{Op: "op", Rows: 1, Err: ErrInsufficientRows}, "DatasetError"},
		{"shape", &ShapeError{Op: "op", Expected: 2, Got: 3, Row: 1}, "ShapeError"},
		{"variance", &VarianceError{Op: "op", Column: 0, Value: -1}, "VarianceError"},
		{"not fitted", &NotFittedError{ModelName: "GaussianNoise", Method: "Transform"}, "NotFittedError"},
		{"validation", &ValidationError{ParamName: "ratio", Reason: "required", Value: nil}, "ValidationError"},
		{"numerical", &NumericalInstabilityError{Operation: "op", Values: []float64{1}}, "NumericalInstabilityError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)
			logger.Error().Object("error", tt.err).Msg("failed")

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("invalid JSON output: %v", err)
			}
			obj, ok := entry["error"].(map[string]interface{})
			if !ok {
				t.Fatalf("expected error object, got %v", entry["error"])
			}
			if obj["type"] != tt.wantType {
				t.Errorf("type = %v, want %v", obj["type"], tt.wantType)
			}
		})
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("op", []float64{1, 2, 3}); err != nil {
		t.Errorf("unexpected error for finite values: %v", err)
	}
	err := CheckNumericalStability("op", []float64{1, math.Inf(1), math.NaN()})
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Fatalf("expected NumericalInstabilityError, got %v", err)
	}
	if err := CheckScalar("op", math.NaN()); err == nil {
		t.Error("expected error for NaN scalar")
	}
}
