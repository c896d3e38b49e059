// Package diagnostics measures the noise that was actually injected into a
// dataset and compares it against the calibrated target variance.
package diagnostics

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/noisegen/core/parallel"
	"github.com/YuminosukeSato/noisegen/metrics"
	"github.com/YuminosukeSato/noisegen/pkg/errors"
)

// Columns are processed sequentially up to this count.
const parallelColumnThreshold = 4

// ColumnReport summarizes the injected noise of one column.
type ColumnReport struct {
	Column            int
	Mean              float64
	EmpiricalVariance float64
	TargetVariance    float64
}

// RelativeError is |empirical - target| / target, or the absolute difference
// when the target is zero.
func (r ColumnReport) RelativeError() float64 {
	diff := math.Abs(r.EmpiricalVariance - r.TargetVariance)
	if r.TargetVariance == 0 {
		return diff
	}
	return diff / r.TargetVariance
}

// Deltas returns after-before arranged by column: out[j][i] is the noise added
// to row i, column j.
func Deltas(before, after [][]float64) ([][]float64, error) {
	const op = "diagnostics.Deltas"
	if len(before) != len(after) {
		return nil, errors.NewShapeError(op, len(before), len(after))
	}
	if len(before) == 0 {
		return nil, errors.NewEmptyDatasetError(op)
	}

	cols := len(before[0])
	out := make([][]float64, cols)
	for j := range out {
		out[j] = make([]float64, len(before))
	}
	for i := range before {
		if len(before[i]) != cols {
			return nil, errors.AtRow(errors.NewShapeError(op, cols, len(before[i])), i)
		}
		if len(after[i]) != cols {
			return nil, errors.AtRow(errors.NewShapeError(op, cols, len(after[i])), i)
		}
		for j := 0; j < cols; j++ {
			out[j][i] = after[i][j] - before[i][j]
		}
	}
	return out, nil
}

// Summarize computes the mean and sample variance of each column of deltas.
func Summarize(deltas [][]float64, target []float64) ([]ColumnReport, error) {
	const op = "diagnostics.Summarize"
	if len(deltas) != len(target) {
		return nil, errors.NewShapeError(op, len(target), len(deltas))
	}
	for _, d := range deltas {
		if len(d) < 2 {
			return nil, errors.NewInsufficientRowsError(op, len(d))
		}
	}

	reports := make([]ColumnReport, len(deltas))
	parallel.ParallelizeWithThreshold(len(deltas), parallelColumnThreshold, func(start, end int) {
		for j := start; j < end; j++ {
			mean, variance := stat.MeanVariance(deltas[j], nil)
			reports[j] = ColumnReport{
				Column:            j,
				Mean:              mean,
				EmpiricalVariance: variance,
				TargetVariance:    target[j],
			}
		}
	})
	return reports, nil
}

// ColumnDistortion describes how far the noisy values of one column moved
// away from the original values.
type ColumnDistortion struct {
	Column int
	RMSE   float64
	MAE    float64
	// R2 is NaN when the original column is constant.
	R2 float64
}

// Compare measures the distortion of every column of after relative to before.
func Compare(before, after [][]float64) ([]ColumnDistortion, error) {
	const op = "diagnostics.Compare"
	orig, err := toDense(op, before)
	if err != nil {
		return nil, err
	}
	noisy, err := toDense(op, after)
	if err != nil {
		return nil, err
	}
	rows, cols := orig.Dims()
	noisyRows, noisyCols := noisy.Dims()
	if noisyRows != rows {
		return nil, errors.NewShapeError(op, rows, noisyRows)
	}
	if noisyCols != cols {
		return nil, errors.NewShapeError(op, cols, noisyCols)
	}

	out := make([]ColumnDistortion, cols)
	errs := make([]error, cols)
	parallel.ParallelizeWithThreshold(cols, parallelColumnThreshold, func(start, end int) {
		for j := start; j < end; j++ {
			out[j], errs[j] = compareColumn(j, orig, noisy)
		}
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func compareColumn(j int, orig, noisy *mat.Dense) (ColumnDistortion, error) {
	o := mat.NewVecDense(orig.RawMatrix().Rows, mat.Col(nil, j, orig))
	n := mat.NewVecDense(noisy.RawMatrix().Rows, mat.Col(nil, j, noisy))

	d := ColumnDistortion{Column: j}
	var err error
	if d.RMSE, err = metrics.RMSE(o, n); err != nil {
		return d, err
	}
	if d.MAE, err = metrics.MAE(o, n); err != nil {
		return d, err
	}
	d.R2, err = metrics.R2Score(o, n)
	if errors.Is(err, metrics.ErrZeroVariance) {
		d.R2, err = math.NaN(), nil
	}
	return d, err
}

func toDense(op string, rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.NewEmptyDatasetError(op)
	}
	cols := len(rows[0])
	m := mat.NewDense(len(rows), cols, nil)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.AtRow(errors.NewShapeError(op, cols, len(row)), i)
		}
		m.SetRow(i, row)
	}
	return m, nil
}

// PlotHistograms writes one PNG per column into dir showing the normalized
// histogram of injected noise with the target normal density overlaid.
// Columns whose noise has no spread are skipped. It returns the written paths.
func PlotHistograms(dir string, deltas [][]float64, target []float64, bins int) ([]string, error) {
	if len(deltas) != len(target) {
		return nil, errors.NewShapeError("diagnostics.PlotHistograms", len(target), len(deltas))
	}
	if bins < 1 {
		return nil, errors.NewValidationError("bins", "must be at least 1", bins)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create plot directory %s", dir)
	}

	var paths []string
	for j, d := range deltas {
		if len(d) == 0 || floats.Min(d) == floats.Max(d) {
			continue
		}

		p := plot.New()
		p.Title.Text = fmt.Sprintf("Injected noise, column %d", j)
		p.X.Label.Text = "noise"
		p.Y.Label.Text = "density"

		h, err := plotter.NewHist(plotter.Values(d), bins)
		if err != nil {
			return paths, errors.Wrapf(err, "histogram for column %d", j)
		}
		h.Normalize(1)
		p.Add(h)

		if target[j] > 0 {
			density := plotter.NewFunction(distuv.Normal{Mu: 0, Sigma: math.Sqrt(target[j])}.Prob)
			density.Width = vg.Points(1.5)
			p.Add(density)
		}

		path := filepath.Join(dir, fmt.Sprintf("noise_column_%d.png", j))
		if err := p.Save(5*vg.Inch, 4*vg.Inch, path); err != nil {
			return paths, errors.Wrapf(err, "failed to save %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
