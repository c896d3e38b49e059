package noise

import (
	"context"
	"time"

	"github.com/YuminosukeSato/noisegen/pkg/errors"
	"github.com/YuminosukeSato/noisegen/pkg/log"
	"github.com/YuminosukeSato/noisegen/stats"
	"github.com/YuminosukeSato/noisegen/vecops"
)

// AddNoise adds independent Gaussian noise to every row of rows, in place.
// Column j receives noise with variance ratio times the column's sample variance.
//
// It fails with ErrEmptyDataset, ErrInsufficientRows, ErrShapeMismatch or
// ErrInvalidVariance; rows is left unmodified when an error is returned.
func AddNoise(rows [][]float64, ratio float64, opts ...Option) error {
	return NewInjector(ratio, opts...).Apply(rows)
}

// Injector applies calibrated noise to datasets and remembers the statistics of
// the last dataset it processed.
//
// With WithSeed every Apply replays the same noise sequence; with WithRandSource
// successive calls continue drawing from the shared source.
type Injector struct {
	ratio float64
	opts  *options

	stats  stats.ColumnStats
	target []float64
}

// NewInjector returns an Injector for the given noise-to-signal power ratio.
func NewInjector(ratio float64, opts ...Option) *Injector {
	return &Injector{ratio: ratio, opts: newOptions(opts)}
}

// Ratio returns the configured noise-to-signal power ratio.
func (in *Injector) Ratio() float64 {
	return in.ratio
}

// Stats returns the column statistics computed by the last successful Apply.
func (in *Injector) Stats() stats.ColumnStats {
	return in.stats
}

// TargetVariance returns the per-column noise variance used by the last
// successful Apply.
func (in *Injector) TargetVariance() []float64 {
	return append([]float64(nil), in.target...)
}

// Apply mutates rows in place. Row order and row lengths are preserved.
func (in *Injector) Apply(rows [][]float64) error {
	start := time.Now()
	logger := in.opts.logger.With(log.OperationKey, log.OperationAddNoise)

	cs, err := stats.MeanVariance(rows)
	if err != nil {
		return err
	}
	if logger.Enabled(context.Background(), log.LevelDebug) {
		logger.Debug("Column statistics estimated",
			log.RowsKey, len(rows),
			log.ColumnsKey, cs.Columns(),
			log.MeanKey, cs.Mean,
			log.VarianceKey, cs.Variance,
		)
	}

	// MeanVariance returns fresh slices; scale a copy so Stats keeps the raw variance.
	scaled := append([]float64(nil), cs.Variance...)
	vecops.ScalarMultiply(scaled, in.ratio)

	src, err := newSource(scaled, in.opts.source())
	if err != nil {
		return errors.Wrapf(err, "noise ratio %g", in.ratio)
	}

	noise := make([]float64, src.Columns())
	for i, row := range rows {
		// shapes were validated by MeanVariance, so neither call can fail
		_ = src.SampleInto(noise)
		_ = vecops.Add(row, noise)
		if in.opts.progress != nil {
			in.opts.progress(i+1, len(rows))
		}
	}

	in.stats = cs
	in.target = scaled

	logger.Info("Noise injected",
		log.RowsKey, len(rows),
		log.ColumnsKey, cs.Columns(),
		log.RatioKey, in.ratio,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}
