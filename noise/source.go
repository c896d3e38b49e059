// Package noise injects calibrated, column-independent Gaussian noise into
// tabular data.
//
// A Source holds one zero-mean normal distribution per column. AddNoise and
// Injector estimate each column's sample variance, scale it by a noise-to-signal
// power ratio and add one fresh draw per column to every row, in place.
package noise

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/noisegen/pkg/errors"
)

// Source draws one noise vector per call, one independent sample per column.
// All columns share a single random source owned by the Source.
// A Source is not safe for concurrent use.
type Source struct {
	dists []distuv.Normal
}

// NewSource builds a Source whose column j is N(0, variance[j]).
// It fails with ErrInvalidVariance if any variance is negative, NaN or infinite.
func NewSource(variance []float64, opts ...Option) (*Source, error) {
	return newSource(variance, newOptions(opts).source())
}

func newSource(variance []float64, src rand.Source) (*Source, error) {
	dists := make([]distuv.Normal, len(variance))
	for j, v := range variance {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.NewVarianceError("noise.NewSource", j, v)
		}
		dists[j] = distuv.Normal{Mu: 0, Sigma: math.Sqrt(v), Src: src}
	}
	return &Source{dists: dists}, nil
}

// Columns returns the length of the vectors produced by Sample.
func (s *Source) Columns() int {
	return len(s.dists)
}

// StdDev returns a copy of the per-column standard deviations.
func (s *Source) StdDev() []float64 {
	out := make([]float64, len(s.dists))
	for j, d := range s.dists {
		out[j] = d.Sigma
	}
	return out
}

// Sample returns a new vector holding one independent draw per column.
func (s *Source) Sample() []float64 {
	out := make([]float64, len(s.dists))
	s.fill(out)
	return out
}

// SampleInto writes one draw per column into dst without allocating.
func (s *Source) SampleInto(dst []float64) error {
	if len(dst) != len(s.dists) {
		return errors.NewShapeError("noise.Source.SampleInto", len(s.dists), len(dst))
	}
	s.fill(dst)
	return nil
}

func (s *Source) fill(dst []float64) {
	for j := range s.dists {
		dst[j] = s.dists[j].Rand()
	}
}
