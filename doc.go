// Package noisegen adds calibrated Gaussian noise to tabular numeric data.
//
// For a dataset of N rows and M columns, every column j receives independent
// draws from N(0, ratio * var_j), where var_j is the column's unbiased sample
// variance. The result is a perturbed copy whose noise level is proportional
// to each feature's own spread.
//
// # Packages
//
//   - vecops: length-checked element-wise vector arithmetic
//   - stats: per-column mean and sample variance
//   - noise: the multivariate noise source and the in-place injector
//   - preprocessing: a Fit/Transform adapter over gonum matrices
//   - dataset: headerless CSV input and output
//   - diagnostics and metrics: measure the noise that was actually added
//   - cmd/addnoise: the command-line tool
//
// # Quick Start
//
//	rows := [][]float64{{1, 10}, {2, 20}, {3, 30}}
//	if err := noise.AddNoise(rows, 0.1, noise.WithSeed(42)); err != nil {
//	    log.Fatal(err)
//	}
package noisegen
