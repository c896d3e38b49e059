// Package log defines standard attribute keys for noise injection runs.
//
// Keys follow a hierarchical naming convention (e.g. "data.rows", "noise.ratio")
// so log records from the CLI and the library can be filtered uniformly.

package log

// Operation Context
const (
	// OperationKey names the operation being performed.
	// Standard values: see the Operation* constants below.
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is logging.
	// Examples: "noise", "preprocessing", "cli"
	ComponentKey = "ml.component"
)

// Data Shape
const (
	// RowsKey is the number of rows in the dataset.
	RowsKey = "data.rows"

	// ColumnsKey is the number of columns in the dataset.
	ColumnsKey = "data.columns"

	// ColumnKey identifies a single column index.
	ColumnKey = "data.column"
)

// Noise Parameters and Statistics
const (
	// RatioKey records the noise-to-signal power ratio.
	RatioKey = "noise.ratio"

	// SeedKey records the random seed when a run is reproducible.
	SeedKey = "noise.seed"

	// MeanKey records per-column means.
	MeanKey = "stats.mean"

	// VarianceKey records per-column sample variances.
	VarianceKey = "stats.variance"

	// TargetVarianceKey records the scaled variance used to calibrate noise.
	TargetVarianceKey = "noise.target_variance"

	// EmpiricalVarianceKey records the measured variance of injected noise.
	EmpiricalVarianceKey = "noise.empirical_variance"
)

// Distortion between original and noisy columns
const (
	RMSEKey = "distortion.rmse"
	MAEKey  = "distortion.mae"
	R2Key   = "distortion.r2"
)

// Performance and I/O
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// InputKey is the input path ("-" for stdin).
	InputKey = "io.input"

	// OutputKey is the output path ("-" for stdout).
	OutputKey = "io.output"

	// PathKey is a file written as a side product, such as a histogram.
	PathKey = "io.path"
)

// Standard attribute values.
const (
	OperationAddNoise = "add_noise"
	OperationRead     = "read"
	OperationWrite    = "write"
)
