package main

import (
	"io"
	"math"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/YuminosukeSato/noisegen/cmd/addnoise/config"
	"github.com/YuminosukeSato/noisegen/dataset"
	"github.com/YuminosukeSato/noisegen/diagnostics"
	"github.com/YuminosukeSato/noisegen/noise"
	"github.com/YuminosukeSato/noisegen/pkg/errors"
	"github.com/YuminosukeSato/noisegen/pkg/log"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "addnoise [flags] [INPUT]",
		Short: "Add column-calibrated Gaussian noise to a CSV dataset",
		Long: `Reads a numeric CSV dataset (no header), estimates the sample variance
of every column and adds zero-mean Gaussian noise whose variance is the
column variance times the amplitude ratio. Reads stdin when INPUT is
omitted or "-".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("input", args[0])
			}
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return errors.SafeExecute("addnoise", func() error {
				return run(cmd, cfg)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.Float64P("amplitude", "a", 0, "noise variance as a fraction of each column's variance (required)")
	flags.StringP("output", "o", "-", `output file, "-" for stdout`)
	flags.Uint64("seed", 0, "seed for reproducible noise")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", config.FormatJSON, "log format: json, zerolog, console")
	flags.Bool("progress", false, "show a progress bar on stderr")
	flags.Bool("report", false, "log empirical noise variance per column")
	flags.String("plot-dir", "", "write per-column noise histograms to this directory")
	flags.Int("bins", 40, "histogram bins for --plot-dir")

	cobra.CheckErr(v.BindPFlags(flags))
	return cmd
}

func newLogger(cfg *config.Config, w io.Writer) log.Logger {
	switch cfg.LogFormat {
	case config.FormatZerolog:
		return log.NewZerologLogger(w, cfg.Level(), false)
	case config.FormatConsole:
		return log.NewZerologLogger(w, cfg.Level(), true)
	default:
		return log.NewSlogLogger(w, cfg.Level())
	}
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	stderr := cmd.ErrOrStderr()
	logger := newLogger(cfg, stderr).With(log.ComponentKey, "addnoise")
	if cfg.Seeded {
		logger = logger.With(log.SeedKey, cfg.Seed)
	}
	log.SetDefault(logger)
	logger.Info("Starting", log.RatioKey, cfg.Ratio, log.InputKey, cfg.Input, log.OutputKey, cfg.Output)

	rows, err := readInput(cmd, cfg.Input)
	if err != nil {
		return err
	}
	logger.Debug("Dataset read", log.OperationKey, log.OperationRead, log.RowsKey, len(rows))

	var before [][]float64
	if cfg.Report || cfg.PlotDir != "" {
		before = dataset.Clone(rows)
	}

	opts := []noise.Option{noise.WithLogger(logger)}
	if cfg.Seeded {
		opts = append(opts, noise.WithSeed(cfg.Seed))
	}
	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.NewOptions(len(rows),
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("adding noise"),
			progressbar.OptionClearOnFinish(),
		)
		opts = append(opts, noise.WithProgress(func(done, _ int) {
			_ = bar.Set(done)
		}))
	}

	injector := noise.NewInjector(cfg.Ratio, opts...)
	if err := injector.Apply(rows); err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if err := writeOutput(cmd, cfg.Output, rows); err != nil {
		return err
	}
	logger.Debug("Dataset written", log.OperationKey, log.OperationWrite, log.OutputKey, cfg.Output)

	if before == nil {
		return nil
	}
	deltas, err := diagnostics.Deltas(before, rows)
	if err != nil {
		return err
	}
	target := injector.TargetVariance()

	if cfg.Report {
		reports, err := diagnostics.Summarize(deltas, target)
		if err != nil {
			return err
		}
		for _, r := range reports {
			logger.Info("Column noise",
				log.ColumnKey, r.Column,
				log.MeanKey, r.Mean,
				log.EmpiricalVarianceKey, r.EmpiricalVariance,
				log.TargetVarianceKey, r.TargetVariance,
			)
		}

		distortion, err := diagnostics.Compare(before, rows)
		if err != nil {
			return err
		}
		for _, d := range distortion {
			fields := []any{log.ColumnKey, d.Column, log.RMSEKey, d.RMSE, log.MAEKey, d.MAE}
			if !math.IsNaN(d.R2) {
				fields = append(fields, log.R2Key, d.R2)
			}
			logger.Info("Column distortion", fields...)
		}
	}

	if cfg.PlotDir != "" {
		paths, err := diagnostics.PlotHistograms(cfg.PlotDir, deltas, target, cfg.Bins)
		if err != nil {
			return err
		}
		for _, p := range paths {
			logger.Info("Histogram written", log.PathKey, p)
		}
	}
	return nil
}

func readInput(cmd *cobra.Command, path string) ([][]float64, error) {
	if path == "" || path == dataset.Stdin {
		return dataset.Read(cmd.InOrStdin())
	}
	return dataset.Load(path)
}

func writeOutput(cmd *cobra.Command, path string, rows [][]float64) (err error) {
	if path == "" || path == dataset.Stdin {
		return dataset.Write(cmd.OutOrStdout(), rows)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()
	return dataset.Write(f, rows)
}
