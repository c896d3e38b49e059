// Command addnoise adds calibrated Gaussian noise to a numeric CSV dataset.
//
// Every column j receives independent draws from N(0, ratio * var_j), where
// var_j is the sample variance of that column.
//
//	addnoise -a 0.1 data.csv > noisy.csv
//	cat data.csv | addnoise -a 0.1 --seed 42 --report
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/noisegen/pkg/log"
)

func main() {
	os.Exit(execute(newRootCmd()))
}

// execute runs cmd and returns the process exit code. Failures are logged
// through log.Default, which run replaces with the configured backend once
// the configuration has loaded.
func execute(cmd *cobra.Command) int {
	log.SetupLogger(cmd.ErrOrStderr(), log.LevelInfo)
	if err := cmd.Execute(); err != nil {
		log.Default().Error("addnoise failed", err)
		return 1
	}
	return 0
}
