// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

var (
	// verbose enables debug logging.
	verbose bool
	// colDelim is the column delimiter of the matrix wire format.
	colDelim string

	// logger writes structured diagnostics to stderr so stdout stays clean
	// for the computed result.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "matcalc",
	})

	// rootCmd is the base command when matcalc is called without subcommands.
	rootCmd = &cobra.Command{
		Use:   "matcalc",
		Short: "Arithmetic over linal's matrix wire format",
		Long: `matcalc parses matrices and vectors from the linal text format —
columns separated by ";" (configurable), elements by spaces — applies an
operation, and prints the result.

Examples:
  matcalc add "4 3 2;2 2 -1" "1 1 1;1 1 1"
  matcalc det "2 0;0 3"
  matcalc vec dot "1 2 3" "4 -5 6"`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&colDelim, "delim", ";", "column delimiter for the matrix wire format")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(detCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(vecCmd)
}

// Execute runs the CLI through fang for styled help/errors and signal-aware
// cancellation.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
