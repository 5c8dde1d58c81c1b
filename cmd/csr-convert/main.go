// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the csr-convert CLI. It scales a
// measurement read from the CSR blueprint to a dome of a custom diameter.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dratasich/r2d2/internal/convert"
	"github.com/dratasich/r2d2/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// usageError marks a malformed invocation. It exits with status 2.
type usageError struct {
	cmd *cobra.Command
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// usageArgs wraps a positional argument validator so its failures are
// reported as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &usageError{cmd: cmd, err: err}
		}
		return nil
	}
}

func measurementArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("requires exactly one measurement, received %d", len(args))
	}
	return nil
}

// newRootCmd builds the command tree with its own settings so each
// invocation starts from the defaults.
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetDefault("diameter", types.DefaultDiameter)
	v.SetDefault("metric", false)
	v.SetDefault("verbose", false)

	rootCmd := &cobra.Command{
		Use:   "csr-convert [flags] <measurement>",
		Short: "Convert CSR blueprint measurements to a custom dome diameter",
		Long: `csr-convert scales a measurement taken from the CSR blueprint to a custom
build. The CSR dome is 461.264 mm across; every measurement is scaled by the
ratio of the target dome diameter to that value.

The measurement is read as inches unless --metric is given. The result is
printed in millimeters with two decimals.`,
		Example: `  csr-convert 10
  csr-convert -d 400 --metric 125.5
  csr-convert -m -3`,
		Args:          usageArgs(measurementArg),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogging(cmd.ErrOrStderr(), v.GetBool("verbose"))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseNumber(args[0])
			if err != nil {
				return &usageError{cmd: cmd, err: fmt.Errorf("invalid measurement %q: must be a number", args[0])}
			}
			return convert.Run(cmd.OutOrStdout(), types.CSR, loadConfig(v), m)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	diameter := floatValue(types.DefaultDiameter)
	rootCmd.PersistentFlags().VarP(&diameter, "diameter", "d", "target dome diameter in mm")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log conversion details to stderr")
	rootCmd.Flags().BoolP("metric", "m", false, "measurement is given in mm (default is inch)")

	// Lookups cannot fail for flags registered above.
	_ = v.BindPFlag("diameter", rootCmd.PersistentFlags().Lookup("diameter"))
	_ = v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag("metric", rootCmd.Flags().Lookup("metric"))

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{cmd: cmd, err: err}
	})

	rootCmd.AddCommand(newReferenceCmd(v), newVersionCmd())
	return rootCmd
}

// loadConfig reads the conversion settings resolved by v.
func loadConfig(v *viper.Viper) types.ConversionConfig {
	return types.ConversionConfig{
		Diameter: v.GetFloat64("diameter"),
		Metric:   v.GetBool("metric"),
	}
}

// initLogging installs the default logger. Debug records are only emitted
// in verbose mode.
func initLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// run executes the CLI with args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(normalizeArgs(args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "Error: %v\n", ue.err)
		fmt.Fprint(stderr, ue.cmd.UsageString())
		return 2
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
