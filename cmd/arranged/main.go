// Command arranged reports the first even-chance disc arrangement whose
// total disc count exceeds a threshold.
//
// Usage:
//
//	arranged [threshold]
//	arranged --threshold 1000000000000 --verbose
//
// The threshold defaults to 10^12 and may also come from ARRANGED_THRESHOLD.
// The blue disc count goes to stdout; everything else goes to stderr.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/mihiryerande/arranged"
)

func main() {
	cmd, err := newRootCmd()
	if err == nil {
		err = cmd.Execute()
	}
	if err != nil {
		slog.Error("arranged failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, error) {
	cfg, err := arranged.LoadConfig()
	if err != nil {
		return nil, err
	}

	var verbose bool
	cmd := &cobra.Command{
		Use:   "arranged [threshold]",
		Short: "Find the first 50/50 two-blue-disc arrangement past a threshold",
		Long: "Finds the first box of blue and red discs with more than the given\n" +
			"total disc count for which drawing two blue discs without replacement\n" +
			"has probability exactly 1/2, and prints its blue disc count.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Threshold = args[0]
			}
			if verbose {
				cfg.Verbose = true
			}
			return run(cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Threshold, "threshold", cfg.Threshold,
		"total disc count to search past (decimal, arbitrary size)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"log every intermediate arrangement")
	return cmd, nil
}

func run(cmd *cobra.Command, cfg arranged.Config) error {
	slog.SetDefault(slog.New(
		tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
			Level:      cfg.SlogLevel(),
			TimeFormat: "15:04:05",
		}),
	))

	threshold, err := cfg.ThresholdInt()
	if err != nil {
		return err
	}

	var observe func(arranged.Arrangement)
	if cfg.Verbose {
		observe = func(a arranged.Arrangement) {
			slog.Info("arrangement below threshold",
				"total", a.Total().String(),
				"blue", a.Blue().String(),
				"red", a.Red().String())
		}
	}

	a, err := arranged.WalkPast(threshold, observe)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		slog.Info("first arrangement past threshold",
			"threshold", threshold.String(),
			"total", a.Total().String(),
			"blue", a.Blue().String(),
			"red", a.Red().String())
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Blue())
	return nil
}
