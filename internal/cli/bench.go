// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/apcover/bench"
	"github.com/katalvlaran/apcover/config"
)

const (
	experimentAll   = "all"
	experimentVaryM = "vary_m"
	experimentVaryN = "vary_n"
)

func newBenchCommand(a *app) *cobra.Command {
	var (
		format     string
		experiment string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the greedy solver on random instances",
		Long: `Run the timing experiments: rooms fixed while the AP count grows (vary_m),
and the room count grows for a fixed AP count (vary_n). Settings come from
the config file, APCOVER_* environment variables and built-in defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}

			// Config picks the logger unless the flags were given.
			flags := cmd.Flags()
			if !flags.Changed("log-level") && !flags.Changed("log-format") {
				log, err := newLogger(cfg.Logger.Level, cfg.Logger.Format, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				a.log = log
			}

			write, err := reportWriter(format)
			if err != nil {
				return err
			}

			e := cfg.Experiment
			h, err := bench.New(
				bench.WithSeed(e.Seed),
				bench.WithTrials(e.Trials),
				bench.WithCoverageProb(e.CoverageProb),
				bench.WithLogger(a.log),
			)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if experiment == experimentAll || experiment == experimentVaryM {
				a.log.WithFields(logrus.Fields{"rooms": e.VaryM.Rooms, "aps": e.VaryM.AccessPoints}).Info("experiment vary_m")
				samples, err := h.Grid(ctx, e.VaryM.Rooms, e.VaryM.AccessPoints)
				if err != nil {
					return err
				}
				if err := write(out, experimentVaryM, samples); err != nil {
					return err
				}
			}
			if experiment == experimentAll || experiment == experimentVaryN {
				a.log.WithFields(logrus.Fields{"rooms": e.VaryN.Rooms, "aps": e.VaryN.AccessPoints}).Info("experiment vary_n")
				samples, err := h.VaryN(ctx, e.VaryN.Rooms, e.VaryN.AccessPoints)
				if err != nil {
					return err
				}
				if err := write(out, experimentVaryN, samples); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Report format (table, csv, yaml)")
	cmd.Flags().StringVar(&experiment, "experiment", experimentAll, "Experiment to run (all, vary_m, vary_n)")
	cmd.PreRunE = func(*cobra.Command, []string) error {
		switch experiment {
		case experimentAll, experimentVaryM, experimentVaryN:
			return nil
		default:
			return fmt.Errorf("unknown experiment %q", experiment)
		}
	}

	return cmd
}

type reportFunc func(w io.Writer, experiment string, samples []bench.Sample) error

func reportWriter(format string) (reportFunc, error) {
	switch format {
	case "table":
		return func(w io.Writer, experiment string, samples []bench.Sample) error {
			fmt.Fprintf(w, "== %s ==\n", experiment)
			return bench.WriteTable(w, samples)
		}, nil
	case "csv":
		return func(w io.Writer, _ string, samples []bench.Sample) error {
			return bench.WriteCSV(w, samples)
		}, nil
	case "yaml":
		return bench.WriteYAML, nil
	default:
		return nil, fmt.Errorf("unknown report format %q (want table, csv or yaml)", format)
	}
}
