// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/apcover/instance"
)

func newGenerateCommand(a *app) *cobra.Command {
	var (
		rooms   int
		aps     int
		prob    float64
		seed    int64
		costMin float64
		costMax float64
		output  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random AP placement instance",
		Long:  `Sample an instance where every access point covers every room independently with probability p, and write it as YAML.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []instance.Option{instance.WithSeed(seed)}
			if costMin != 0 || costMax != 0 {
				if err := instance.CheckCostRange(costMin, costMax); err != nil {
					return fmt.Errorf("invalid --cost-min/--cost-max: %w", err)
				}
				opts = append(opts, instance.WithCostRange(costMin, costMax))
			}

			inst, err := instance.Random(rooms, aps, prob, opts...)
			if err != nil {
				return err
			}

			if output != "" && output != "-" {
				err = writeInstance(output, inst)
			} else {
				err = instance.Encode(cmd.OutOrStdout(), inst)
			}
			if err != nil {
				return err
			}

			a.log.WithFields(logrus.Fields{
				"rooms":    rooms,
				"aps":      aps,
				"p":        prob,
				"seed":     seed,
				"weighted": inst.Weighted(),
				"output":   output,
			}).Info("instance generated")
			return nil
		},
	}

	cmd.Flags().IntVarP(&rooms, "rooms", "n", 200, "Number of rooms")
	cmd.Flags().IntVarP(&aps, "aps", "m", 50, "Number of candidate access points")
	cmd.Flags().Float64VarP(&prob, "coverage-prob", "p", instance.DefaultCoverageProb, "Probability that an AP covers a given room")
	cmd.Flags().Int64Var(&seed, "seed", instance.DefaultSeed, "Random seed (0 uses the default seed)")
	cmd.Flags().Float64Var(&costMin, "cost-min", 0, "Lower bound of per-AP cost (enables costs)")
	cmd.Flags().Float64Var(&costMax, "cost-max", 0, "Upper bound of per-AP cost")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

// writeInstance encodes inst into a new file at path. The close error is
// returned since it may carry a failed flush.
func writeInstance(path string, inst instance.Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := instance.Encode(f, inst); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
