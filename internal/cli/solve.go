// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/apcover/instance"
	"github.com/katalvlaran/apcover/setcover"
)

// errNoCosts is returned by solve --weighted on an instance without costs.
var errNoCosts = errors.New("instance has no costs; generate it with --cost-min/--cost-max or add a costs list")

func newSolveCommand(a *app) *cobra.Command {
	var (
		file     string
		restrict bool
		maxPicks int
		weighted bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Choose access points for an instance file",
		Long:  `Read a YAML instance and run the greedy cover. Partial coverage is reported, not treated as a failure.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inst, err := readInstance(cmd, file)
			if err != nil {
				return err
			}

			opts := setcover.DefaultOptions()
			opts.RestrictToUniverse = restrict
			opts.MaxPicks = maxPicks
			opts.OnPick = func(step, index, gain int) {
				a.log.WithFields(logrus.Fields{"step": step, "ap": index, "gain": gain}).Debug("pick")
			}

			var (
				res  setcover.Result[int]
				cost float64
			)
			if weighted {
				if !inst.Weighted() {
					return errNoCosts
				}
				wres, err := setcover.SolveWeighted(inst.Rooms, inst.Coverage, inst.Costs, opts)
				if err != nil {
					return err
				}
				res, cost = wres.Result, wres.Cost
			} else {
				res, err = setcover.Solve(inst.Rooms, inst.Coverage, opts)
				if err != nil {
					return err
				}
			}

			if restrict {
				err = setcover.VerifyRestricted(inst.Rooms, inst.Coverage, res)
			} else {
				err = setcover.Verify(inst.Coverage, res)
			}
			if err != nil {
				return fmt.Errorf("result failed verification: %w", err)
			}

			writeResult(cmd.OutOrStdout(), inst, res, weighted, cost)

			entry := a.log.WithFields(logrus.Fields{
				"rooms":  inst.Rooms.Len(),
				"aps":    len(inst.Coverage),
				"chosen": len(res.Chosen),
			})
			if res.Complete(inst.Rooms) {
				entry.Info("all rooms covered")
			} else {
				entry.WithField("uncovered", res.Uncovered(inst.Rooms).Len()).Warn("partial coverage")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "Instance file (- for stdin)")
	cmd.Flags().BoolVar(&restrict, "restrict", false, "Ignore AP coverage outside the declared rooms")
	cmd.Flags().IntVar(&maxPicks, "max-picks", 0, "Stop after this many access points (0: no limit)")
	cmd.Flags().BoolVar(&weighted, "weighted", false, "Minimize total AP cost using the instance costs")

	return cmd
}

func readInstance(cmd *cobra.Command, file string) (instance.Instance, error) {
	if file == "" || file == "-" {
		return instance.Decode(cmd.InOrStdin())
	}

	f, err := os.Open(file)
	if err != nil {
		return instance.Instance{}, fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	return instance.Decode(f)
}

func writeResult(w io.Writer, inst instance.Instance, res setcover.Result[int], weighted bool, cost float64) {
	inRooms := res.Covered.Intersect(inst.Rooms).Len()

	fmt.Fprintf(w, "chosen: %v\n", res.Chosen)
	fmt.Fprintf(w, "covered: %d/%d rooms\n", inRooms, inst.Rooms.Len())
	fmt.Fprintf(w, "uncovered: %v\n", setcover.Sorted(res.Uncovered(inst.Rooms)))
	if weighted {
		fmt.Fprintf(w, "cost: %.4f\n", cost)
	}
}
