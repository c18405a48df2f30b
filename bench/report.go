// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// row is the serialized form of a Sample; times are in seconds so plotting
// tools can consume them directly.
type row struct {
	Rooms       int     `yaml:"rooms"`
	APs         int     `yaml:"access_points"`
	Trials      int     `yaml:"trials"`
	MeanSeconds float64 `yaml:"mean_seconds"`
	MeanPicks   float64 `yaml:"mean_picks"`
	FullCovers  int     `yaml:"full_covers"`
}

func toRow(s Sample) row {
	return row{
		Rooms:       s.Rooms,
		APs:         s.APs,
		Trials:      s.Trials,
		MeanSeconds: s.Mean.Seconds(),
		MeanPicks:   s.MeanPicks,
		FullCovers:  s.FullCovers,
	}
}

var csvHeader = []string{"rooms", "access_points", "trials", "mean_seconds", "mean_picks", "full_covers"}

// WriteTable renders samples as an aligned text table.
func WriteTable(w io.Writer, samples []Sample) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROOMS\tAPS\tTRIALS\tMEAN\tPICKS\tFULL")
	for _, s := range samples {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.6fs\t%.2f\t%d/%d\n",
			s.Rooms, s.APs, s.Trials, s.Mean.Seconds(), s.MeanPicks, s.FullCovers, s.Trials)
	}

	return tw.Flush()
}

// WriteCSV renders samples as CSV with a header row.
func WriteCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range samples {
		r := toRow(s)
		rec := []string{
			strconv.Itoa(r.Rooms),
			strconv.Itoa(r.APs),
			strconv.Itoa(r.Trials),
			strconv.FormatFloat(r.MeanSeconds, 'f', -1, 64),
			strconv.FormatFloat(r.MeanPicks, 'f', -1, 64),
			strconv.Itoa(r.FullCovers),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteYAML renders samples as a YAML list under the given experiment name.
func WriteYAML(w io.Writer, experiment string, samples []Sample) error {
	rows := make([]row, len(samples))
	for i, s := range samples {
		rows[i] = toRow(s)
	}
	doc := struct {
		Experiment string `yaml:"experiment"`
		Samples    []row  `yaml:"samples"`
	}{experiment, rows}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}

	return enc.Close()
}
