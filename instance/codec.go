// SPDX-License-Identifier: MIT

package instance

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/apcover/setcover"
)

const (
	methodEncode = "Encode"
	methodDecode = "Decode"
)

// document is the on-disk YAML shape of an Instance.
type document struct {
	Rooms        []int     `yaml:"rooms,flow"`
	AccessPoints [][]int   `yaml:"access_points,flow"`
	Costs        []float64 `yaml:"costs,omitempty,flow"`
}

// Encode writes inst to w as YAML. Rooms and per-AP coverage are written in
// ascending order so equal instances encode identically.
func Encode(w io.Writer, inst Instance) error {
	if inst.Costs != nil && len(inst.Costs) != len(inst.Coverage) {
		return fmt.Errorf("%s: %d costs for %d access points: %w",
			methodEncode, len(inst.Costs), len(inst.Coverage), ErrMalformedInstance)
	}

	doc := document{
		Rooms:        setcover.Sorted(inst.Rooms),
		AccessPoints: make([][]int, len(inst.Coverage)),
		Costs:        inst.Costs,
	}
	for j, c := range inst.Coverage {
		doc.AccessPoints[j] = setcover.Sorted(c)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("%s: %w", methodEncode, err)
	}

	return enc.Close()
}

// Decode reads one YAML instance from r. Unknown keys, an empty document and
// a costs list whose length differs from access_points are rejected with
// ErrMalformedInstance. Duplicate room ids collapse.
func Decode(r io.Reader) (Instance, error) {
	var doc document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Instance{}, fmt.Errorf("%s: empty document: %w", methodDecode, ErrMalformedInstance)
		}
		return Instance{}, fmt.Errorf("%s: %v: %w", methodDecode, err, ErrMalformedInstance)
	}
	if doc.Costs != nil && len(doc.Costs) != len(doc.AccessPoints) {
		return Instance{}, fmt.Errorf("%s: %d costs for %d access points: %w",
			methodDecode, len(doc.Costs), len(doc.AccessPoints), ErrMalformedInstance)
	}

	inst := Instance{
		Rooms:    setcover.NewSet(doc.Rooms...),
		Coverage: make([]setcover.Set[int], len(doc.AccessPoints)),
		Costs:    doc.Costs,
	}
	for j, ap := range doc.AccessPoints {
		inst.Coverage[j] = setcover.NewSet(ap...)
	}

	return inst, nil
}
