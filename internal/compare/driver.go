package compare

import (
	"math"
	"slices"
	"sort"
	"strings"

	"simcmp/internal/dataset"
)

// MetricSuffixes lists the scalar metric keys written per variable, in
// output order.
var MetricSuffixes = []string{
	"abserr", "abserr.lb", "abserr.rms", "abserr.rms.lb",
	"relerr", "relerr.lb", "relerr.rms", "relerr.rms.lb",
}

// Run compares every candidate variable of input against reference and
// assembles the output dataset: per variable, <name>.delta and
// <name>.interperr arrays plus the eight scalar metrics. The caller
// persists the result. Variables are processed in sorted name order.
func Run(input, reference *dataset.Dataset, opts Options) (*dataset.Dataset, error) {
	candidates := candidateVars(input, reference)

	if len(opts.Vars) > 0 {
		keep := make([]string, 0, len(opts.Vars))
		var missing []string
		for _, name := range opts.Vars {
			if slices.Contains(candidates, name) {
				keep = append(keep, name)
			} else {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			opts.warnf("requested variables not comparable: %s", strings.Join(missing, ", "))
		}
		sort.Strings(keep)
		candidates = keep
	}

	out := dataset.NewDataset()
	for _, name := range candidates {
		v := input.Vars[name]
		r := reference.Vars[name]

		al := alignVariable(name, v, r, opts)
		if al.skip {
			continue
		}

		m, err := Compute(al.delta.Data, al.interpErr, maxAbs(al.ref))
		if err != nil {
			return nil, err
		}
		writeVariable(out, name, al, m)
	}
	return out, nil
}

// candidateVars returns the sorted names present in both datasets with
// equal rank.
func candidateVars(input, reference *dataset.Dataset) []string {
	var names []string
	for name, v := range input.Vars {
		r, ok := reference.Vars[name]
		if ok && v.Rank() == r.Rank() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// writeVariable inserts the ten derived quantities for one variable.
// Coordinate merging is first-writer-wins via AddVar.
func writeVariable(out *dataset.Dataset, name string, al *aligned, m *Metrics) {
	out.AddVar(name+".delta", al.delta)

	interpErr := &dataset.LabeledArray{
		Name:   name + ".interperr",
		Dims:   al.delta.Dims,
		Shape:  al.delta.Shape,
		Data:   al.interpErr,
		Coords: al.delta.Coords,
	}
	out.AddVar(name+".interperr", interpErr)

	scalars := []float64{
		m.AbsErr, m.AbsErrLB, m.AbsErrRMS, m.AbsErrRMSLB,
		m.RelErr, m.RelErrLB, m.RelErrRMS, m.RelErrRMSLB,
	}
	for i, suffix := range MetricSuffixes {
		key := name + "." + suffix
		out.AddVar(key, dataset.Scalar(key, scalars[i]))
	}
}

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}
