package compare

import (
	"slices"
	"sort"

	"simcmp/internal/dataset"
	"simcmp/internal/interp"
)

// aligned is the result of matching one input variable against its
// reference: the elementwise difference over the matched region, the
// aligned reference values, and the pointwise interpolation error
// bound (all zero when no interpolation occurred).
type aligned struct {
	delta     *dataset.LabeledArray
	ref       []float64
	interpErr []float64
	skip      bool
}

// interpDimFor returns the dimension to interpolate over: the
// lexicographically smallest requested dimension present in dims, or
// "" when none applies. Lexicographic choice makes runs reproducible
// when several requested dimensions match.
func interpDimFor(dims, requested []string) string {
	matches := make([]string, 0, len(requested))
	for _, d := range requested {
		if slices.Contains(dims, d) {
			matches = append(matches, d)
		}
	}
	if len(matches) == 0 {
		return ""
	}
	sort.Strings(matches)
	return matches[0]
}

// alignVariable matches input variable v against reference r,
// interpolating the reference when requested and possible, and falling
// back to exact-index pointwise comparison otherwise.
func alignVariable(name string, v, r *dataset.LabeledArray, opts Options) *aligned {
	if !slices.Equal(v.Dims, r.Dims) {
		opts.warnf("skipping %s: dimensions %v do not match reference %v", name, v.Dims, r.Dims)
		return &aligned{skip: true}
	}

	interpDim := interpDimFor(v.Dims, opts.Interpolate)
	if interpDim != "" && v.Rank() > 1 {
		opts.warnf("%s: interpolation over %q skipped, variable has %d dimensions", name, interpDim, v.Rank())
		interpDim = ""
	}

	if interpDim != "" && r.Rank() == 1 && r.Dims[0] == interpDim {
		rt := r.Coords[interpDim]
		if len(rt) < interp.MinSamples {
			opts.warnf("%s: reference has %d samples on %q, need %d for interpolation; comparing pointwise",
				name, len(rt), interpDim, interp.MinSamples)
		} else {
			vt := v.Coords[interpDim]
			xnew, bound, err := interp.Interpolate(rt, r.Data, vt)
			if err != nil {
				opts.warnf("%s: interpolation over %q failed (%v); comparing pointwise", name, interpDim, err)
			} else {
				delta := make([]float64, len(v.Data))
				for i := range delta {
					delta[i] = v.Data[i] - xnew[i]
				}
				return &aligned{
					delta: &dataset.LabeledArray{
						Name:   name,
						Dims:   append([]string(nil), v.Dims...),
						Shape:  append([]int(nil), v.Shape...),
						Data:   delta,
						Coords: map[string][]float64{interpDim: v.Coords[interpDim]},
					},
					ref:       xnew,
					interpErr: bound,
				}
			}
		}
	}

	return alignPointwise(name, v, r, opts)
}

// alignPointwise compares by exact index over the intersecting index
// range on every dimension. Coordinate-value mismatches are reported
// but do not block the comparison.
func alignPointwise(name string, v, r *dataset.LabeledArray, opts Options) *aligned {
	for _, dim := range v.Dims {
		if !floatsEqual(v.Coords[dim], r.Coords[dim]) {
			opts.warnf("%s: coordinates differ on %q; comparing by index", name, dim)
		}
	}

	limits := make([]int, v.Rank())
	for i := range limits {
		limits[i] = min(v.Shape[i], r.Shape[i])
	}
	vs := v.Slice(limits)
	rs := r.Slice(limits)

	if vs.Size() == 0 {
		opts.warnf("skipping %s: no overlapping samples", name)
		return &aligned{skip: true}
	}

	delta := make([]float64, len(vs.Data))
	for i := range delta {
		delta[i] = vs.Data[i] - rs.Data[i]
	}
	vs.Data = delta

	return &aligned{
		delta:     vs,
		ref:       rs.Data,
		interpErr: make([]float64, len(delta)),
	}
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
