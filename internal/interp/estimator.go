// Package interp provides cubic-spline interpolation of 1-D samples
// together with a localized upper bound on the interpolation error.
//
// The bound follows the classical sup-norm estimate for cubic spline
// interpolation of a C⁴ function,
//
//	|f(t) - s(t)| <= (5/384) · max|f⁗| · h⁴,
//
// with h the knot spacing. The 4th derivative is not available from
// the cubic itself, so it is estimated from a quintic interpolating
// spline through the same samples, differentiated analytically four
// times. Both max|f⁗| and h are localized with sliding-window maxima
// over neighboring knots instead of a single global maximum.
package interp

import (
	"fmt"
	"math"
	"sort"
)

// MinSamples is the smallest reference sample count for which
// interpolation is offered; the quintic 4th-derivative estimate needs
// six points.
const MinSamples = 6

const (
	// errConstant is the cubic spline sup-norm error coefficient.
	errConstant = 5.0 / 384.0

	// endDerivFactor inflates the 4th-derivative estimate at the two
	// boundary knots, where not-a-knot conditions control curvature
	// more loosely. Empirical.
	endDerivFactor = 3.0
)

// Interpolate fits an interpolating cubic spline through (t, x) and
// evaluates it at tnew, returning the interpolated values and a
// pointwise error bound of the same length. t must be strictly
// increasing with at least MinSamples entries.
func Interpolate(t, x, tnew []float64) (xnew, bound []float64, err error) {
	if len(t) < MinSamples {
		return nil, nil, fmt.Errorf("%w: need %d samples, have %d", ErrTooFewSamples, MinSamples, len(t))
	}

	cubic, err := Fit(t, x, 3)
	if err != nil {
		return nil, nil, err
	}
	quintic, err := Fit(t, x, 5)
	if err != nil {
		return nil, nil, err
	}

	d4 := quintic.Derivative().Derivative().Derivative().Derivative()

	n := len(t)
	deriv := make([]float64, n)
	for i, ti := range t {
		deriv[i] = math.Abs(d4.At(ti))
	}
	deriv[0] *= endDerivFactor
	deriv[n-1] *= endDerivFactor

	// Localize: window of four knots biased toward later knots for
	// the derivative, three gaps for the spacing.
	derivMax := windowMax(deriv, 1, 2)
	gaps := make([]float64, n-1)
	for i := range gaps {
		gaps[i] = t[i+1] - t[i]
	}
	gapMax := windowMax(gaps, 1, 1)

	xnew = make([]float64, len(tnew))
	bound = make([]float64, len(tnew))
	for p, tq := range tnew {
		xnew[p] = cubic.At(tq)

		// Both windowed sequences act as previous-value step
		// functions over the knots, flat beyond the range.
		i := stepIndex(t, tq)
		h := gapMax[min(i, len(gapMax)-1)]
		bound[p] = errConstant * h * h * h * h * derivMax[i]
	}
	return xnew, bound, nil
}

// windowMax returns, for each index i, the maximum of v over the
// clamped window [i-back, i+fwd].
func windowMax(v []float64, back, fwd int) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		lo := i - back
		if lo < 0 {
			lo = 0
		}
		hi := i + fwd
		if hi > len(v)-1 {
			hi = len(v) - 1
		}
		m := v[lo]
		for j := lo + 1; j <= hi; j++ {
			if v[j] > m {
				m = v[j]
			}
		}
		out[i] = m
	}
	return out
}

// stepIndex returns the index of the last knot at or before tq,
// clamped to [0, len(t)-1].
func stepIndex(t []float64, tq float64) int {
	i := sort.SearchFloat64s(t, tq)
	if i < len(t) && t[i] == tq {
		return i
	}
	if i == 0 {
		return 0
	}
	return i - 1
}
