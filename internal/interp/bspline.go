package interp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Errors for spline construction.
var (
	// ErrLengthMismatch indicates sample coordinates and values of
	// different lengths.
	ErrLengthMismatch = errors.New("interp: coordinate and value lengths differ")

	// ErrNotMonotonic indicates sample coordinates that are not
	// strictly increasing.
	ErrNotMonotonic = errors.New("interp: coordinates must be strictly increasing")

	// ErrTooFewSamples indicates too few samples for the requested
	// spline degree.
	ErrTooFewSamples = errors.New("interp: too few samples")

	// ErrSingular indicates a collocation system that could not be
	// solved.
	ErrSingular = errors.New("interp: singular collocation system")
)

// Spline is a B-spline curve of the given degree over a clamped knot
// vector. len(knots) == len(coeffs) + degree + 1.
type Spline struct {
	degree int
	knots  []float64
	coeffs []float64
}

// notAKnot builds a clamped knot vector with not-a-knot interior
// placement for an odd degree: the first and last (degree+1)/2
// interior sites carry no knot, so the end polynomial pieces span two
// sample intervals.
func notAKnot(sites []float64, degree int) []float64 {
	n := len(sites)
	m := (degree + 1) / 2
	knots := make([]float64, 0, n+degree+1)
	for i := 0; i <= degree; i++ {
		knots = append(knots, sites[0])
	}
	knots = append(knots, sites[m:n-m]...)
	for i := 0; i <= degree; i++ {
		knots = append(knots, sites[n-1])
	}
	return knots
}

// Fit computes the interpolating B-spline of the given odd degree
// through (sites, values) with not-a-knot boundary conditions.
func Fit(sites, values []float64, degree int) (*Spline, error) {
	n := len(sites)
	if len(values) != n {
		return nil, fmt.Errorf("%w: %d sites, %d values", ErrLengthMismatch, n, len(values))
	}
	if n < degree+1 {
		return nil, fmt.Errorf("%w: need %d for degree %d, have %d", ErrTooFewSamples, degree+1, degree, n)
	}
	for i := 1; i < n; i++ {
		if sites[i] <= sites[i-1] {
			return nil, fmt.Errorf("%w: sites[%d]=%g, sites[%d]=%g", ErrNotMonotonic, i-1, sites[i-1], i, sites[i])
		}
	}

	s := &Spline{
		degree: degree,
		knots:  notAKnot(sites, degree),
		coeffs: make([]float64, n),
	}

	// Collocation matrix: row i holds the nonzero basis functions at
	// sites[i]. Dense is fine at the sample counts seen here.
	a := mat.NewDense(n, n, nil)
	for i, t := range sites {
		span := s.span(t)
		basis := s.basisFuns(span, t)
		for r, b := range basis {
			a.Set(i, span-degree+r, b)
		}
	}

	b := mat.NewVecDense(n, append([]float64(nil), values...))
	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	for i := range s.coeffs {
		s.coeffs[i] = c.AtVec(i)
	}
	return s, nil
}

// span returns the knot span index i with knots[i] <= t < knots[i+1],
// clamped so that evaluation outside the site range extends the end
// polynomial pieces.
func (s *Spline) span(t float64) int {
	lo, hi := s.degree, len(s.coeffs)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.knots[mid] <= t {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// basisFuns evaluates the degree+1 nonzero basis functions at t for
// the given span (Cox-de Boor recursion).
func (s *Spline) basisFuns(span int, t float64) []float64 {
	k := s.degree
	basis := make([]float64, k+1)
	left := make([]float64, k+1)
	right := make([]float64, k+1)
	basis[0] = 1
	for j := 1; j <= k; j++ {
		left[j] = t - s.knots[span+1-j]
		right[j] = s.knots[span+j] - t
		saved := 0.0
		for r := 0; r < j; r++ {
			den := right[r+1] + left[j-r]
			temp := 0.0
			if den != 0 {
				temp = basis[r] / den
			}
			basis[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		basis[j] = saved
	}
	return basis
}

// At evaluates the spline at t.
func (s *Spline) At(t float64) float64 {
	span := s.span(t)
	basis := s.basisFuns(span, t)
	sum := 0.0
	for r, b := range basis {
		sum += s.coeffs[span-s.degree+r] * b
	}
	return sum
}

// Derivative returns the analytic derivative, a spline of one degree
// lower over the interior knot vector.
func (s *Spline) Derivative() *Spline {
	if s.degree == 0 {
		return &Spline{degree: 0, knots: s.knots, coeffs: make([]float64, len(s.coeffs))}
	}
	k := s.degree
	coeffs := make([]float64, len(s.coeffs)-1)
	for j := range coeffs {
		den := s.knots[j+k+1] - s.knots[j+1]
		if den != 0 {
			coeffs[j] = float64(k) * (s.coeffs[j+1] - s.coeffs[j]) / den
		}
	}
	return &Spline{
		degree: k - 1,
		knots:  s.knots[1 : len(s.knots)-1],
		coeffs: coeffs,
	}
}
