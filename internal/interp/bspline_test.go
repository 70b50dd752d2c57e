package interp

import (
	"errors"
	"math"
	"testing"
)

func TestFitErrors(t *testing.T) {
	tests := []struct {
		name    string
		sites   []float64
		values  []float64
		degree  int
		wantErr error
	}{
		{"length mismatch", []float64{0, 1, 2, 3}, []float64{0, 1, 2}, 3, ErrLengthMismatch},
		{"too few for cubic", []float64{0, 1, 2}, []float64{0, 1, 2}, 3, ErrTooFewSamples},
		{"too few for quintic", []float64{0, 1, 2, 3, 4}, []float64{0, 1, 2, 3, 4}, 5, ErrTooFewSamples},
		{"not increasing", []float64{0, 2, 1, 3}, []float64{0, 1, 2, 3}, 3, ErrNotMonotonic},
		{"duplicate site", []float64{0, 1, 1, 3}, []float64{0, 1, 2, 3}, 3, ErrNotMonotonic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.sites, tt.values, tt.degree)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Fit() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCubicReproducesCubicPolynomial(t *testing.T) {
	f := func(t float64) float64 { return 2*t*t*t - 3*t*t + 0.5*t - 1 }

	sites := []float64{0, 0.7, 1.1, 2.0, 2.4, 3.3, 4.0}
	values := make([]float64, len(sites))
	for i, s := range sites {
		values[i] = f(s)
	}

	s, err := Fit(sites, values, 3)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	for tq := 0.0; tq <= 4.0; tq += 0.13 {
		got := s.At(tq)
		if math.Abs(got-f(tq)) > 1e-9 {
			t.Errorf("At(%v) = %v, want %v", tq, got, f(tq))
		}
	}
}

func TestQuinticFourthDerivative(t *testing.T) {
	// f(t) = t^4 has constant 4th derivative 24; a quintic spline
	// interpolant reproduces f exactly, so four analytic derivatives
	// recover the constant.
	f := func(t float64) float64 { return t * t * t * t }

	sites := []float64{0, 0.5, 1.2, 1.9, 2.5, 3.1, 3.8, 4.5}
	values := make([]float64, len(sites))
	for i, s := range sites {
		values[i] = f(s)
	}

	s, err := Fit(sites, values, 5)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	for tq := 0.0; tq <= 4.5; tq += 0.3 {
		if got := s.At(tq); math.Abs(got-f(tq)) > 1e-8 {
			t.Errorf("At(%v) = %v, want %v", tq, got, f(tq))
		}
	}

	d4 := s.Derivative().Derivative().Derivative().Derivative()
	for _, tq := range sites {
		if got := d4.At(tq); math.Abs(got-24) > 1e-6 {
			t.Errorf("d4.At(%v) = %v, want 24", tq, got)
		}
	}
}

func TestDerivativeOfQuadratic(t *testing.T) {
	f := func(t float64) float64 { return t * t }

	sites := []float64{0, 1, 2, 3, 4, 5}
	values := make([]float64, len(sites))
	for i, s := range sites {
		values[i] = f(s)
	}

	s, err := Fit(sites, values, 3)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	d := s.Derivative()
	for tq := 0.0; tq <= 5.0; tq += 0.5 {
		if got := d.At(tq); math.Abs(got-2*tq) > 1e-9 {
			t.Errorf("d.At(%v) = %v, want %v", tq, got, 2*tq)
		}
	}
}

func TestExtrapolationExtendsEndPiece(t *testing.T) {
	// Outside the site range the end polynomial piece continues, so a
	// cubic polynomial keeps being reproduced slightly past the ends.
	f := func(t float64) float64 { return t*t*t - t }

	sites := []float64{0, 1, 2, 3, 4, 5}
	values := make([]float64, len(sites))
	for i, s := range sites {
		values[i] = f(s)
	}

	s, err := Fit(sites, values, 3)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	for _, tq := range []float64{-0.5, 5.5} {
		if got := s.At(tq); math.Abs(got-f(tq)) > 1e-8 {
			t.Errorf("At(%v) = %v, want %v", tq, got, f(tq))
		}
	}
}
