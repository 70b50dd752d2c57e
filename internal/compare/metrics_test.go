package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeExactMatchIsZero(t *testing.T) {
	delta := []float64{0, 0, 0, 0}
	interpErr := []float64{0, 0, 0, 0}

	m, err := Compute(delta, interpErr, 3.5)
	require.NoError(t, err)

	assert.Zero(t, m.AbsErr)
	assert.Zero(t, m.AbsErrLB)
	assert.Zero(t, m.AbsErrRMS)
	assert.Zero(t, m.AbsErrRMSLB)
	assert.Zero(t, m.RelErr)
	assert.Zero(t, m.RelErrLB)
	assert.Zero(t, m.RelErrRMS)
	assert.Zero(t, m.RelErrRMSLB)
}

func TestComputeLowerBoundsNeverExceedRaw(t *testing.T) {
	delta := []float64{0.5, -1.2, 0.01, 3.0, -0.7}
	interpErr := []float64{0.1, 0.5, 0.2, 0.0, 1.0}

	m, err := Compute(delta, interpErr, 10)
	require.NoError(t, err)

	assert.LessOrEqual(t, m.AbsErrLB, m.AbsErr)
	assert.LessOrEqual(t, m.AbsErrRMSLB, m.AbsErrRMS)
	assert.LessOrEqual(t, m.RelErrLB, m.RelErr)
	assert.LessOrEqual(t, m.RelErrRMSLB, m.RelErrRMS)
}

func TestComputeRelativeErrorScaleInvariance(t *testing.T) {
	delta := []float64{0.5, -1.2, 0.3}
	interpErr := []float64{0.1, 0.2, 0.0}

	m1, err := Compute(delta, interpErr, 4.0)
	require.NoError(t, err)

	const k = 250.0
	scaledDelta := make([]float64, len(delta))
	scaledErr := make([]float64, len(interpErr))
	for i := range delta {
		scaledDelta[i] = delta[i] * k
		scaledErr[i] = interpErr[i] * k
	}
	m2, err := Compute(scaledDelta, scaledErr, 4.0*k)
	require.NoError(t, err)

	assert.InDelta(t, m1.RelErr, m2.RelErr, 1e-12)
	assert.InDelta(t, m1.RelErrLB, m2.RelErrLB, 1e-12)
	assert.InDelta(t, m1.RelErrRMS, m2.RelErrRMS, 1e-12)
	assert.InDelta(t, m1.RelErrRMSLB, m2.RelErrRMSLB, 1e-12)
}

func TestComputeZeroReferenceGuard(t *testing.T) {
	delta := []float64{1, -2, 3}
	interpErr := []float64{0, 0, 0}

	m, err := Compute(delta, interpErr, 0)
	require.NoError(t, err)

	assert.Positive(t, m.AbsErr)
	assert.Zero(t, m.RelErr)
	assert.Zero(t, m.RelErrLB)
	assert.Zero(t, m.RelErrRMS)
	assert.Zero(t, m.RelErrRMSLB)
	assert.False(t, m.RelErr != m.RelErr, "relerr must not be NaN")
}

func TestComputeDeflation(t *testing.T) {
	// |delta|=2 with bound 0.5 deflates to 1.5; bound larger than the
	// deviation clamps at zero.
	m, err := Compute([]float64{2, 0.1}, []float64{0.5, 0.4}, 1)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, m.AbsErr, 1e-12)
	assert.InDelta(t, 1.5, m.AbsErrLB, 1e-12)
}
