package compare

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Metrics holds the derived error quantities for one compared
// variable. The two slices keep the matched region's length; the
// scalars reduce it.
type Metrics struct {
	Delta     []float64
	InterpErr []float64

	AbsErr      float64
	AbsErrLB    float64
	AbsErrRMS   float64
	AbsErrRMSLB float64

	RelErr      float64
	RelErrLB    float64
	RelErrRMS   float64
	RelErrRMSLB float64
}

// Compute reduces an aligned difference and its pointwise
// interpolation error bound to the error metrics. The lower-bound
// variants deflate |delta| by the interpolation uncertainty before
// reduction, so they never exceed their raw counterparts. refAbsMax is
// max|r| over the matched region; when it is zero every relative
// metric is exactly zero.
func Compute(delta, interpErr []float64, refAbsMax float64) (*Metrics, error) {
	n := len(delta)
	absDelta := make([]float64, n)
	deltaLB := make([]float64, n)
	sq := make([]float64, n)
	sqLB := make([]float64, n)
	for i, d := range delta {
		absDelta[i] = math.Abs(d)
		lb := absDelta[i] - interpErr[i]
		if lb < 0 {
			lb = 0
		}
		deltaLB[i] = lb
		sq[i] = d * d
		sqLB[i] = lb * lb
	}

	m := &Metrics{Delta: delta, InterpErr: interpErr}

	var err error
	if m.AbsErr, err = stats.Max(absDelta); err != nil {
		return nil, err
	}
	if m.AbsErrLB, err = stats.Max(deltaLB); err != nil {
		return nil, err
	}
	meanSq, err := stats.Mean(sq)
	if err != nil {
		return nil, err
	}
	meanSqLB, err := stats.Mean(sqLB)
	if err != nil {
		return nil, err
	}
	m.AbsErrRMS = math.Sqrt(meanSq)
	m.AbsErrRMSLB = math.Sqrt(meanSqLB)

	if refAbsMax > 0 {
		m.RelErr = m.AbsErr / refAbsMax
		m.RelErrLB = m.AbsErrLB / refAbsMax
		m.RelErrRMS = m.AbsErrRMS / refAbsMax
		m.RelErrRMSLB = m.AbsErrRMSLB / refAbsMax
	}
	return m, nil
}
