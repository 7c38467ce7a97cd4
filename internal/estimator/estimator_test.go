package estimator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat/distuv"

	"solar-profit/internal/model"
)

func TestGaussianDensityPeak(t *testing.T) {
	for _, dev := range []float64{0.1, 1, 2, 7.5} {
		want := 1 / (dev * math.Sqrt(2*math.Pi))
		assert.InDelta(t, want, GaussianDensity(3, 3, dev), 1e-15, "dev=%v", dev)
	}
}

func TestGaussianDensitySymmetric(t *testing.T) {
	for _, d := range []float64{0, 0.25, 1, 3.3, 12} {
		left := GaussianDensity(10-d, 10, 2)
		right := GaussianDensity(10+d, 10, 2)
		assert.InDelta(t, left, right, 1e-15, "d=%v", d)
	}
}

func TestGaussianDensityMatchesGonum(t *testing.T) {
	n := distuv.Normal{Mu: 10, Sigma: 2}
	for _, x := range []float64{4, 8.5, 10, 11, 16} {
		assert.InDelta(t, n.Prob(x), GaussianDensity(x, 10, 2), 1e-12, "x=%v", x)
	}
}

func TestGaussianDensityZeroDeviation(t *testing.T) {
	assert.True(t, math.IsNaN(GaussianDensity(5, 5, 0)))
	assert.True(t, math.IsNaN(GaussianDensity(4, 5, 0)))
}

func TestIntegrateTrapezoidalCoverage(t *testing.T) {
	cases := []struct {
		k    float64
		want float64
	}{
		{1, 0.682689492137},
		{2, 0.954499736104},
		{3, 0.997300203937},
	}
	for _, tc := range cases {
		got := IntegrateTrapezoidal(5-tc.k*2, 5+tc.k*2, DefaultIntervals, 5, 2)
		assert.InDelta(t, tc.want, got, 1e-6, "k=%v", tc.k)
	}
}

func TestIntegrateTrapezoidalMatchesGonumTrapezoidal(t *testing.T) {
	const n = 1000
	start, end := 9.0, 11.0
	step := (end - start) / n
	xs := make([]float64, n+1)
	fs := make([]float64, n+1)
	for i := range xs {
		xs[i] = start + float64(i)*step
		fs[i] = GaussianDensity(xs[i], 10, 2)
	}
	assert.InDelta(t, integrate.Trapezoidal(xs, fs), IntegrateTrapezoidal(start, end, n, 10, 2), 1e-12)
}

func TestIntegrateTrapezoidalEdgeCases(t *testing.T) {
	// Zero-width window is 0 even with a degenerate deviation.
	assert.Equal(t, 0.0, IntegrateTrapezoidal(5, 5, 1000, 5, 2))
	assert.Equal(t, 0.0, IntegrateTrapezoidal(5, 5, 1000, 5, 0))
	assert.Equal(t, 0.0, IntegrateTrapezoidal(0, 1, 0, 0, 1))

	forward := IntegrateTrapezoidal(9, 11, 1000, 10, 1)
	inverted := IntegrateTrapezoidal(11, 9, 1000, 10, 1)
	assert.InDelta(t, -forward, inverted, 1e-12)
	assert.Less(t, inverted, 0.0)

	assert.True(t, math.IsNaN(IntegrateTrapezoidal(9, 11, 1000, 10, 0)))
}

func TestEarningsAndPenalties(t *testing.T) {
	assert.InDelta(t, 10*24*0.5*2*1000.0, Earnings(10, 0.5, 2), 1e-9)
	assert.InDelta(t, 10*24*0.25*2*1000.0, Penalties(10, 0.75, 2), 1e-9)
	assert.InDelta(t, Earnings(3, 1, 4.2), Earnings(3, 0.3, 4.2)+Penalties(3, 0.3, 4.2), 1e-9)
}

func TestComputeReportScenario(t *testing.T) {
	in := model.Inputs{Power: 10, InitialDeviation: 2, ImprovedDeviation: 1, RatePerKWh: 2}
	r := ComputeReport(in)

	assert.Equal(t, Window{Start: 9, End: 11}, r.Window)
	assert.InDelta(t, 0.382924922548, r.EfficiencyBefore, 1e-6)
	assert.InDelta(t, 0.682689492137, r.EfficiencyAfter, 1e-6)

	wantBefore := distuv.Normal{Mu: 10, Sigma: 2}
	assert.InDelta(t, wantBefore.CDF(11)-wantBefore.CDF(9), r.EfficiencyBefore, 1e-6)

	assert.InDelta(t, 183.8040, r.EarningsBefore, 1e-3)
	assert.InDelta(t, 296.1960, r.PenaltiesBefore, 1e-3)
	assert.InDelta(t, -112.3920, r.NetBefore, 1e-3)
	assert.InDelta(t, 327.6910, r.EarningsAfter, 1e-3)
	assert.InDelta(t, 152.3090, r.PenaltiesAfter, 1e-3)
	assert.InDelta(t, 175.3820, r.NetAfter, 1e-3)

	assert.InDelta(t, r.EarningsBefore-r.PenaltiesBefore, r.NetBefore, 1e-9)
	assert.InDelta(t, r.EarningsAfter-r.PenaltiesAfter, r.NetAfter, 1e-9)
	assert.Greater(t, r.Gain(), 0.0)
	assert.True(t, r.Finite())
}

func TestComputeReportWindowUsesImprovedDeviation(t *testing.T) {
	// Widening only the initial spread must not move the window.
	a := ComputeReport(model.Inputs{Power: 50, InitialDeviation: 5, ImprovedDeviation: 0.5, RatePerKWh: 1})
	b := ComputeReport(model.Inputs{Power: 50, InitialDeviation: 20, ImprovedDeviation: 0.5, RatePerKWh: 1})
	assert.Equal(t, a.Window, b.Window)
	assert.Equal(t, a.EfficiencyAfter, b.EfficiencyAfter)
	assert.Greater(t, a.EfficiencyBefore, b.EfficiencyBefore)
}

func TestComputeReportDeterministic(t *testing.T) {
	in := model.Inputs{Power: 7.3, InitialDeviation: 1.1, ImprovedDeviation: 0.4, RatePerKWh: 3.9}
	assert.Equal(t, ComputeReport(in), ComputeReport(in))
}

func TestComputeReportZeroImprovedDeviation(t *testing.T) {
	r := ComputeReport(model.Inputs{Power: 10, InitialDeviation: 2, ImprovedDeviation: 0, RatePerKWh: 2})
	assert.Equal(t, 0.0, r.EfficiencyBefore)
	assert.Equal(t, 0.0, r.EfficiencyAfter)
	assert.Equal(t, 0.0, r.EarningsBefore)
	assert.InDelta(t, 480.0, r.PenaltiesBefore, 1e-9)
	assert.InDelta(t, -480.0, r.NetAfter, 1e-9)
	assert.True(t, r.Finite())
}

func TestComputeReportZeroInitialDeviation(t *testing.T) {
	in := model.Inputs{Power: 10, InitialDeviation: 0, ImprovedDeviation: 1, RatePerKWh: 2}
	r := ComputeReport(in)
	assert.True(t, math.IsNaN(r.EfficiencyBefore))
	assert.False(t, r.Finite())
	assert.InDelta(t, 0.6827, r.EfficiencyAfter, 1e-4)
}

func TestComputeReportAllZero(t *testing.T) {
	r := ComputeReport(model.Inputs{})
	assert.Equal(t, Report{}, r)
}

func TestComputeReportNegativeImprovedDeviation(t *testing.T) {
	r := ComputeReport(model.Inputs{Power: 10, InitialDeviation: 2, ImprovedDeviation: -1, RatePerKWh: 2})
	assert.Equal(t, Window{Start: 11, End: 9}, r.Window)
	assert.Less(t, r.EfficiencyBefore, 0.0)
}

func TestEstimatorIntervals(t *testing.T) {
	in := model.Inputs{Power: 10, InitialDeviation: 2, ImprovedDeviation: 1, RatePerKWh: 2}
	assert.Equal(t, ComputeReport(in), Estimator{}.Compute(in))

	coarse := Estimator{Intervals: 10}.Compute(in)
	assert.NotEqual(t, ComputeReport(in).EfficiencyAfter, coarse.EfficiencyAfter)
	assert.InDelta(t, ComputeReport(in).EfficiencyAfter, coarse.EfficiencyAfter, 1e-2)
}

func TestCheckDomain(t *testing.T) {
	require.NoError(t, CheckDomain(model.Inputs{Power: 10, InitialDeviation: 2, ImprovedDeviation: 1}))
	require.NoError(t, CheckDomain(model.Inputs{Power: 10, InitialDeviation: 2}))
	require.NoError(t, CheckDomain(model.Inputs{}))

	err := CheckDomain(model.Inputs{Power: 10, ImprovedDeviation: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrZeroDeviation))
	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "initial_deviation", de.Field)
	assert.Equal(t, "initial_deviation: deviation must be nonzero", err.Error())

	err = CheckDomain(model.Inputs{Power: 10, InitialDeviation: 2, ImprovedDeviation: -1})
	assert.True(t, errors.Is(err, ErrNegativeDeviation))

	err = CheckDomain(model.Inputs{Power: 10, InitialDeviation: -2, ImprovedDeviation: 1})
	assert.True(t, errors.Is(err, ErrNegativeDeviation))
}
