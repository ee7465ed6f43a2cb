package curve

import (
	"math"
	"testing"
	"time"
)

// makeDates builds n consecutive calendar dates starting at testStart.
func makeDates(n int) []time.Time {
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = testStart.AddDate(0, 0, i)
	}
	return dates
}

// syntheticCurve produces a deterministic wavy series with nonzero variance
// in every window.
func syntheticCurve(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = -198.0 + 2.5*math.Sin(float64(i)*0.37) + 0.01*float64(i)
	}
	return out
}

func TestComputePoints_TrueRange(t *testing.T) {
	cfg := DefaultConfig()
	c := []float64{10, 12, 11.5}
	pts := ComputePoints(makeDates(3), c, cfg)

	if !math.IsNaN(pts[0].TrueRange) {
		t.Errorf("Expected NaN true range at i=0, got %v", pts[0].TrueRange)
	}
	if math.Abs(pts[1].TrueRange-2.0) > 1e-12 {
		t.Errorf("Expected true range 2.0, got %v", pts[1].TrueRange)
	}
	if math.Abs(pts[2].TrueRange-0.5) > 1e-12 {
		t.Errorf("Expected true range 0.5, got %v", pts[2].TrueRange)
	}
}

func TestComputePoints_ATRWarmup(t *testing.T) {
	cfg := DefaultConfig()
	n := cfg.ATRWindow + 5
	c := make([]float64, n)
	for i := range c {
		c[i] = float64(i) * 0.25 // constant daily step of 0.25
	}
	pts := ComputePoints(makeDates(n), c, cfg)

	// The first true range appears at i=1, so the window fills at
	// i = ATRWindow.
	if !math.IsNaN(pts[cfg.ATRWindow-1].ATR) {
		t.Errorf("Expected NaN ATR at i=%d, got %v", cfg.ATRWindow-1, pts[cfg.ATRWindow-1].ATR)
	}
	if math.Abs(pts[cfg.ATRWindow].ATR-0.25) > 1e-12 {
		t.Errorf("Expected ATR 0.25 at i=%d, got %v", cfg.ATRWindow, pts[cfg.ATRWindow].ATR)
	}
	if math.Abs(pts[n-1].ATR-0.25) > 1e-12 {
		t.Errorf("Expected ATR 0.25 at last index, got %v", pts[n-1].ATR)
	}
}

func TestComputePoints_ZScoreWarmup(t *testing.T) {
	cfg := DefaultConfig()
	n := cfg.ZLookback + 10
	pts := ComputePoints(makeDates(n), syntheticCurve(n), cfg)

	// z is strictly undefined for i < ZLookback - 1 observations
	for i := 0; i < cfg.ZLookback-1; i++ {
		if Defined(pts[i].Z) {
			t.Fatalf("Expected undefined z at i=%d, got %v", i, pts[i].Z)
		}
	}
	for i := cfg.ZLookback - 1; i < n; i++ {
		if !Defined(pts[i].Z) {
			t.Fatalf("Expected defined z at i=%d", i)
		}
	}
}

func TestComputePoints_ZScoreValue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ZLookback = 5
	c := []float64{1, 2, 3, 4, 10}
	pts := ComputePoints(makeDates(5), c, cfg)

	mean := 4.0
	std := math.Sqrt((9 + 4 + 1 + 0 + 36) / 4.0)
	want := (10 - mean) / std

	if math.Abs(pts[4].Z-want) > 1e-12 {
		t.Errorf("Expected z %v, got %v", want, pts[4].Z)
	}
	if math.Abs(pts[4].Mean-mean) > 1e-12 {
		t.Errorf("Expected mean %v, got %v", mean, pts[4].Mean)
	}
	if math.Abs(pts[4].StdDev-std) > 1e-12 {
		t.Errorf("Expected stdev %v, got %v", std, pts[4].StdDev)
	}
}

func TestComputePoints_TrendSlopeWarmup(t *testing.T) {
	cfg := DefaultConfig()
	n := cfg.TrendWindow + cfg.SlopeLookback + 3
	pts := ComputePoints(makeDates(n), syntheticCurve(n), cfg)

	firstTrend := cfg.TrendWindow - 1
	if Defined(pts[firstTrend-1].Trend) {
		t.Errorf("Expected undefined trend at i=%d", firstTrend-1)
	}
	if !Defined(pts[firstTrend].Trend) {
		t.Errorf("Expected defined trend at i=%d", firstTrend)
	}

	// Slope needs the trend defined at both endpoints
	firstSlope := firstTrend + cfg.SlopeLookback
	if Defined(pts[firstSlope-1].TrendSlope) {
		t.Errorf("Expected undefined slope at i=%d", firstSlope-1)
	}
	if !Defined(pts[firstSlope].TrendSlope) {
		t.Errorf("Expected defined slope at i=%d", firstSlope)
	}
}

func TestComputePoints_DegenerateVariance(t *testing.T) {
	cfg := DefaultConfig()
	c := make([]float64, cfg.ZLookback)
	for i := range c {
		c[i] = 10.0
	}
	pts := ComputePoints(makeDates(len(c)), c, cfg)

	last := pts[len(pts)-1]
	if last.StdDev != 0 {
		t.Fatalf("Expected zero stdev for constant curve, got %v", last.StdDev)
	}
	if Defined(last.Z) {
		t.Fatalf("Expected undefined z for zero stdev, got %v", last.Z)
	}
}

// TestComputePoints_PrefixEquivalence checks that computing statistics over a
// growing prefix of the history equals recomputing from scratch over the full
// extended history: the statistics are causal.
func TestComputePoints_PrefixEquivalence(t *testing.T) {
	cfg := DefaultConfig()
	n := cfg.TrendWindow + cfg.SlopeLookback + 40
	c := syntheticCurve(n)
	dates := makeDates(n)
	full := ComputePoints(dates, c, cfg)

	for _, i := range []int{0, 1, cfg.ATRWindow, cfg.ZLookback - 1, cfg.ZLookback, cfg.TrendWindow + cfg.SlopeLookback, n - 1} {
		prefix := ComputePoints(dates[:i+1], c[:i+1], cfg)
		got := prefix[len(prefix)-1]
		want := full[i]

		if !floatEqualNaN(got.Z, want.Z, 1e-9) ||
			!floatEqualNaN(got.ATR, want.ATR, 1e-9) ||
			!floatEqualNaN(got.Trend, want.Trend, 1e-9) ||
			!floatEqualNaN(got.TrendSlope, want.TrendSlope, 1e-9) ||
			got.GrindRegime != want.GrindRegime {
			t.Errorf("Prefix recomputation diverged at i=%d: got %+v, want %+v", i, got, want)
		}
	}
}

// floatEqualNaN treats two NaNs as equal.
func floatEqualNaN(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) <= tol
}

func BenchmarkComputePoints(b *testing.B) {
	cfg := DefaultConfig()
	n := 260
	c := syntheticCurve(n)
	dates := makeDates(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ComputePoints(dates, c, cfg)
	}
}
