package curve

import (
	"math"
	"time"

	"github.com/yourusername/curve-screener/pkg/stats"
)

// SpreadPoint is the full statistical state of the curve at one trading date.
// Statistics whose trailing window has not yet filled are NaN.
type SpreadPoint struct {
	Date        time.Time
	Curve       float64
	TrueRange   float64 // |curve[i] - curve[i-1]|, NaN at i=0
	ATR         float64 // trailing mean of TrueRange over ATRWindow
	Mean        float64 // trailing mean of Curve over ZLookback
	StdDev      float64 // trailing sample stdev of Curve over ZLookback
	Z           float64 // (Curve - Mean) / StdDev
	Trend       float64 // trailing mean of Curve over TrendWindow
	TrendSlope  float64 // Trend[i] - Trend[i-SlopeLookback]
	GrindRegime bool
}

// Defined reports whether v is a usable statistic value.
func Defined(v float64) bool { return !math.IsNaN(v) }

// ComputePoints derives the rolling statistics and regime flag for every
// aligned date. All statistics are causal: point i depends only on
// observations [0, i], so recomputing over any prefix of the history yields
// the same values at the same index as the full history does.
func ComputePoints(dates []time.Time, curve []float64, cfg Config) []SpreadPoint {
	n := len(curve)

	tr := make([]float64, n)
	for i := range curve {
		if i == 0 {
			tr[i] = math.NaN()
			continue
		}
		tr[i] = math.Abs(curve[i] - curve[i-1])
	}

	// ATR is the trailing simple mean of true range; the first true range
	// only exists at i=1, so the window fills at i = ATRWindow.
	atr := make([]float64, n)
	var trSum float64
	for i := range tr {
		if i == 0 {
			atr[i] = math.NaN()
			continue
		}
		trSum += tr[i]
		if i > cfg.ATRWindow {
			trSum -= tr[i-cfg.ATRWindow]
		}
		if i >= cfg.ATRWindow {
			atr[i] = trSum / float64(cfg.ATRWindow)
		} else {
			atr[i] = math.NaN()
		}
	}

	mean := stats.RollingMean(curve, cfg.ZLookback)
	std := stats.RollingSampleStdDev(curve, cfg.ZLookback)
	trend := stats.RollingMean(curve, cfg.TrendWindow)
	slope := stats.Diff(trend, cfg.SlopeLookback)

	points := make([]SpreadPoint, n)
	for i := range points {
		p := SpreadPoint{
			Date:       dates[i],
			Curve:      curve[i],
			TrueRange:  tr[i],
			ATR:        atr[i],
			Mean:       mean[i],
			StdDev:     std[i],
			Z:          stats.ZScore(curve[i], mean[i], std[i]),
			Trend:      trend[i],
			TrendSlope: slope[i],
		}
		p.GrindRegime = isGrindRegime(p, cfg)
		points[i] = p
	}
	return points
}
