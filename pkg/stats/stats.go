// Package stats provides the rolling statistics primitives used by the curve engine
package stats

import (
	"math"
)

// Mean returns the arithmetic mean of data, or NaN for an empty slice.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// SampleVariance returns the sample (n-1 denominator) variance of data.
// Returns NaN for fewer than two observations.
func SampleVariance(data []float64) float64 {
	if len(data) < 2 {
		return math.NaN()
	}

	mean := Mean(data)
	var ss float64
	for _, v := range data {
		d := v - mean
		ss += d * d
	}
	return ss / float64(len(data)-1)
}

// SampleStdDev returns the sample standard deviation of data.
func SampleStdDev(data []float64) float64 {
	return math.Sqrt(SampleVariance(data))
}

// ZScore computes z = (x - mean) / std.
// Returns NaN when std is zero, NaN, or negative; callers decide whether a
// zero std is an error condition.
func ZScore(value, mean, std float64) float64 {
	if std <= 0 || math.IsNaN(std) {
		return math.NaN()
	}
	return (value - mean) / std
}

// RollingMean returns the trailing simple moving average of data over the
// given period, aligned to data. Indices with fewer than period observations
// behind them are NaN.
func RollingMean(data []float64, period int) []float64 {
	out := make([]float64, len(data))
	if period <= 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}

	var sum float64
	for i := range data {
		sum += data[i]
		if i >= period {
			sum -= data[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// RollingSampleStdDev returns the trailing sample standard deviation of data
// over the given period, aligned to data. NaN until the window fills.
//
// Recomputed per window from the raw values rather than via running sums of
// squares: the windows here are small (<=200) and the subtraction form loses
// precision on near-constant series, which this engine must detect exactly.
func RollingSampleStdDev(data []float64, period int) []float64 {
	out := make([]float64, len(data))
	for i := range data {
		if period < 2 || i < period-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = SampleStdDev(data[i-period+1 : i+1])
	}
	return out
}

// Diff returns the lagged difference data[i] - data[i-lag], aligned to data.
// NaN where either endpoint is missing or itself NaN.
func Diff(data []float64, lag int) []float64 {
	out := make([]float64, len(data))
	for i := range data {
		if lag <= 0 || i < lag {
			out[i] = math.NaN()
			continue
		}
		out[i] = data[i] - data[i-lag]
	}
	return out
}
