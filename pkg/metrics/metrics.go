// Package metrics exposes screener counters and gauges for Prometheus
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "screener_evaluations_total", Help: "Signal evaluations by outcome"},
		[]string{"signal"},
	)
	FeedErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "screener_feed_errors_total", Help: "Failed bar fetches"},
	)
	EvaluationErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "screener_evaluation_errors_total", Help: "Evaluations rejected by the engine"},
	)
	LatestZ = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "screener_latest_z", Help: "Z-score of the latest evaluation"},
	)
	LatestCurve = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "screener_latest_curve", Help: "Synthetic curve value of the latest evaluation"},
	)
	LatestATR = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "screener_latest_atr", Help: "ATR of the latest evaluation"},
	)
)

func init() {
	prometheus.MustRegister(
		EvaluationsTotal,
		FeedErrorsTotal,
		EvaluationErrorsTotal,
		LatestZ,
		LatestCurve,
		LatestATR,
	)
}

// Handler returns the scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
