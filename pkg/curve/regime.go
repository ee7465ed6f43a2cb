package curve

// isGrindRegime flags the low-volatility, mildly-trending state that makes a
// short-side reversion trade unfavorable: the curve sits above its long-run
// trend, realized volatility is low, and the trend is rising but only mildly.
// Any undefined input statistic leaves the flag false; the regime is a veto
// condition, not a signal.
func isGrindRegime(p SpreadPoint, cfg Config) bool {
	if !Defined(p.ATR) || !Defined(p.Trend) || !Defined(p.TrendSlope) {
		return false
	}
	return p.Curve > p.Trend &&
		p.ATR < cfg.ATRThreshold &&
		p.TrendSlope > 0 &&
		p.TrendSlope < cfg.SlopeCap
}
