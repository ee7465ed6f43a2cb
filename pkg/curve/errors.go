package curve

import "errors"

var (
	// ErrAlignment is returned when the two price histories cannot be
	// reconciled to a common trading-date index
	ErrAlignment = errors.New("price series cannot be aligned")

	// ErrInsufficientData is returned when a statistic's trailing window
	// has fewer observations than its configured lookback
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerateVariance is returned when the trailing standard deviation
	// is zero, leaving the z-score undefined
	ErrDegenerateVariance = errors.New("degenerate variance")

	// ErrUndefinedStatistics is returned when the position monitor is invoked
	// while the underlying signal-space values are zero or undefined
	ErrUndefinedStatistics = errors.New("undefined statistics")
)
