package curve

import "fmt"

// Signal is the discrete outcome of one entry-screener evaluation.
type Signal string

const (
	// SignalNoTrade means the z-score sits inside the entry band
	SignalNoTrade Signal = "no_trade"

	// SignalLongFlattener means the curve is stretched below its mean:
	// buy the flattener (long leg A, short leg B)
	SignalLongFlattener Signal = "long_flattener"

	// SignalShortSteepener means the curve is stretched above its mean:
	// sell the steepener (short leg A, long leg B)
	SignalShortSteepener Signal = "short_steepener"

	// SignalShortSteepenerBlocked means the z-score qualifies for a short
	// steepener but the grind regime vetoes it
	SignalShortSteepenerBlocked Signal = "short_steepener_blocked"
)

// EvaluateSignal classifies the latest spread point. Decision order, first
// match wins:
//
//	z < -entry               -> LongFlattener
//	z > +entry, grind regime -> ShortSteepenerBlocked
//	z > +entry               -> ShortSteepener
//	otherwise                -> NoTrade
//
// The grind veto applies only to the short side: the regime it detects
// (curve above trend, low volatility, mild uptrend) is a headwind for a
// reversion-down trade specifically.
//
// Returns ErrInsufficientData while the z window has not filled and
// ErrDegenerateVariance when the window is full but the trailing standard
// deviation is zero.
func EvaluateSignal(p SpreadPoint, cfg Config) (Signal, error) {
	if !Defined(p.Z) {
		if Defined(p.Mean) && p.StdDev == 0 {
			return "", fmt.Errorf("%w: stdev is zero over %d-day lookback", ErrDegenerateVariance, cfg.ZLookback)
		}
		return "", fmt.Errorf("%w: z-score needs %d observations", ErrInsufficientData, cfg.ZLookback)
	}

	switch {
	case p.Z < -cfg.EntryZ:
		return SignalLongFlattener, nil
	case p.Z > cfg.EntryZ && p.GrindRegime:
		return SignalShortSteepenerBlocked, nil
	case p.Z > cfg.EntryZ:
		return SignalShortSteepener, nil
	default:
		return SignalNoTrade, nil
	}
}
