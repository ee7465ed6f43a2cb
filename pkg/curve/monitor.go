package curve

import "fmt"

// Side is the direction of an open curve position.
type Side string

const (
	// SideLong is a long flattener: profits when the curve narrows toward
	// its mean from below
	SideLong Side = "long"

	// SideShort is a short steepener: profits when the curve falls back
	// from above its mean
	SideShort Side = "short"
)

// Position is caller-supplied state recorded at trade time. The engine never
// mutates it; PnL and exit levels are recomputed from scratch on every call.
type Position struct {
	Side      Side
	EntryExec float64 // entry price in execution space (dollars)
}

// Report is the position-monitor projection for one evaluation.
type Report struct {
	Side          Side    `json:"side"`
	Z             float64 `json:"z"`
	CurveExec     float64 `json:"curve_exec"`      // current dollar value of the spread
	UnrealizedPnL float64 `json:"unrealized_pnl"`  // dollars
	TakeProfit    float64 `json:"take_profit"`     // dollar level for the z-space target
	StopLoss      float64 `json:"stop_loss"`       // dollar level for the z-space stop
	ExecPerSignal float64 `json:"exec_per_signal"` // local dollars-per-signal-unit ratio
}

// ExecCurve restates the spread in execution space using the real-world
// contract counts and per-point dollar values. Proportional to, but
// independently scaled from, the unitless curve used for statistics.
func ExecCurve(priceA, priceB float64, cfg Config) float64 {
	return cfg.ContractsA*priceA*cfg.PointValueA - cfg.ContractsB*priceB*cfg.PointValueB
}

// MonitorPosition projects unrealized PnL and dollar-space exit levels for an
// open position from the latest spread point and the two raw leg prices.
//
// Exit targets live in z-score space and are mapped to dollars through the
// ratio exec_per_signal = curve_exec / curve. The ratio assumes the two
// spaces are locally proportional at the current price level; it is a
// first-order linearization whose accuracy degrades for large moves.
//
// Returns ErrUndefinedStatistics when the signal-space curve or the trailing
// standard deviation is zero or undefined: division by zero is not a valid
// output path.
func MonitorPosition(p SpreadPoint, pos Position, priceA, priceB float64, cfg Config) (*Report, error) {
	if pos.Side != SideLong && pos.Side != SideShort {
		return nil, fmt.Errorf("unknown position side %q", pos.Side)
	}
	if !Defined(p.Z) || !Defined(p.StdDev) || p.StdDev == 0 {
		return nil, fmt.Errorf("%w: z-score or stdev unavailable", ErrUndefinedStatistics)
	}
	if p.Curve == 0 {
		return nil, fmt.Errorf("%w: signal-space curve is zero", ErrUndefinedStatistics)
	}

	curveExec := ExecCurve(priceA, priceB, cfg)

	var pnl, dzTarget, dzStop float64
	if pos.Side == SideLong {
		pnl = curveExec - pos.EntryExec
		dzTarget = cfg.LongTargetZ - p.Z
		dzStop = -cfg.StopZ - p.Z
	} else {
		pnl = pos.EntryExec - curveExec
		dzTarget = cfg.ShortTargetZ - p.Z
		dzStop = cfg.StopZ - p.Z
	}

	execPerSignal := curveExec / p.Curve

	return &Report{
		Side:          pos.Side,
		Z:             p.Z,
		CurveExec:     curveExec,
		UnrealizedPnL: pnl,
		TakeProfit:    curveExec + dzTarget*p.StdDev*execPerSignal,
		StopLoss:      curveExec + dzStop*p.StdDev*execPerSignal,
		ExecPerSignal: execPerSignal,
	}, nil
}
