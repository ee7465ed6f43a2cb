package curve

import (
	"fmt"
	"time"
)

// Engine evaluates the curve signal over an immutable snapshot of price
// history. It holds no state between calls: every evaluation recomputes the
// rolling statistics from the supplied bars, so repeated evaluation is
// idempotent and the engine is safe to share across goroutines.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given configuration.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Snapshot is the entry-screener output for the most recent trading date.
type Snapshot struct {
	Date        time.Time `json:"date"`
	Curve       float64   `json:"curve"`
	Z           float64   `json:"z"`
	ATR         float64   `json:"atr"`
	Trend       float64   `json:"trend"`
	TrendSlope  float64   `json:"trend_slope"`
	GrindRegime bool      `json:"grind_regime"`
	Signal      Signal    `json:"signal"`
	PriceA      float64   `json:"price_a"`
	PriceB      float64   `json:"price_b"`
}

// points aligns the pair, builds the curve, and computes the full statistics
// history. Shared by both evaluation modes.
func (e *Engine) points(barsA, barsB []PriceBar) (*AlignedPair, []SpreadPoint, error) {
	pair, err := AlignPair(barsA, barsB)
	if err != nil {
		return nil, nil, err
	}
	c := BuildCurve(pair, e.cfg.WeightA, e.cfg.WeightB)
	return pair, ComputePoints(pair.Dates, c, e.cfg), nil
}

// Evaluate runs the engine in no-position mode: it derives the spread and its
// statistics over the whole supplied history and classifies the latest point.
func (e *Engine) Evaluate(barsA, barsB []PriceBar) (*Snapshot, error) {
	pair, pts, err := e.points(barsA, barsB)
	if err != nil {
		return nil, err
	}

	last := pts[len(pts)-1]
	sig, err := EvaluateSignal(last, e.cfg)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Date:        last.Date,
		Curve:       last.Curve,
		Z:           last.Z,
		ATR:         last.ATR,
		Trend:       last.Trend,
		TrendSlope:  last.TrendSlope,
		GrindRegime: last.GrindRegime,
		Signal:      sig,
		PriceA:      pair.PricesA[pair.Len()-1],
		PriceB:      pair.PricesB[pair.Len()-1],
	}, nil
}

// Monitor runs the engine in open-position mode: same statistics as Evaluate,
// projected into dollar space against the supplied position. The two modes
// are mutually exclusive per invocation; the caller selects by declaring a
// position or not.
func (e *Engine) Monitor(barsA, barsB []PriceBar, pos Position) (*Report, error) {
	pair, pts, err := e.points(barsA, barsB)
	if err != nil {
		return nil, err
	}

	last := pts[len(pts)-1]
	i := pair.Len() - 1
	return MonitorPosition(last, pos, pair.PricesA[i], pair.PricesB[i], e.cfg)
}
