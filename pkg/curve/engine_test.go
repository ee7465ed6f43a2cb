package curve

import (
	"errors"
	"math"
	"testing"
)

// makePair builds two bar histories whose weighted difference reproduces the
// given curve under weights (1, 3): B is a gentle wave around 100 and A is
// solved back from the target curve.
func makePair(curve []float64) (barsA, barsB []PriceBar) {
	b := make([]float64, len(curve))
	a := make([]float64, len(curve))
	for i := range curve {
		b[i] = 100.0 + 0.2*math.Cos(float64(i)*0.11)
		a[i] = curve[i] + 3.0*b[i]
	}
	return makeBars(a), makeBars(b)
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := NewEngine(DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return eng
}

func TestEngine_EvaluateMatchesPointHistory(t *testing.T) {
	eng := newTestEngine(t)
	n := 260
	barsA, barsB := makePair(syntheticCurve(n))

	snap, err := eng.Evaluate(barsA, barsB)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	pair, err := AlignPair(barsA, barsB)
	if err != nil {
		t.Fatalf("AlignPair failed: %v", err)
	}
	pts := ComputePoints(pair.Dates, BuildCurve(pair, 1.0, 3.0), eng.Config())
	last := pts[len(pts)-1]

	if snap.Curve != last.Curve || snap.Z != last.Z || snap.ATR != last.ATR {
		t.Errorf("Snapshot diverged from point history: %+v vs %+v", snap, last)
	}
	if snap.GrindRegime != last.GrindRegime {
		t.Errorf("Snapshot grind flag %v, point history %v", snap.GrindRegime, last.GrindRegime)
	}
	if !snap.Date.Equal(last.Date) {
		t.Errorf("Snapshot date %v, point history %v", snap.Date, last.Date)
	}

	want, err := EvaluateSignal(last, eng.Config())
	if err != nil {
		t.Fatalf("EvaluateSignal failed: %v", err)
	}
	if snap.Signal != want {
		t.Errorf("Expected signal %s, got %s", want, snap.Signal)
	}
}

func TestEngine_EvaluateIdempotent(t *testing.T) {
	eng := newTestEngine(t)
	barsA, barsB := makePair(syntheticCurve(260))

	first, err := eng.Evaluate(barsA, barsB)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	second, err := eng.Evaluate(barsA, barsB)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if *first != *second {
		t.Errorf("Repeated evaluation over the same snapshot diverged: %+v vs %+v", first, second)
	}
}

func TestEngine_EvaluateShortHistory(t *testing.T) {
	eng := newTestEngine(t)
	barsA, barsB := makePair(syntheticCurve(50))

	if _, err := eng.Evaluate(barsA, barsB); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("Expected ErrInsufficientData for 50 bars, got %v", err)
	}
}

func TestEngine_EvaluateFlatCurve(t *testing.T) {
	eng := newTestEngine(t)
	flat := make([]float64, eng.Config().ZLookback)
	for i := range flat {
		flat[i] = 10.0
	}
	barsA, barsB := makePair(flat)

	if _, err := eng.Evaluate(barsA, barsB); !errors.Is(err, ErrDegenerateVariance) {
		t.Fatalf("Expected ErrDegenerateVariance for flat curve, got %v", err)
	}
}

func TestEngine_MonitorMatchesDirectProjection(t *testing.T) {
	eng := newTestEngine(t)
	n := 260
	barsA, barsB := makePair(syntheticCurve(n))
	pos := Position{Side: SideShort, EntryExec: -575000}

	rep, err := eng.Monitor(barsA, barsB, pos)
	if err != nil {
		t.Fatalf("Monitor failed: %v", err)
	}

	pair, err := AlignPair(barsA, barsB)
	if err != nil {
		t.Fatalf("AlignPair failed: %v", err)
	}
	pts := ComputePoints(pair.Dates, BuildCurve(pair, 1.0, 3.0), eng.Config())
	i := pair.Len() - 1
	want, err := MonitorPosition(pts[i], pos, pair.PricesA[i], pair.PricesB[i], eng.Config())
	if err != nil {
		t.Fatalf("MonitorPosition failed: %v", err)
	}

	if *rep != *want {
		t.Errorf("Engine monitor diverged from direct projection: %+v vs %+v", rep, want)
	}
}

func TestEngine_MonitorPropagatesAlignmentError(t *testing.T) {
	eng := newTestEngine(t)
	barsA, _ := makePair(syntheticCurve(10))

	_, err := eng.Monitor(barsA, nil, Position{Side: SideLong, EntryExec: 0})
	if !errors.Is(err, ErrAlignment) {
		t.Fatalf("Expected ErrAlignment, got %v", err)
	}
}

func TestNewEngine_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ZLookback = 1

	if _, err := NewEngine(cfg); err == nil {
		t.Fatal("Expected error for z_lookback < 2")
	}
}
