// Package curve implements the curve signal engine: a weighted synthetic
// spread between two interest-rate futures, its rolling statistical
// normalization, a grind-regime veto filter, and the execution-space
// projection used to monitor an open position.
package curve

import (
	"fmt"
	"math"
	"time"
)

// PriceBar is one trading day's closing price for one instrument.
type PriceBar struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// AlignedPair holds two price histories reconciled to a common ascending
// trading-date index. Dates and both price slices have identical length.
type AlignedPair struct {
	Dates   []time.Time
	PricesA []float64
	PricesB []float64
}

// Len returns the number of aligned trading dates.
func (p *AlignedPair) Len() int { return len(p.Dates) }

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

// dropInvalid removes bars with a missing or non-positive close.
// Gap rows are dropped entirely, never filled.
func dropInvalid(bars []PriceBar) []PriceBar {
	out := make([]PriceBar, 0, len(bars))
	for _, b := range bars {
		if math.IsNaN(b.Close) || b.Close <= 0 {
			continue
		}
		out = append(out, b)
	}
	return out
}

// AlignPair reconciles two daily price histories to a common date index.
// Rows with a missing price are dropped first, then dates present in only
// one series are dropped. Duplicate or out-of-order dates in either input
// make the histories irreconcilable and return ErrAlignment, as does an
// empty intersection.
func AlignPair(barsA, barsB []PriceBar) (*AlignedPair, error) {
	barsA = dropInvalid(barsA)
	barsB = dropInvalid(barsB)

	closeB := make(map[string]float64, len(barsB))
	prev := ""
	for _, b := range barsB {
		k := dayKey(b.Date)
		if _, dup := closeB[k]; dup {
			return nil, fmt.Errorf("%w: duplicate date %s in series B", ErrAlignment, k)
		}
		if prev != "" && k <= prev {
			return nil, fmt.Errorf("%w: series B not sorted ascending at %s", ErrAlignment, k)
		}
		closeB[k] = b.Close
		prev = k
	}

	pair := &AlignedPair{}
	prev = ""
	seenA := make(map[string]struct{}, len(barsA))
	for _, a := range barsA {
		k := dayKey(a.Date)
		if _, dup := seenA[k]; dup {
			return nil, fmt.Errorf("%w: duplicate date %s in series A", ErrAlignment, k)
		}
		if prev != "" && k <= prev {
			return nil, fmt.Errorf("%w: series A not sorted ascending at %s", ErrAlignment, k)
		}
		seenA[k] = struct{}{}
		prev = k

		b, ok := closeB[k]
		if !ok {
			continue // date missing on the other leg: drop, don't interpolate
		}
		pair.Dates = append(pair.Dates, a.Date)
		pair.PricesA = append(pair.PricesA, a.Close)
		pair.PricesB = append(pair.PricesB, b)
	}

	if pair.Len() == 0 {
		return nil, fmt.Errorf("%w: no common trading dates", ErrAlignment)
	}
	return pair, nil
}
