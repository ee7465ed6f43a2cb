package curve

// BuildCurve combines the two aligned price series into the unitless
// synthetic spread: curve[i] = wA*A[i] - wB*B[i].
// Pure transformation; the result is aligned to pair.Dates.
func BuildCurve(pair *AlignedPair, wA, wB float64) []float64 {
	out := make([]float64, pair.Len())
	for i := range out {
		out[i] = wA*pair.PricesA[i] - wB*pair.PricesB[i]
	}
	return out
}
