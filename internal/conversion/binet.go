package conversion

import "math"

// BinetSource is a BracketSource that derives the bracket from Binet's
// closed form F(n) = (φ^n - (-φ)^-n) / √5 instead of a table.
//
// Accuracy degrades for very large distances: φ^n and the bracket width are
// both huge and the float64 cancellation error grows with them. That loss is
// inherent to the method and deliberately left in place.
type BinetSource struct{}

// Bracket estimates k = floor(log(miles·√5) / log φ) and returns
// (F(k), F(k+1), F(k+2)). The estimate drops the (-φ)^-n term, so it can be
// one off next to a knot; k is then moved until F(k) <= miles < F(k+1).
// It reports false when the terms overflow float64.
func (BinetSource) Bracket(miles float64) (Bracket, bool) {
	k := math.Floor(math.Log(miles*sqrt5) / math.Log(math.Phi))
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return Bracket{}, false
	}
	k = math.Max(k, 1)
	for k > 1 && binet(k) > miles {
		k--
	}
	for binet(k+1) <= miles {
		k++
	}
	b := Bracket{
		Index: int(k),
		Lower: binet(k),
		Upper: binet(k + 1),
		Next:  binet(k + 2),
	}
	for _, v := range []float64{b.Lower, b.Upper, b.Next} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Bracket{}, false
		}
	}
	return b, true
}

// binet evaluates Binet's formula for an integral index held as float64.
func binet(n float64) float64 {
	return (math.Pow(math.Phi, n) - math.Pow(-math.Phi, -n)) / sqrt5
}
