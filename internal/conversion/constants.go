package conversion

import "math"

const (
	// KilometersPerMile is the exact length of the international mile in
	// kilometers. Every approximation is measured against it.
	KilometersPerMile = 1.609344

	// MaxIndex is the largest n for which F(n) fits in a uint64:
	// F(93) = 12,200,160,415,121,876,738 while F(94) exceeds 2^64.
	MaxIndex = 93

	// LowRangeThreshold is the distance, in miles, below which the
	// approximations answer with the exact formula. The first Fibonacci terms
	// (1, 1, 2, 3) are too close together to interpolate meaningfully.
	LowRangeThreshold = 5.0

	// DomainEdge is the smallest distance the Binet method evaluates.
	// Smaller inputs yield 0 km since log(miles·√5) is undefined at 0.
	DomainEdge = 1e-5
)

const (
	// sqrt5 is √5, expressed through the golden ratio: √5 = 2φ - 1.
	sqrt5 = 2*math.Phi - 1

	// machineEpsilon is the float64 unit roundoff (DBL_EPSILON). A bracket
	// narrower than this is treated as degenerate.
	machineEpsilon = 0x1p-52

	// firstBracketIndex is the first k for which F(k) < F(k+1) holds:
	// F(1) = F(2) = 1, so brackets start at F(2) = 1, F(3) = 2.
	firstBracketIndex = 2
)
