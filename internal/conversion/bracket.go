package conversion

// Bracket holds three consecutive Fibonacci values F(k), F(k+1), F(k+2).
// On the miles axis the input lies in [Lower, Upper); the same interval
// mapped one step up the sequence, [Upper, Next), is the kilometer axis.
type Bracket struct {
	Index int
	Lower float64
	Upper float64
	Next  float64
}

// Interpolate maps miles from [Lower, Upper] onto [Upper, Next]:
//
//	km = F(k+1) + (miles - F(k)) × (F(k+2) - F(k+1)) / (F(k+1) - F(k))
//
// It reports false when the bracket is narrower than machine epsilon.
func (b Bracket) Interpolate(miles float64) (float64, bool) {
	width := b.Upper - b.Lower
	if width < machineEpsilon {
		return 0, false
	}
	return b.Upper + (miles-b.Lower)*(b.Next-b.Upper)/width, true
}

// BracketSource supplies the Fibonacci bracket around a distance. It returns
// false when no bracket can be formed, for instance when the input lies
// beyond the last representable Fibonacci pair.
type BracketSource interface {
	Bracket(miles float64) (Bracket, bool)
}

// approximate is the shared conversion routine of every Fibonacci method.
// Only the bracket source varies between methods.
func approximate(src BracketSource, miles float64) (float64, Outcome) {
	if miles < LowRangeThreshold {
		return Exact(miles), OutcomeLowRange
	}
	b, ok := src.Bracket(miles)
	if !ok {
		return Exact(miles), OutcomeExhausted
	}
	km, ok := b.Interpolate(miles)
	if !ok {
		return Exact(miles), OutcomeDegenerate
	}
	return km, OutcomeInterpolated
}

// Generator is a BracketSource that advances a Fibonacci triple on every
// call instead of consulting a table. It walks exactly the indices the table
// search covers, so both produce identical brackets.
type Generator struct{}

// Bracket walks (F(k), F(k+1), F(k+2)) upward from k = 2 while F(k+1) <= miles.
// The walk ends without a bracket when the next term would wrap around 64 bits.
func (Generator) Bracket(miles float64) (Bracket, bool) {
	k := firstBracketIndex
	var lower, upper, next uint64 = 1, 2, 3
	for float64(upper) <= miles {
		sum := upper + next
		if sum < next {
			return Bracket{}, false
		}
		lower, upper, next = upper, next, sum
		k++
	}
	return Bracket{
		Index: k,
		Lower: float64(lower),
		Upper: float64(upper),
		Next:  float64(next),
	}, true
}
