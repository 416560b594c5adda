package conversion

import (
	"math"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// approximators returns the three Fibonacci-based core converters.
func approximators() []coreConverter {
	return []coreConverter{
		InterpolationConverter{},
		NewCachedConverter(nil),
		BinetConverter{},
	}
}

// knotNeighbourhood generates distances within 1e-3 of a Fibonacci knot, where
// bracket selection switches from one segment to the next.
func knotNeighbourhood(minIndex, maxIndex int) gopter.Gen {
	return gen.IntRange(minIndex, maxIndex).FlatMap(func(v interface{}) gopter.Gen {
		knot := float64(Fibonacci(v.(int)))
		return gen.Float64Range(knot-1e-3, knot+1e-3)
	}, reflect.TypeOf(float64(0)))
}

func closeTo(a, b, rel float64) bool {
	return math.Abs(a-b) <= rel*math.Max(math.Abs(a), math.Abs(b))
}

// TestExactFormula_PropertyBased verifies that the exact method is a pure
// multiplication by KilometersPerMile.
func TestExactFormula_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("exact is miles × 1.609344", prop.ForAll(
		func(m float64) bool {
			km, outcome := ExactConverter{}.ConvertCore(m)
			return km == m*1.609344 && outcome == OutcomeExact
		},
		gen.Float64Range(0, 1e12),
	))

	properties.TestingRun(t)
}

// TestLowRange_PropertyBased verifies that every approximation answers with
// the exact formula below LowRangeThreshold.
func TestLowRange_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	for _, core := range approximators() {
		properties.Property(core.Name()+" is exact below 5 miles", prop.ForAll(
			func(m float64) bool {
				km, outcome := core.ConvertCore(m)
				if core.Method() == MethodBinet && m < DomainEdge {
					return km == 0 && outcome == OutcomeDomainEdge
				}
				return km == Exact(m) && outcome == OutcomeLowRange
			},
			gen.Float64Range(0, math.Nextafter(LowRangeThreshold, 0)),
		))
	}

	properties.TestingRun(t)
}

// TestFibonacciKnots_PropertyBased verifies that a Fibonacci number of miles
// converts to the next Fibonacci number of kilometers.
func TestFibonacciKnots_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for _, core := range approximators() {
		properties.Property(core.Name()+" maps F(k) to F(k+1)", prop.ForAll(
			func(k int) bool {
				km, _ := core.ConvertCore(float64(Fibonacci(k)))
				return closeTo(km, float64(Fibonacci(k+1)), 1e-9)
			},
			gen.IntRange(5, 70),
		))
	}

	properties.TestingRun(t)
}

// TestMethodAgreement_PropertyBased verifies that the generator and table
// methods are identical and that Binet agrees with them up to rounding.
func TestMethodAgreement_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	cached := NewCachedConverter(nil)
	properties.Property("interpolate == cached ≈ binet", prop.ForAll(
		func(m float64) bool {
			a, oa := InterpolationConverter{}.ConvertCore(m)
			b, ob := cached.ConvertCore(m)
			c, _ := BinetConverter{}.ConvertCore(m)
			return a == b && oa == ob && closeTo(a, c, 1e-9)
		},
		gen.OneGenOf(
			knotNeighbourhood(3, 40),
			gen.Float64Range(DomainEdge, 100),
			gen.Float64Range(100, 1e6),
			gen.Float64Range(1e6, 1e18),
		),
	))

	properties.TestingRun(t)
}

// TestMonotonicity_PropertyBased verifies that each approximation is
// non-decreasing inside each of its two regimes. The regimes meet at
// LowRangeThreshold with a small downward step, since exact(5-ε) ≈ 8.05
// exceeds the interpolated value 8 at 5 miles.
func TestMonotonicity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	regimes := []struct {
		name     string
		from, to float64
	}{
		{"below 5 miles", 0, math.Nextafter(LowRangeThreshold, 0)},
		{"from 5 to 93 miles", LowRangeThreshold, 93},
	}

	for _, core := range approximators() {
		properties.Property(core.Name()+" is monotonic across knots", prop.ForAll(
			func(k int, da, db float64) bool {
				if da > db {
					da, db = db, da
				}
				knot := float64(Fibonacci(k))
				ka, _ := core.ConvertCore(knot + da)
				kb, _ := core.ConvertCore(knot + db)
				return ka <= kb+1e-9
			},
			gen.IntRange(6, 40),
			gen.Float64Range(-0.1, 0.1),
			gen.Float64Range(-0.1, 0.1),
		))
		for _, r := range regimes {
			properties.Property(core.Name()+" is monotonic "+r.name, prop.ForAll(
				func(a, b float64) bool {
					if a > b {
						a, b = b, a
					}
					ka, _ := core.ConvertCore(a)
					kb, _ := core.ConvertCore(b)
					return ka <= kb+1e-9
				},
				gen.Float64Range(r.from, r.to),
				gen.Float64Range(r.from, r.to),
			))
		}
	}

	properties.TestingRun(t)
}

// TestApproximationBound_PropertyBased verifies that interpolation never
// strays far from the exact value once past the low range.
func TestApproximationBound_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("relative error stays under 1%", prop.ForAll(
		func(m float64) bool {
			km, _ := InterpolationConverter{}.ConvertCore(m)
			return closeTo(km, Exact(m), 0.01)
		},
		gen.Float64Range(LowRangeThreshold, 1e15),
	))

	properties.TestingRun(t)
}
