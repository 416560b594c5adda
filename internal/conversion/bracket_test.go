package conversion

import (
	"math"
	"testing"
)

func TestBracketInterpolate(t *testing.T) {
	t.Parallel()

	b := Bracket{Index: 6, Lower: 8, Upper: 13, Next: 21}
	got, ok := b.Interpolate(10)
	if !ok || math.Abs(got-16.2) > 1e-12 {
		t.Errorf("Interpolate(10) = %v, %v, want 16.2, true", got, ok)
	}

	// The knots map onto the next term of the sequence.
	if got, _ := b.Interpolate(8); got != 13 {
		t.Errorf("Interpolate(8) = %v, want 13", got)
	}
	if got, _ := b.Interpolate(13); got != 21 {
		t.Errorf("Interpolate(13) = %v, want 21", got)
	}

	if _, ok := (Bracket{Lower: 5, Upper: 5, Next: 8}).Interpolate(5); ok {
		t.Error("zero-width bracket interpolated")
	}
}

func TestBracketSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		miles float64
		want  Bracket
	}{
		{1, Bracket{Index: 2, Lower: 1, Upper: 2, Next: 3}},
		{5, Bracket{Index: 5, Lower: 5, Upper: 8, Next: 13}},
		{7.99, Bracket{Index: 5, Lower: 5, Upper: 8, Next: 13}},
		{10, Bracket{Index: 6, Lower: 8, Upper: 13, Next: 21}},
		{34.7, Bracket{Index: 9, Lower: 34, Upper: 55, Next: 89}},
	}
	sources := map[string]BracketSource{
		"generator": Generator{},
		"table":     DefaultTable(),
	}
	for name, src := range sources {
		for _, tt := range tests {
			got, ok := src.Bracket(tt.miles)
			if !ok || got != tt.want {
				t.Errorf("%s.Bracket(%v) = %+v, %v, want %+v", name, tt.miles, got, ok, tt.want)
			}
		}
	}
}

func TestBracketSourcesExhaust(t *testing.T) {
	t.Parallel()

	f92 := float64(Fibonacci(92))
	for name, src := range map[string]BracketSource{"generator": Generator{}, "table": DefaultTable()} {
		if b, ok := src.Bracket(f92 * 0.99); !ok || b.Index != 91 {
			t.Errorf("%s: last bracket = %+v, %v, want index 91", name, b, ok)
		}
		if _, ok := src.Bracket(f92); ok {
			t.Errorf("%s: bracket found at F(92)", name)
		}
		if _, ok := src.Bracket(1e20); ok {
			t.Errorf("%s: bracket found at 1e20", name)
		}
	}
}

func TestGeneratorMatchesTable(t *testing.T) {
	t.Parallel()

	for _, v := range DefaultTable().Values() {
		for _, m := range []float64{float64(v), float64(v) + 0.5, float64(v) * 1.3} {
			g, gok := Generator{}.Bracket(m)
			tb, tok := DefaultTable().Bracket(m)
			if g != tb || gok != tok {
				t.Fatalf("miles %v: generator %+v/%v, table %+v/%v", m, g, gok, tb, tok)
			}
		}
	}
}

func TestBinetSource(t *testing.T) {
	t.Parallel()

	b, ok := BinetSource{}.Bracket(10)
	if !ok {
		t.Fatal("no bracket for 10 miles")
	}
	if b.Index != 6 ||
		math.Abs(b.Lower-8) > 1e-9 || math.Abs(b.Upper-13) > 1e-9 || math.Abs(b.Next-21) > 1e-9 {
		t.Errorf("Bracket(10) = %+v, want ~(8, 13, 21) at index 6", b)
	}

	if _, ok := (BinetSource{}).Bracket(1e308); ok {
		t.Error("bracket found for 1e308 miles")
	}
}

// TestBinetBracketAroundKnots checks the bracket contract and the agreement
// with the table next to every knot up to F(11), where the closed-form
// estimate of k is one off.
func TestBinetBracketAroundKnots(t *testing.T) {
	t.Parallel()

	for k := 3; k <= 11; k++ {
		knot := float64(Fibonacci(k))
		for _, off := range []float64{-0.1, -0.025, -1e-3, -1e-6, 0, 1e-6, 1e-3, 0.025, 0.1} {
			m := knot + off
			b, ok := BinetSource{}.Bracket(m)
			if !ok || b.Lower > m || m >= b.Upper {
				t.Errorf("Bracket(%v) = %+v, %v: miles outside [Lower, Upper)", m, b, ok)
			}
			if m < LowRangeThreshold {
				continue
			}
			want, _ := InterpolationConverter{}.ConvertCore(m)
			got, _ := BinetConverter{}.ConvertCore(m)
			if !closeTo(got, want, 1e-9) {
				t.Errorf("binet(%v) = %v, interpolate = %v", m, got, want)
			}
		}
	}
}

func TestBinetMonotonicAroundKnots(t *testing.T) {
	t.Parallel()

	const step = 1e-4
	for k := 5; k <= 11; k++ {
		knot := float64(Fibonacci(k))
		from := math.Max(knot-0.1, LowRangeThreshold)
		prev, _ := BinetConverter{}.ConvertCore(from)
		for i := 1; from+float64(i)*step <= knot+0.1; i++ {
			m := from + float64(i)*step
			km, _ := BinetConverter{}.ConvertCore(m)
			if km < prev-1e-9 {
				t.Fatalf("binet drops at %v miles: %v -> %v", m, prev, km)
			}
			prev = km
		}
	}
}

type fixedSource struct {
	b  Bracket
	ok bool
}

func (s fixedSource) Bracket(float64) (Bracket, bool) { return s.b, s.ok }

func TestApproximateOutcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     BracketSource
		miles   float64
		want    float64
		outcome Outcome
	}{
		{"Below the low range threshold", Generator{}, 4.5, Exact(4.5), OutcomeLowRange},
		{"Interpolated", Generator{}, 10, 16.2, OutcomeInterpolated},
		{"No bracket", fixedSource{}, 10, Exact(10), OutcomeExhausted},
		{"Degenerate bracket", fixedSource{Bracket{Lower: 10, Upper: 10, Next: 20}, true}, 10, Exact(10), OutcomeDegenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, outcome := approximate(tt.src, tt.miles)
			if math.Abs(got-tt.want) > 1e-12 || outcome != tt.outcome {
				t.Errorf("approximate(%v) = %v, %s, want %v, %s", tt.miles, got, outcome, tt.want, tt.outcome)
			}
		})
	}
}
