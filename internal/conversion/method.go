package conversion

import (
	"fmt"
	"strings"
)

// Method identifies one of the conversion algorithms.
type Method string

// Registered conversion methods.
const (
	MethodExact       Method = "exact"
	MethodInterpolate Method = "interpolate"
	MethodCached      Method = "cached"
	MethodBinet       Method = "binet"
)

// Methods returns every built-in method, exact first.
func Methods() []Method {
	return []Method{MethodExact, MethodInterpolate, MethodCached, MethodBinet}
}

// ParseMethod resolves a method name case-insensitively.
func ParseMethod(name string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Methods() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown conversion method %q", name)
}

// Outcome records which branch of a method produced a value. Fallbacks are
// outcomes, not errors: the caller still receives a valid distance.
type Outcome string

const (
	// OutcomeExact is the plain exact formula.
	OutcomeExact Outcome = "exact"
	// OutcomeInterpolated is a value interpolated between Fibonacci knots.
	OutcomeInterpolated Outcome = "interpolated"
	// OutcomeLowRange is the exact formula used below LowRangeThreshold.
	OutcomeLowRange Outcome = "low-range"
	// OutcomeExhausted is the exact formula used when no bracket exists.
	OutcomeExhausted Outcome = "exhausted"
	// OutcomeDegenerate is the exact formula used for a zero-width bracket.
	OutcomeDegenerate Outcome = "degenerate-interval"
	// OutcomeDomainEdge is the 0 returned by Binet for near-zero inputs.
	OutcomeDomainEdge Outcome = "domain-edge"
	// OutcomeFibonacciIndex is F(n+1) reported by the integer-indexed path.
	OutcomeFibonacciIndex Outcome = "fibonacci-index"
)

// IsFallback reports whether the value came from the exact formula standing
// in for an approximation.
func (o Outcome) IsFallback() bool {
	switch o {
	case OutcomeLowRange, OutcomeExhausted, OutcomeDegenerate:
		return true
	}
	return false
}

// coreConverter is the pure algorithm behind a Converter.
type coreConverter interface {
	ConvertCore(miles float64) (float64, Outcome)
	Name() string
	Method() Method
}

// ExactConverter multiplies by KilometersPerMile.
type ExactConverter struct{}

func (ExactConverter) ConvertCore(miles float64) (float64, Outcome) {
	return Exact(miles), OutcomeExact
}
func (ExactConverter) Name() string   { return "Exact Formula" }
func (ExactConverter) Method() Method { return MethodExact }

// InterpolationConverter generates Fibonacci pairs on every call.
type InterpolationConverter struct{}

func (InterpolationConverter) ConvertCore(miles float64) (float64, Outcome) {
	return approximate(Generator{}, miles)
}
func (InterpolationConverter) Name() string   { return "Fibonacci Interpolation" }
func (InterpolationConverter) Method() Method { return MethodInterpolate }

// CachedConverter interpolates over a precomputed Table.
type CachedConverter struct {
	table *Table
}

// NewCachedConverter returns a CachedConverter over table, or over
// DefaultTable when table is nil.
func NewCachedConverter(table *Table) *CachedConverter {
	if table == nil {
		table = DefaultTable()
	}
	return &CachedConverter{table: table}
}

func (c *CachedConverter) ConvertCore(miles float64) (float64, Outcome) {
	return approximate(c.table, miles)
}
func (*CachedConverter) Name() string   { return "Fibonacci Table Lookup" }
func (*CachedConverter) Method() Method { return MethodCached }

// BinetConverter interpolates over a bracket derived from Binet's formula.
type BinetConverter struct{}

func (BinetConverter) ConvertCore(miles float64) (float64, Outcome) {
	if miles < DomainEdge {
		return 0, OutcomeDomainEdge
	}
	return approximate(BinetSource{}, miles)
}
func (BinetConverter) Name() string   { return "Golden Ratio (Binet)" }
func (BinetConverter) Method() Method { return MethodBinet }
