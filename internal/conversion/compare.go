package conversion

import (
	"context"
	"math"
)

// ComparisonEntry is one method's answer measured against the exact value.
type ComparisonEntry struct {
	Result
	Name     string  `json:"name"`
	AbsError float64 `json:"abs_error"`
	RelError float64 `json:"rel_error"`
}

// Comparison holds every method's answer for one distance.
type Comparison struct {
	Miles   float64           `json:"miles"`
	Exact   float64           `json:"exact"`
	Entries []ComparisonEntry `json:"entries"`
}

// Compare converts miles with every converter, in order, and measures each
// result against the exact formula. It fails on the first rejected input or
// when ctx is done.
func Compare(ctx context.Context, converters []Converter, miles float64) (Comparison, error) {
	if err := ValidateMiles(miles); err != nil {
		return Comparison{}, err
	}
	exact := Exact(miles)
	cmp := Comparison{
		Miles:   miles,
		Exact:   exact,
		Entries: make([]ComparisonEntry, 0, len(converters)),
	}
	for _, c := range converters {
		if err := ctx.Err(); err != nil {
			return Comparison{}, err
		}
		res, err := c.Convert(ctx, miles)
		if err != nil {
			return Comparison{}, err
		}
		abs, rel := errorsAgainst(exact, res.Kilometers)
		cmp.Entries = append(cmp.Entries, ComparisonEntry{
			Result:   res,
			Name:     c.Name(),
			AbsError: abs,
			RelError: rel,
		})
	}
	return cmp, nil
}

// errorsAgainst returns the absolute and relative deviation of got from
// want. The relative error is 0 when want is 0.
func errorsAgainst(want, got float64) (abs, rel float64) {
	abs = math.Abs(got - want)
	if want != 0 {
		rel = abs / want
	}
	return abs, rel
}
