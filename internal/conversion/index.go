package conversion

import (
	"strconv"

	apperrors "github.com/agbru/fibkm/internal/errors"
)

// IndexResult is the answer of the integer-indexed path: n miles is
// reported as F(n+1) kilometers.
type IndexResult struct {
	Miles      int     `json:"miles"`
	Fibonacci  uint64  `json:"fibonacci"`
	Kilometers float64 `json:"kilometers"`
	Outcome    Outcome `json:"outcome"`
}

// ConvertIndex converts a whole number of miles by stepping one place up the
// Fibonacci sequence. n must lie in [1, MaxIndex]. For n == MaxIndex the
// successor F(94) does not fit in 64 bits and the exact formula is used.
func ConvertIndex(n int) (IndexResult, error) {
	if n < 1 {
		return IndexResult{}, apperrors.ValidationError{
			Field:   "distance",
			Value:   strconv.Itoa(n),
			Message: "must be positive integer",
		}
	}
	if n > MaxIndex {
		return IndexResult{}, apperrors.OutOfRangeError{Field: "distance", Value: n, Max: MaxIndex}
	}

	fib, err := DefaultTable().Lookup(n + 1)
	if err != nil {
		return IndexResult{
			Miles:      n,
			Kilometers: Exact(float64(n)),
			Outcome:    OutcomeExhausted,
		}, nil
	}
	return IndexResult{
		Miles:      n,
		Fibonacci:  fib,
		Kilometers: float64(fib),
		Outcome:    OutcomeFibonacciIndex,
	}, nil
}
