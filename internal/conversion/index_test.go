package conversion

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/fibkm/internal/errors"
)

func TestConvertIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		fib     uint64
		km      float64
		outcome Outcome
	}{
		{1, 1, 1, OutcomeFibonacciIndex},
		{5, 8, 8, OutcomeFibonacciIndex},
		{10, 89, 89, OutcomeFibonacciIndex},
		{92, 12200160415121876738, 12200160415121876738, OutcomeFibonacciIndex},
		{93, 0, Exact(93), OutcomeExhausted},
	}
	for _, tt := range tests {
		got, err := ConvertIndex(tt.n)
		if err != nil {
			t.Fatalf("ConvertIndex(%d) error: %v", tt.n, err)
		}
		if got.Miles != tt.n || got.Fibonacci != tt.fib || got.Kilometers != tt.km || got.Outcome != tt.outcome {
			t.Errorf("ConvertIndex(%d) = %+v", tt.n, got)
		}
	}
}

func TestConvertIndexErrors(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -3} {
		_, err := ConvertIndex(n)
		var ve apperrors.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("ConvertIndex(%d) error = %v, want ValidationError", n, err)
		}
	}

	_, err := ConvertIndex(94)
	var re apperrors.OutOfRangeError
	if !errors.As(err, &re) || re.Max != MaxIndex {
		t.Errorf("ConvertIndex(94) error = %v, want OutOfRangeError with max %d", err, MaxIndex)
	}
}
