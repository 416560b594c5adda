package conversion

import (
	"context"
	"errors"
	"math"
	"testing"

	apperrors "github.com/agbru/fibkm/internal/errors"
)

func TestSweepOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    SweepOptions
		wantErr bool
	}{
		{"Valid", SweepOptions{From: 1, To: 100, Step: 1}, false},
		{"Single point", SweepOptions{From: 5, To: 5, Step: 1}, false},
		{"Negative from", SweepOptions{From: -1, To: 10, Step: 1}, true},
		{"Reversed range", SweepOptions{From: 10, To: 1, Step: 1}, true},
		{"Zero step", SweepOptions{From: 1, To: 10, Step: 0}, true},
		{"NaN to", SweepOptions{From: 1, To: math.NaN(), Step: 1}, true},
		{"Too many samples", SweepOptions{From: 0, To: 1e9, Step: 1}, true},
		{"Huge range", SweepOptions{From: 0, To: 1e300, Step: 1e-300}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			var ve apperrors.ValidationError
			if err != nil && !errors.As(err, &ve) {
				t.Errorf("Validate() error type = %T", err)
			}
		})
	}
}

func TestSweepOptionsSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts SweepOptions
		want int
	}{
		{SweepOptions{From: 5, To: 10, Step: 1}, 6},
		{SweepOptions{From: 0, To: 1, Step: 0.1}, 11},
		{SweepOptions{From: 3, To: 3, Step: 0.5}, 1},
		{SweepOptions{From: 0, To: 10, Step: 3}, 4},
	}
	for _, tt := range tests {
		if got := tt.opts.Samples(); got != tt.want {
			t.Errorf("%+v.Samples() = %d, want %d", tt.opts, got, tt.want)
		}
	}
}

func TestSweep(t *testing.T) {
	t.Parallel()

	f := NewDefaultFactory()
	var last float64
	calls := 0
	report, err := Sweep(context.Background(), f.All(), SweepOptions{From: 1, To: 100, Step: 0.5}, func(p float64) {
		if p < last {
			t.Errorf("progress went backwards: %v after %v", p, last)
		}
		last = p
		calls++
	})
	if err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if report.Samples != 199 || len(report.Stats) != 4 {
		t.Fatalf("report = %d samples, %d stats", report.Samples, len(report.Stats))
	}
	if last != 1 || calls < 2 {
		t.Errorf("progress ended at %v after %d calls", last, calls)
	}

	for _, s := range report.Stats {
		if s.Samples != 199 {
			t.Errorf("%s: %d samples", s.Method, s.Samples)
		}
		if s.MeanAbsError > s.MaxAbsError || s.MeanRelError > s.MaxRelError {
			t.Errorf("%s: mean exceeds max: %+v", s.Method, s)
		}
		switch s.Method {
		case MethodExact:
			if s.MaxAbsError != 0 || s.Fallbacks != 0 {
				t.Errorf("exact: %+v", s)
			}
		default:
			// 1, 1.5, ..., 4.5 fall below the low range threshold.
			if s.Fallbacks != 8 {
				t.Errorf("%s: %d fallbacks, want 8", s.Method, s.Fallbacks)
			}
			if s.MaxRelError <= 0 || s.MaxRelError > 0.25 {
				t.Errorf("%s: max relative error %v", s.Method, s.MaxRelError)
			}
			if s.WorstMiles < LowRangeThreshold {
				t.Errorf("%s: worst miles %v inside the exact range", s.Method, s.WorstMiles)
			}
		}
	}
}

func TestSweepCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sweep(ctx, NewDefaultFactory().All(), SweepOptions{From: 1, To: 10, Step: 1}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Sweep error = %v, want context.Canceled", err)
	}
}

func TestSweepInvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := Sweep(context.Background(), nil, SweepOptions{From: 1, To: 10}, nil)
	if err == nil {
		t.Error("Sweep accepted a zero step")
	}
}
