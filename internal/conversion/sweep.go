package conversion

import (
	"context"
	"math"
	"strconv"

	apperrors "github.com/agbru/fibkm/internal/errors"
)

// MaxSweepSamples bounds the number of distances a single sweep evaluates.
const MaxSweepSamples = 1_000_000

// sweepCheckInterval is how many samples run between context checks and
// progress reports.
const sweepCheckInterval = 1024

// SweepOptions describes the distances evaluated by Sweep: From, From+Step,
// ... up to and including To.
type SweepOptions struct {
	From float64
	To   float64
	Step float64
}

// Samples returns the number of distances the sweep evaluates. Counts above
// MaxSweepSamples are reported as MaxSweepSamples+1.
func (o SweepOptions) Samples() int {
	f := math.Floor((o.To-o.From)/o.Step+1e-9) + 1
	if f > MaxSweepSamples || math.IsNaN(f) {
		return MaxSweepSamples + 1
	}
	return int(f)
}

// Validate checks the range and step.
func (o SweepOptions) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"from", o.From}, {"to", o.To}, {"step", o.Step}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return apperrors.ValidationError{Field: "sweep " + f.name, Value: fmtFloat(f.v), Message: "must be a finite number"}
		}
	}
	switch {
	case o.From < 0:
		return apperrors.ValidationError{Field: "sweep from", Value: fmtFloat(o.From), Message: "must be non-negative number"}
	case o.To < o.From:
		return apperrors.ValidationError{Field: "sweep to", Value: fmtFloat(o.To), Message: "must not be below the start of the range"}
	case o.Step <= 0:
		return apperrors.ValidationError{Field: "sweep step", Value: fmtFloat(o.Step), Message: "must be positive"}
	case o.Samples() > MaxSweepSamples:
		return apperrors.ValidationError{
			Field:   "sweep step",
			Value:   fmtFloat(o.Step),
			Message: "yields more than " + strconv.Itoa(MaxSweepSamples) + " samples",
		}
	}
	return nil
}

// SweepStats summarizes one method's accuracy over a sweep.
type SweepStats struct {
	Method       Method  `json:"method"`
	Name         string  `json:"name"`
	Samples      int     `json:"samples"`
	MaxAbsError  float64 `json:"max_abs_error"`
	MeanAbsError float64 `json:"mean_abs_error"`
	MaxRelError  float64 `json:"max_rel_error"`
	MeanRelError float64 `json:"mean_rel_error"`
	WorstMiles   float64 `json:"worst_miles"`
	Fallbacks    int     `json:"fallbacks"`
}

// SweepReport is the result of Sweep.
type SweepReport struct {
	From    float64      `json:"from"`
	To      float64      `json:"to"`
	Step    float64      `json:"step"`
	Samples int          `json:"samples"`
	Stats   []SweepStats `json:"stats"`
}

// Sweep evaluates every converter over the range described by opts and
// reports per-method error statistics against the exact formula. progress,
// when non-nil, receives the completed fraction in [0, 1].
func Sweep(ctx context.Context, converters []Converter, opts SweepOptions, progress func(float64)) (SweepReport, error) {
	if err := opts.Validate(); err != nil {
		return SweepReport{}, err
	}
	n := opts.Samples()
	stats := make([]SweepStats, len(converters))
	sumAbs := make([]float64, len(converters))
	sumRel := make([]float64, len(converters))
	for j, c := range converters {
		stats[j] = SweepStats{Method: c.Method(), Name: c.Name()}
	}

	for i := 0; i < n; i++ {
		if i%sweepCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return SweepReport{}, err
			}
			if progress != nil {
				progress(float64(i) / float64(n))
			}
		}
		// Computed from i rather than accumulated to avoid drift.
		miles := opts.From + float64(i)*opts.Step
		exact := Exact(miles)
		for j, c := range converters {
			res, err := c.Convert(ctx, miles)
			if err != nil {
				return SweepReport{}, err
			}
			abs, rel := errorsAgainst(exact, res.Kilometers)
			s := &stats[j]
			s.Samples++
			sumAbs[j] += abs
			sumRel[j] += rel
			if abs > s.MaxAbsError {
				s.MaxAbsError = abs
			}
			if rel > s.MaxRelError {
				s.MaxRelError = rel
				s.WorstMiles = miles
			}
			if res.Outcome.IsFallback() {
				s.Fallbacks++
			}
		}
	}
	for j := range stats {
		if stats[j].Samples > 0 {
			stats[j].MeanAbsError = sumAbs[j] / float64(stats[j].Samples)
			stats[j].MeanRelError = sumRel[j] / float64(stats[j].Samples)
		}
	}
	if progress != nil {
		progress(1)
	}
	return SweepReport{
		From:    opts.From,
		To:      opts.To,
		Step:    opts.Step,
		Samples: n,
		Stats:   stats,
	}, nil
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
