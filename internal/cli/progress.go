package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibkm/internal/conversion"
)

// RunSweep runs conversion.Sweep and, when showProgress is set, animates a
// spinner with a progress bar on out until the sweep returns.
func RunSweep(ctx context.Context, converters []conversion.Converter, opts conversion.SweepOptions, out io.Writer, showProgress bool) (conversion.SweepReport, error) {
	if !showProgress {
		return conversion.Sweep(ctx, converters, opts, nil)
	}

	s := newSpinner(spinner.WithWriter(out), spinner.WithHiddenCursor(true))
	s.UpdateSuffix(sweepSuffix(0))
	s.Start()
	defer s.Stop()

	return conversion.Sweep(ctx, converters, opts, func(p float64) {
		s.UpdateSuffix(sweepSuffix(p))
	})
}

func sweepSuffix(p float64) string {
	return fmt.Sprintf(" Sweeping %s %5.1f%%", progressBar(p, ProgressBarWidth), p*100)
}
