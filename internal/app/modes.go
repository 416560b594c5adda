package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/fibkm/internal/cli"
	"github.com/agbru/fibkm/internal/conversion"
	apperrors "github.com/agbru/fibkm/internal/errors"
	"github.com/agbru/fibkm/internal/logging"
	"github.com/agbru/fibkm/internal/metrics"
	"github.com/agbru/fibkm/internal/ui"
)

// jsonEnvelope wraps the JSON output when --details is set.
type jsonEnvelope struct {
	Results any               `json:"results"`
	Details *metrics.Snapshot `json:"details,omitempty"`
}

// emitJSON writes v, wrapped with the recorded details when requested.
func (a *Application) emitJSON(out io.Writer, v any) int {
	if a.Config.Details {
		snap, err := a.Recorder.Snapshot()
		if err != nil {
			return a.handleError(err)
		}
		v = jsonEnvelope{Results: v, Details: &snap}
	}
	if err := cli.WriteJSON(out, v); err != nil {
		return a.handleError(err)
	}
	return apperrors.ExitSuccess
}

// runFibonacci converts a whole number of miles to F(n+1) kilometers.
func (a *Application) runFibonacci(out io.Writer, f cli.Formatter) int {
	n, err := cli.ParseIndex(a.Config.Fib)
	if err != nil {
		return a.handleError(err)
	}
	res, err := conversion.ConvertIndex(n)
	if err != nil {
		return a.handleError(err)
	}
	a.Logger.Debug("fibonacci index converted",
		logging.Int("miles", res.Miles),
		logging.Uint64("fibonacci", res.Fibonacci),
		logging.String("outcome", string(res.Outcome)))

	switch {
	case a.Config.JSONOutput:
		return a.emitJSON(out, res)
	case a.Config.Quiet && res.Outcome == conversion.OutcomeFibonacciIndex:
		fmt.Fprintln(out, f.Count(res.Fibonacci))
	case a.Config.Quiet:
		cli.DisplayQuiet(out, res.Kilometers, f)
	default:
		cli.DisplayFibonacci(out, res, f)
	}
	return apperrors.ExitSuccess
}

// runBasic converts a single distance with the exact formula.
func (a *Application) runBasic(ctx context.Context, out io.Writer, f cli.Formatter) int {
	miles, err := cli.ParseMiles(a.Config.Basic)
	if err != nil {
		return a.handleError(err)
	}
	c, err := a.Factory.Get(conversion.MethodExact)
	if err != nil {
		return a.handleError(err)
	}
	res, err := c.Convert(ctx, miles)
	if err != nil {
		return a.handleError(err)
	}

	switch {
	case a.Config.JSONOutput:
		return a.emitJSON(out, res)
	case a.Config.Quiet:
		cli.DisplayQuiet(out, res.Kilometers, f)
	default:
		cli.DisplayConversion(out, res, c.Name(), f)
	}
	return apperrors.ExitSuccess
}

// skipInvalid reports a positional value that is not a distance. The run
// continues and its exit status is unaffected.
func (a *Application) skipInvalid(raw string, err error) {
	a.Logger.Debug("skipping distance", logging.String("value", raw), logging.Err(err))
	colors := ui.ColorProvider{}
	fmt.Fprintf(a.ErrWriter, "%sError:%s Invalid distance value '%s'. Skipping.\n", colors.Red(), colors.Reset(), raw)
}

// runDistances converts every positional distance with the selected method.
func (a *Application) runDistances(ctx context.Context, out io.Writer, f cli.Formatter) int {
	c, err := a.Factory.Get(a.Config.ConversionMethod())
	if err != nil {
		return a.handleError(err)
	}

	results := make([]conversion.Result, 0, len(a.Config.Args))
	for _, raw := range a.Config.Args {
		miles, err := cli.ParseMiles(raw)
		if err != nil {
			a.skipInvalid(raw, err)
			continue
		}
		res, err := c.Convert(ctx, miles)
		if err != nil {
			if apperrors.IsContextError(err) {
				return a.handleError(err)
			}
			a.skipInvalid(raw, err)
			continue
		}
		switch {
		case a.Config.JSONOutput:
			results = append(results, res)
		case a.Config.Quiet:
			cli.DisplayQuiet(out, res.Kilometers, f)
		default:
			cli.DisplayConversion(out, res, c.Name(), f)
		}
	}

	if a.Config.JSONOutput {
		return a.emitJSON(out, results)
	}
	return apperrors.ExitSuccess
}

// runCompare evaluates every method on every positional distance.
func (a *Application) runCompare(ctx context.Context, out io.Writer, f cli.Formatter) int {
	converters := a.Factory.All()
	comparisons := make([]conversion.Comparison, 0, len(a.Config.Args))
	for _, raw := range a.Config.Args {
		miles, err := cli.ParseMiles(raw)
		if err != nil {
			a.skipInvalid(raw, err)
			continue
		}
		cmp, err := conversion.Compare(ctx, converters, miles)
		if err != nil {
			return a.handleError(err)
		}
		switch {
		case a.Config.JSONOutput:
			comparisons = append(comparisons, cmp)
		case a.Config.Quiet:
			for _, e := range cmp.Entries {
				fmt.Fprintf(out, "%s %s\n", e.Method, f.Distance(e.Kilometers))
			}
		default:
			cli.DisplayComparison(out, cmp, f)
		}
	}

	if a.Config.JSONOutput {
		return a.emitJSON(out, comparisons)
	}
	return apperrors.ExitSuccess
}

// runSweep measures every method over the configured range. The spinner is
// shown only on an interactive error stream.
func (a *Application) runSweep(ctx context.Context, out io.Writer, f cli.Formatter) int {
	opts := a.Config.SweepOptions()
	showProgress := !a.Config.Quiet && !a.Config.JSONOutput && isTerminal(a.ErrWriter)

	a.Logger.Debug("sweep started",
		logging.Float64("from", opts.From),
		logging.Float64("to", opts.To),
		logging.Float64("step", opts.Step),
		logging.Int("samples", opts.Samples()))

	report, err := cli.RunSweep(ctx, a.Factory.All(), opts, a.ErrWriter, showProgress)
	if err != nil {
		return a.handleError(err)
	}

	switch {
	case a.Config.JSONOutput:
		return a.emitJSON(out, report)
	case a.Config.Quiet:
		for _, s := range report.Stats {
			fmt.Fprintf(out, "%s %s\n", s.Method, f.Percent(s.MaxRelError))
		}
	default:
		cli.DisplaySweep(out, report, f)
	}
	return apperrors.ExitSuccess
}

// printDetails writes the recorded counters after the main output.
func (a *Application) printDetails(out io.Writer, f cli.Formatter) {
	snap, err := a.Recorder.Snapshot()
	if err != nil {
		a.Logger.Warn("metrics unavailable", logging.Err(err))
		return
	}
	cli.DisplayDetails(out, snap, f)
}
