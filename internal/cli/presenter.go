package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agbru/fibkm/internal/conversion"
	"github.com/agbru/fibkm/internal/metrics"
	"github.com/agbru/fibkm/internal/ui"
)

// padRight returns s followed by spaces up to the given visible width.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// displayTable writes an aligned table. Column widths are computed on the
// plain text so colour codes never shift the layout. The first column is
// highlighted.
func displayTable(out io.Writer, headers []string, rows [][]string) {
	t := ui.GetCurrentTheme()
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(t.Bold + h + t.Reset)
		if i < len(headers)-1 {
			b.WriteString(padRight("", widths[i]-utf8.RuneCountInString(h)))
		}
	}
	fmt.Fprintln(out, b.String())

	for _, row := range rows {
		b.Reset()
		for i, cell := range row {
			if i > 0 {
				b.WriteString("   ")
			}
			padded := cell
			if i < len(row)-1 {
				padded = padRight(cell, widths[i])
			}
			if i == 0 {
				b.WriteString(t.Primary + padded + t.Reset)
			} else {
				b.WriteString(padded)
			}
		}
		fmt.Fprintln(out, b.String())
	}
}

// DisplayComparison writes every method's answer for one distance together
// with its absolute and relative error.
func DisplayComparison(out io.Writer, cmp conversion.Comparison, f Formatter) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "\n%s--- %s miles (exact %s km) ---%s\n",
		t.Warning, f.Distance(cmp.Miles), f.Distance(cmp.Exact), t.Reset)

	rows := make([][]string, 0, len(cmp.Entries))
	for _, e := range cmp.Entries {
		rows = append(rows, []string{
			e.Name,
			f.Distance(e.Kilometers),
			f.Distance(e.AbsError),
			f.Percent(e.RelError),
			string(e.Outcome),
		})
	}
	displayTable(out, []string{"Method", "Kilometers", "Abs. error", "Rel. error", "Outcome"}, rows)
}

// DisplaySweep writes the per-method error statistics of a sweep.
func DisplaySweep(out io.Writer, report conversion.SweepReport, f Formatter) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "\n%s--- Error sweep from %s to %s miles, step %s (%s samples) ---%s\n",
		t.Warning, f.Distance(report.From), f.Distance(report.To), f.Distance(report.Step),
		f.Count(uint64(report.Samples)), t.Reset)

	rows := make([][]string, 0, len(report.Stats))
	for _, s := range report.Stats {
		rows = append(rows, []string{
			s.Name,
			f.Distance(s.MaxAbsError),
			f.Distance(s.MeanAbsError),
			f.Percent(s.MaxRelError),
			f.Percent(s.MeanRelError),
			f.Distance(s.WorstMiles),
			f.Count(uint64(s.Fallbacks)),
		})
	}
	displayTable(out, []string{"Method", "Max abs.", "Mean abs.", "Max rel.", "Mean rel.", "Worst at", "Fallbacks"}, rows)
}

// DisplayDetails writes the counters recorded during the run.
func DisplayDetails(out io.Writer, snap metrics.Snapshot, f Formatter) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "\n%s--- Conversion Details ---%s\n", t.Warning, t.Reset)
	if len(snap.Methods) == 0 {
		fmt.Fprintln(out, "No conversions recorded.")
	} else {
		rows := make([][]string, 0, len(snap.Methods))
		for _, m := range snap.Methods {
			rows = append(rows, []string{
				m.Method,
				f.Count(m.Conversions),
				f.Count(m.Failures),
				f.Count(m.Fallbacks),
				f.Percent(m.MeanRelError),
				formatOutcomes(m.Outcomes),
			})
		}
		displayTable(out, []string{"Method", "Conversions", "Failures", "Fallbacks", "Mean rel.", "Outcomes"}, rows)
	}
	fmt.Fprintf(out, "%sHeap in use: %s bytes, GC cycles: %s%s\n",
		t.Secondary, f.Count(snap.HeapAlloc), f.Count(snap.NumGC), t.Reset)
}

// formatOutcomes renders an outcome histogram as "a=1 b=2", sorted by name.
func formatOutcomes(outcomes map[string]uint64) string {
	names := make([]string, 0, len(outcomes))
	for name := range outcomes {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, outcomes[name])
	}
	return strings.Join(parts, " ")
}
