// Package report renders benchmark results for humans. Everything printed
// here is derived from the public Result fields.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"gobench/bench"
)

// FormatDuration formats a duration at a precision a human can compare.
func FormatDuration(d time.Duration) string {
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1000.0)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000.0)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// Print writes the summary of a benchmark run.
func Print(w io.Writer, name string, r *bench.Result) {
	title := color.New(color.FgCyan, color.Bold)
	title.Fprintf(w, "%s results:\n", name)
	fmt.Fprintf(w, "  Samples:      %d\n", len(r.Samples))
	fmt.Fprintf(w, "  Iterations:   %d\n", r.IterationsTotal)
	fmt.Fprintf(w, "  Total Time:   %s\n", FormatDuration(r.TotalTime))
	fmt.Fprintf(w, "  Mean:         %s ± %.2f%%\n", FormatDuration(r.Mean), r.RSD)
	fmt.Fprintf(w, "  Min:          %s\n", FormatDuration(r.Min))
	fmt.Fprintf(w, "  Max:          %s\n", FormatDuration(r.Max))
}

// PrintThroughput writes the derived rate line.
func PrintThroughput(w io.Writer, t bench.Throughput) {
	fmt.Fprintf(w, "  Throughput:   %s\n", t)
}

// Verbose returns an observer that reports each sample as it lands.
func Verbose(w io.Writer) bench.SampleFunc {
	return func(n int, d time.Duration, rsd float64) {
		fmt.Fprintf(w, "sample %d: %s (RSD %.2f%%)\n", n, FormatDuration(d), rsd)
	}
}
