package bench

import "time"

// Options holds the parameters for a benchmark run.
//
// Options are not validated: nonsensical combinations (MinSamples larger
// than MaxSamples, a MaxRSD outside 0..100) never hang the run, because the
// sample cap and the wall-clock budget are checked before the quality gate.
type Options struct {
	// Iterations is the number of invocations per timed batch.
	Iterations uint64

	// WarmupIterations is the number of untimed invocations performed
	// before measurement starts.
	WarmupIterations uint64

	// MinSamples is the number of batches that must be timed before the
	// RSD gate may stop the run.
	MinSamples int

	// MaxSamples is the hard cap on timed batches.
	MaxSamples int

	// MaxRSD is the relative standard deviation (in percent, 0..100)
	// below which the collected samples are considered stable.
	MaxRSD float64

	// MaxDuration is the wall-clock budget for the measurement loop,
	// warm-up excluded. Zero means no budget.
	MaxDuration time.Duration

	// RateLimit caps how many timed batches may start per second. The
	// pacing wait happens outside the timed window, so it never inflates
	// a sample. Zero disables pacing.
	RateLimit float64

	// Verbose enables per-sample diagnostics in the CLI. It has no
	// effect on the sampling algorithm itself.
	Verbose bool
}

// DefaultOptions returns the parameters used when the caller has no opinion:
// batches of a thousand invocations, a short warm-up, and a run that ends as
// soon as three samples agree within 5% or after thirty samples or three
// seconds, whichever comes first.
func DefaultOptions() Options {
	return Options{
		Iterations:       1000,
		WarmupIterations: 16,
		MinSamples:       3,
		MaxSamples:       30,
		MaxRSD:           5.0,
		MaxDuration:      3 * time.Second,
	}
}
