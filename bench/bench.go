// Package bench measures the execution cost of an operation with enough
// statistical rigor to produce a stable estimate, while bounding total
// measurement time. The operation is invoked in timed batches; sampling
// stops once the batch durations agree within a relative-standard-deviation
// tolerance, or when a sample cap or wall-clock budget is hit.
package bench

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// SampleFunc observes one collected sample: its 1-based index, the batch
// duration, and the RSD over all samples so far. Observer time is excluded
// from the sample but counts toward the wall-clock budget.
type SampleFunc func(n int, d time.Duration, rsd float64)

// Bench is a benchmarking environment bound to a monotonic clock.
type Bench struct {
	clock   Clock
	observe SampleFunc
}

// New creates a benchmarking environment using the platform clock.
func New() *Bench {
	return &Bench{clock: newSystemClock()}
}

// NewWithClock creates a benchmarking environment with a caller-supplied
// clock.
func NewWithClock(c Clock) *Bench {
	return &Bench{clock: c}
}

// Observe registers fn to be called after every collected sample. A nil fn
// removes the observer. The observer never influences the stopping decision.
func (b *Bench) Observe(fn SampleFunc) {
	b.observe = fn
}

// runOnce times one batch of iterations invocations. The operation is called
// back to back with no timer reads in between, amortizing timer overhead
// across the whole batch.
func (b *Bench) runOnce(iterations uint64, fn func()) time.Duration {
	start := b.clock.Now()
	for i := uint64(0); i < iterations; i++ {
		fn()
	}
	return b.clock.Since(start)
}

// Run measures fn under opts and returns the computed statistics.
//
// The loop stops on the first condition that holds after a batch, checked in
// this order: the sample cap was reached; the wall-clock budget (measured
// from the end of warm-up) was spent; at least MinSamples were collected and
// their RSD is within MaxRSD. Because the first two are checked before the
// quality gate, Run terminates for any Options with a finite MaxSamples or a
// set MaxDuration, even when the operation's timing never converges. A budget
// stop may leave fewer than MinSamples; precision loses to the budget.
//
// Failures inside fn are not intercepted: a panic unwinds through Run to the
// caller unmodified.
func (b *Bench) Run(opts Options, fn func()) *Result {
	// A cap below one still times a single batch.
	maxSamples := opts.MaxSamples
	if maxSamples < 1 {
		maxSamples = 1
	}

	for i := uint64(0); i < opts.WarmupIterations; i++ {
		fn()
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	samples := make([]time.Duration, 0, maxSamples)
	var stat runningStat

	// The budget clock starts here: warm-up is free.
	start := b.clock.Now()
	for {
		if limiter != nil {
			_ = limiter.Wait(context.Background())
		}
		d := b.runOnce(opts.Iterations, fn)
		samples = append(samples, d)
		stat.add(d)
		if b.observe != nil {
			b.observe(len(samples), d, stat.rsd())
		}

		if len(samples) >= maxSamples {
			break
		}
		if opts.MaxDuration > 0 && b.clock.Since(start) >= opts.MaxDuration {
			break
		}
		if len(samples) >= opts.MinSamples && stat.rsd() <= opts.MaxRSD {
			break
		}
	}

	return newResult(opts.Iterations, samples, stat)
}
