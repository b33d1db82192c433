package bench

import (
	"fmt"
	"time"
)

// Unit classifies what a throughput volume counts.
type Unit int

const (
	// UnitNone is an unqualified count of operations or items.
	UnitNone Unit = iota
	// UnitBytes counts bytes processed.
	UnitBytes
	// UnitBits counts bits processed.
	UnitBits
)

func (u Unit) String() string {
	switch u {
	case UnitBytes:
		return "B"
	case UnitBits:
		return "b"
	default:
		return ""
	}
}

// Result is the immutable outcome of a single benchmark run. All fields are
// derived from the collected samples; rendering a result needs nothing else.
type Result struct {
	// Samples holds the per-batch durations in collection order.
	Samples []time.Duration

	// TotalTime is the sum of all sample durations.
	TotalTime time.Duration

	// IterationsTotal is Options.Iterations times the number of samples.
	IterationsTotal uint64

	// Mean is the average batch duration.
	Mean time.Duration

	// StdDev is the sample standard deviation of the batch durations.
	StdDev time.Duration

	// RSD is StdDev relative to Mean, in percent. 0 when Mean is 0.
	RSD float64

	// Min and Max are the fastest and slowest observed batches.
	Min time.Duration
	Max time.Duration
}

func newResult(iterations uint64, samples []time.Duration, stat runningStat) *Result {
	var total time.Duration
	for _, s := range samples {
		total += s
	}
	return &Result{
		Samples:         samples,
		TotalTime:       total,
		IterationsTotal: iterations * uint64(len(samples)),
		Mean:            time.Duration(stat.mean),
		StdDev:          time.Duration(stat.stdDev()),
		RSD:             stat.rsd(),
		Min:             time.Duration(stat.min),
		Max:             time.Duration(stat.max),
	}
}

// Add merges two results measured with the same Options, recomputing the
// statistics over the combined sample sequence.
func (r *Result) Add(other *Result) *Result {
	samples := make([]time.Duration, 0, len(r.Samples)+len(other.Samples))
	samples = append(samples, r.Samples...)
	samples = append(samples, other.Samples...)

	var stat runningStat
	for _, s := range samples {
		stat.add(s)
	}
	merged := newResult(0, samples, stat)
	merged.IterationsTotal = r.IterationsTotal + other.IterationsTotal
	return merged
}

func (r *Result) String() string {
	return fmt.Sprintf("%.2fs ± %.2f%%", r.Mean.Seconds(), r.RSD)
}

// Throughput derives the rate at which size units are processed, where size
// counts the units handled by one invocation of the measured operation.
func (r *Result) Throughput(size uint64) Throughput {
	return r.throughput(size, 1, UnitNone)
}

// ThroughputBytes is Throughput with size counted in bytes per invocation.
func (r *Result) ThroughputBytes(size uint64) Throughput {
	return r.throughput(size, 1, UnitBytes)
}

// ThroughputBits is Throughput with size counted in bytes per invocation and
// the rate reported in bits.
func (r *Result) ThroughputBits(size uint64) Throughput {
	return r.throughput(size, 8, UnitBits)
}

func (r *Result) throughput(size, scale uint64, unit Unit) Throughput {
	return Throughput{
		volume: float64(size) * float64(scale) * float64(r.IterationsTotal),
		total:  r.TotalTime,
		unit:   unit,
	}
}

// Throughput is a volume of work scaled to units per second. It is a pure
// function of the Result it came from; no re-measurement happens here.
type Throughput struct {
	volume float64
	total  time.Duration
	unit   Unit
}

// Rate returns units per second. A run that measured no time carries no rate
// information, so every accessor returns 0 when the total time is zero.
func (t Throughput) Rate() float64 {
	if t.total <= 0 {
		return 0
	}
	return t.volume / t.total.Seconds()
}

// KB returns the rate in kilounits (1000) per second.
func (t Throughput) KB() float64 { return t.Rate() / 1e3 }

// MB returns the rate in megaunits per second.
func (t Throughput) MB() float64 { return t.Rate() / 1e6 }

// GB returns the rate in gigaunits per second.
func (t Throughput) GB() float64 { return t.Rate() / 1e9 }

// KiB returns the rate in kibiunits (1024) per second.
func (t Throughput) KiB() float64 { return t.Rate() / 1024 }

// MiB returns the rate in mebiunits per second.
func (t Throughput) MiB() float64 { return t.Rate() / (1024 * 1024) }

// GiB returns the rate in gibiunits per second.
func (t Throughput) GiB() float64 { return t.Rate() / (1024 * 1024 * 1024) }

// Kbit returns the rate in kilobits per second, for volumes counted in bytes.
func (t Throughput) Kbit() float64 { return t.Rate() * 8 / 1e3 }

// Mbit returns the rate in megabits per second, for volumes counted in bytes.
func (t Throughput) Mbit() float64 { return t.Rate() * 8 / 1e6 }

// Gbit returns the rate in gigabits per second, for volumes counted in bytes.
func (t Throughput) Gbit() float64 { return t.Rate() * 8 / 1e9 }

// String renders the rate at the magnitude a human would pick.
func (t Throughput) String() string {
	rate := t.Rate()
	switch {
	case rate < 1e3:
		return fmt.Sprintf("%.2f %s/s", rate, t.unit)
	case rate < 1e6:
		return fmt.Sprintf("%.2f K%s/s", t.KB(), t.unit)
	case rate < 1e9:
		return fmt.Sprintf("%.2f M%s/s", t.MB(), t.unit)
	default:
		return fmt.Sprintf("%.2f G%s/s", t.GB(), t.unit)
	}
}
