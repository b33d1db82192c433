package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runFixed produces a Result whose every batch took exactly d.
func runFixed(t *testing.T, iterations uint64, batches int, d time.Duration) *Result {
	t.Helper()
	clock := &fakeClock{}
	b := NewWithClock(clock)
	opts := Options{
		Iterations: iterations,
		MinSamples: batches,
		MaxSamples: batches,
		MaxRSD:     100,
	}
	step := time.Duration(uint64(d) / iterations)
	result := b.Run(opts, func() { clock.advance(step) })
	require.Len(t, result.Samples, batches)
	return result
}

func TestThroughputUnitsPerSecond(t *testing.T) {
	// 1000 invocations per batch, each batch exactly one second, one
	// million bytes per invocation: one gigabyte per second, regardless
	// of how many batches were collected.
	result := runFixed(t, 1000, 3, time.Second)

	tp := result.Throughput(1_000_000)
	assert.InDelta(t, 1e9, tp.Rate(), 1)
	assert.InDelta(t, 1.0, tp.GB(), 1e-9)
}

func TestThroughputLadder(t *testing.T) {
	result := runFixed(t, 1000, 2, time.Second)

	tp := result.ThroughputBytes(1024)
	rate := tp.Rate()
	assert.InDelta(t, 1024*1000, rate, 1)
	assert.InDelta(t, rate/1e3, tp.KB(), 1e-6)
	assert.InDelta(t, rate/1024, tp.KiB(), 1e-6)
	assert.InDelta(t, rate/(1024*1024), tp.MiB(), 1e-9)
	assert.InDelta(t, rate*8/1e6, tp.Mbit(), 1e-6)
}

func TestThroughputBitsScalesVolume(t *testing.T) {
	result := runFixed(t, 1, 1, time.Second)

	bytes := result.ThroughputBytes(1000)
	bits := result.ThroughputBits(1000)
	assert.InDelta(t, bytes.Rate()*8, bits.Rate(), 1e-6)
}

func TestThroughputString(t *testing.T) {
	result := runFixed(t, 1, 1, time.Second)

	assert.Equal(t, "500.00 B/s", result.ThroughputBytes(500).String())
	assert.Equal(t, "5.00 KB/s", result.ThroughputBytes(5_000).String())
	assert.Equal(t, "5.00 MB/s", result.ThroughputBytes(5_000_000).String())
	assert.Equal(t, "5.00 GB/s", result.ThroughputBytes(5_000_000_000).String())
	assert.Equal(t, "5.00 K/s", result.Throughput(5_000).String())
	assert.Equal(t, "40.00 Kb/s", result.ThroughputBits(5_000).String())
}

func TestThroughputZeroTotalTime(t *testing.T) {
	r := &Result{IterationsTotal: 10}

	tp := r.Throughput(1024)
	assert.Zero(t, tp.Rate())
	assert.Zero(t, tp.GiB())
	assert.Equal(t, "0.00 /s", tp.String())
}

func TestResultAdd(t *testing.T) {
	a := runFixed(t, 10, 2, time.Second)
	b := runFixed(t, 10, 3, 2*time.Second)

	merged := a.Add(b)
	require.Len(t, merged.Samples, 5)
	assert.Equal(t, 8*time.Second, merged.TotalTime)
	assert.Equal(t, uint64(50), merged.IterationsTotal)
	assert.Equal(t, time.Second, merged.Min)
	assert.Equal(t, 2*time.Second, merged.Max)
	// 1.6s mean over {1,1,2,2,2}.
	assert.InDelta(t, float64(1600*time.Millisecond), float64(merged.Mean), 1)
}

func TestResultString(t *testing.T) {
	result := runFixed(t, 1, 2, 1500*time.Millisecond)

	assert.Equal(t, "1.50s ± 0.00%", result.String())
}
