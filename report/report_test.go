package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gobench/bench"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ns", FormatDuration(500*time.Nanosecond))
	assert.Equal(t, "1.50µs", FormatDuration(1500*time.Nanosecond))
	assert.Equal(t, "2.25ms", FormatDuration(2250*time.Microsecond))
	assert.Equal(t, "3.00s", FormatDuration(3*time.Second))
}

func TestPrintIncludesAllFields(t *testing.T) {
	r := &bench.Result{
		Samples:         []time.Duration{time.Millisecond, time.Millisecond},
		TotalTime:       2 * time.Millisecond,
		IterationsTotal: 2000,
		Mean:            time.Millisecond,
		RSD:             1.25,
		Min:             time.Millisecond,
		Max:             time.Millisecond,
	}

	var buf bytes.Buffer
	Print(&buf, "sha256", r)

	out := buf.String()
	assert.Contains(t, out, "sha256 results:")
	assert.Contains(t, out, "Samples:      2")
	assert.Contains(t, out, "Iterations:   2000")
	assert.Contains(t, out, "Mean:         1.00ms ± 1.25%")
	assert.Contains(t, out, "Min:          1.00ms")
}

func TestVerboseObserver(t *testing.T) {
	var buf bytes.Buffer
	observe := Verbose(&buf)

	observe(1, 2*time.Millisecond, 0)
	observe(2, 3*time.Millisecond, 12.5)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "sample 1: 2.00ms (RSD 0.00%)", lines[0])
	assert.Equal(t, "sample 2: 3.00ms (RSD 12.50%)", lines[1])
}
