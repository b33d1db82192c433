package bench

import "time"

// Instant is an opaque reading of a monotonic clock, in nanoseconds from an
// arbitrary origin. Instants are only meaningful to the Clock that produced
// them.
type Instant int64

// Clock supplies monotonic instants and elapsed-time computation. The sample
// loop depends only on this capability, so it behaves identically on native
// and wasm targets and tests can substitute a scripted clock.
type Clock interface {
	Now() Instant
	Since(start Instant) time.Duration
}
