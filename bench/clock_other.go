//go:build !linux
// +build !linux

package bench

import "time"

// goClock falls back to the monotonic reading the runtime embeds in
// time.Time. It is the only portable source on darwin, windows and js/wasm.
type goClock struct {
	base time.Time
}

func (c *goClock) Now() Instant { return Instant(time.Since(c.base)) }

func (c *goClock) Since(start Instant) time.Duration {
	return time.Duration(c.Now() - start)
}

func newSystemClock() Clock { return &goClock{base: time.Now()} }
