package bench

import "runtime"

var sink any

// KeepAlive publishes v to a package-level sink so the compiler cannot prove
// the measured computation is unused and eliminate the work being timed.
func KeepAlive(v any) {
	sink = v
	runtime.KeepAlive(v)
}
