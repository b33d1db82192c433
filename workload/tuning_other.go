//go:build !linux
// +build !linux

package workload

import "runtime/debug"

// Tune adjusts what it can on platforms without rlimit control: only the Go
// runtime's thread cap.
func Tune() error {
	debug.SetMaxThreads(8000)
	return nil
}
