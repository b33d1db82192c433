// Package workload provides the built-in operations the gobench CLI can
// measure, one file per operation.
package workload

import "fmt"

// Config carries the knobs shared by the built-in workloads.
type Config struct {
	Size int    // payload size in bytes
	URL  string // target for the http workload
}

// A Workload is a measurable operation plus the volume of data a single
// invocation processes, used to derive throughput.
type Workload struct {
	Name  string
	Bytes uint64
	Fn    func()
}

// Lookup builds the named workload.
func Lookup(name string, cfg Config) (Workload, error) {
	switch name {
	case "sha256":
		return newSHA256(cfg)
	case "memcpy":
		return newMemcpy(cfg)
	case "sort":
		return newSort(cfg)
	case "json":
		return newJSON(cfg)
	case "http":
		return newHTTP(cfg)
	}
	return Workload{}, fmt.Errorf("unknown workload %q", name)
}

// Names lists the built-in workloads.
func Names() []string {
	return []string{"sha256", "memcpy", "sort", "json", "http"}
}
