// Package config builds benchmark options from the process environment.
package config

import (
	"github.com/spf13/viper"

	"gobench/bench"
)

// Environment variables recognized by Load, all optional.
const (
	EnvVerbose          = "BENCHMARK_VERBOSE"
	EnvIterations       = "BENCHMARK_ITERATIONS"
	EnvWarmupIterations = "BENCHMARK_WARMUP_ITERATIONS"
	EnvMinSamples       = "BENCHMARK_MIN_SAMPLES"
	EnvMaxSamples       = "BENCHMARK_MAX_SAMPLES"
	EnvMaxRSD           = "BENCHMARK_MAX_RSD"
	EnvMaxDuration      = "BENCHMARK_MAX_DURATION"
)

// Load returns the default options with BENCHMARK_* environment overrides
// applied. The environment is consulted exactly once, here; nothing re-reads
// it during a run.
func Load() bench.Options {
	opts := bench.DefaultOptions()

	v := viper.New()
	v.SetEnvPrefix("benchmark")
	for _, key := range []string{
		"verbose", "iterations", "warmup_iterations",
		"min_samples", "max_samples", "max_rsd", "max_duration",
	} {
		_ = v.BindEnv(key)
	}

	if v.IsSet("verbose") {
		opts.Verbose = v.GetBool("verbose")
	}
	if v.IsSet("iterations") {
		opts.Iterations = v.GetUint64("iterations")
	}
	if v.IsSet("warmup_iterations") {
		opts.WarmupIterations = v.GetUint64("warmup_iterations")
	}
	if v.IsSet("min_samples") {
		opts.MinSamples = v.GetInt("min_samples")
	}
	if v.IsSet("max_samples") {
		opts.MaxSamples = v.GetInt("max_samples")
	}
	if v.IsSet("max_rsd") {
		opts.MaxRSD = v.GetFloat64("max_rsd")
	}
	if v.IsSet("max_duration") {
		opts.MaxDuration = v.GetDuration("max_duration")
	}
	return opts
}
