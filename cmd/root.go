package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gobench/workload"
)

var rootCmd = &cobra.Command{
	Use:   "gobench",
	Short: "Micro-benchmark built-in workloads with adaptive sampling",
	Long: `gobench times an operation in batches and keeps collecting samples until
the measurements are stable (low relative standard deviation) or a sample
cap or wall-clock budget is reached.

Defaults can be overridden per run with flags, or process-wide with
BENCHMARK_* environment variables (BENCHMARK_ITERATIONS,
BENCHMARK_MAX_SAMPLES, BENCHMARK_MAX_RSD, BENCHMARK_MAX_DURATION,
BENCHMARK_VERBOSE, ...).`,
	SilenceUsage: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in workloads",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range workload.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
