package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gobench/bench"
	"gobench/config"
	"gobench/progress"
	"gobench/report"
	"gobench/workload"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Measure a built-in workload",
	Long: `Measure a built-in workload and report mean time, dispersion and
throughput.

Examples:
  # Hash 64 KiB blocks with default sampling
  gobench run --op sha256

  # Copy 1 MiB blocks, stop once 5 samples agree within 2%
  gobench run --op memcpy --size 1048576 --min-samples 5 --max-rsd 2

  # Fetch a URL for at most one second, paced to 10 batches/s
  gobench run --op http --url http://localhost:8080/ --max-duration 1s --rate-limit 10

  # Output results as JSON
  gobench run --op json --json
`,
	Run: runBenchmark,
}

func init() {
	flags := runCmd.Flags()
	flags.String("op", "sha256", "Workload to measure: "+strings.Join(workload.Names(), ", "))
	flags.Int("size", 64*1024, "Payload size in bytes")
	flags.String("url", "", "Target URL for the http workload")
	flags.Uint64("iterations", 0, "Invocations per timed batch")
	flags.Uint64("warmup-iterations", 0, "Untimed invocations before measurement")
	flags.Int("min-samples", 0, "Samples required before the RSD gate may stop the run")
	flags.Int("max-samples", 0, "Hard cap on timed batches")
	flags.Float64("max-rsd", 0, "Relative standard deviation (percent) considered stable")
	flags.Duration("max-duration", 0, "Wall-clock budget for the measurement loop")
	flags.Float64("rate-limit", 0, "Max batches started per second (0 means no limit)")
	flags.Bool("verbose", false, "Report every sample as it is collected")
	flags.Bool("json", false, "Output results as JSON")
	flags.Bool("no-progress", false, "Disable the progress bar")
	flags.Bool("tune", false, "Raise process resource limits before measuring")
	rootCmd.AddCommand(runCmd)
}

func runBenchmark(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()

	// Environment overrides apply first, explicit flags win.
	opts := config.Load()
	if flags.Changed("iterations") {
		opts.Iterations, _ = flags.GetUint64("iterations")
	}
	if flags.Changed("warmup-iterations") {
		opts.WarmupIterations, _ = flags.GetUint64("warmup-iterations")
	}
	if flags.Changed("min-samples") {
		opts.MinSamples, _ = flags.GetInt("min-samples")
	}
	if flags.Changed("max-samples") {
		opts.MaxSamples, _ = flags.GetInt("max-samples")
	}
	if flags.Changed("max-rsd") {
		opts.MaxRSD, _ = flags.GetFloat64("max-rsd")
	}
	if flags.Changed("max-duration") {
		opts.MaxDuration, _ = flags.GetDuration("max-duration")
	}
	if flags.Changed("rate-limit") {
		opts.RateLimit, _ = flags.GetFloat64("rate-limit")
	}
	if flags.Changed("verbose") {
		opts.Verbose, _ = flags.GetBool("verbose")
	}

	op, _ := flags.GetString("op")
	size, _ := flags.GetInt("size")
	url, _ := flags.GetString("url")
	jsonOutput, _ := flags.GetBool("json")
	noProgress, _ := flags.GetBool("no-progress")
	tune, _ := flags.GetBool("tune")

	if size <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --size must be positive\n")
		os.Exit(1)
	}

	if tune {
		if err := workload.Tune(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	wl, err := workload.Lookup(op, workload.Config{Size: size, URL: url})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := bench.New()

	var bar *progress.Bar
	if !noProgress && !jsonOutput {
		total := opts.MaxSamples
		if total < 1 {
			total = 1
		}
		bar = progress.NewBar(total).SetCaption(wl.Name)
	}
	verbose := report.Verbose(os.Stderr)
	b.Observe(func(n int, d time.Duration, rsd float64) {
		if bar != nil {
			bar.Sample()
		}
		if opts.Verbose {
			verbose(n, d, rsd)
		}
	})

	result := b.Run(opts, wl.Fn)
	if bar != nil {
		bar.Finish()
	}

	if jsonOutput {
		outputJSON(wl, result)
		return
	}

	fmt.Println()
	report.Print(os.Stdout, wl.Name, result)
	if wl.Bytes > 0 {
		report.PrintThroughput(os.Stdout, result.ThroughputBytes(wl.Bytes))
	} else {
		// No byte volume: report invocations per second instead.
		report.PrintThroughput(os.Stdout, result.Throughput(1))
	}
}

type jsonResult struct {
	Workload        string  `json:"workload"`
	Samples         []int64 `json:"samples_ns"`
	TotalTimeNs     int64   `json:"total_time_ns"`
	IterationsTotal uint64  `json:"iterations_total"`
	MeanNs          int64   `json:"mean_ns"`
	StdDevNs        int64   `json:"stddev_ns"`
	RSD             float64 `json:"rsd_percent"`
	MinNs           int64   `json:"min_ns"`
	MaxNs           int64   `json:"max_ns"`
	Throughput      float64 `json:"throughput_units_per_sec"`
}

func outputJSON(wl workload.Workload, r *bench.Result) {
	samples := make([]int64, len(r.Samples))
	for i, s := range r.Samples {
		samples[i] = s.Nanoseconds()
	}
	size := wl.Bytes
	if size == 0 {
		size = 1
	}
	doc := jsonResult{
		Workload:        wl.Name,
		Samples:         samples,
		TotalTimeNs:     r.TotalTime.Nanoseconds(),
		IterationsTotal: r.IterationsTotal,
		MeanNs:          r.Mean.Nanoseconds(),
		StdDevNs:        r.StdDev.Nanoseconds(),
		RSD:             r.RSD,
		MinNs:           r.Min.Nanoseconds(),
		MaxNs:           r.Max.Nanoseconds(),
		Throughput:      r.Throughput(size).Rate(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
