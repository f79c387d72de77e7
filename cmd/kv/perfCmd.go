package kv

import (
	"context"
	"encoding/csv"
	"fmt"
	"github.com/ValentinKolb/ooKV/cmd/util"
	"github.com/ValentinKolb/ooKV/lib/codec"
	"github.com/ValentinKolb/ooKV/lib/collection"
	"github.com/ValentinKolb/ooKV/lib/key"
	"github.com/ValentinKolb/ooKV/lib/om"
	"github.com/ValentinKolb/ooKV/rpc/client"
	"github.com/ValentinKolb/ooKV/rpc/common"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"
)

var (
	// PerfCmd runs benchmarks of the mapper operations against a store
	PerfCmd = &cobra.Command{
		Use:      "perf",
		Short:    "Performance testing tool for the object mapper",
		Long:     "Runs benchmarks of the mapper operations against the configured store and prints the latency of every command sent.",
		RunE:     run,
		PreRunE:  processPerfConfig,
		PostRunE: util.CloseClient,
	}
	perfKeyPrefix        = "__ookv_perf"
	perfLargeValueSizeKB = 100
	perfNumThreads       = 10
	perfKeySpread        = 100
	perfSkip             = make([]string, 0)
)

// perfTest is a single benchmark. prepare runs once per key before the
// benchmark, op runs in parallel for keys chosen round robin.
type perfTest struct {
	name    string
	prepare func(ctx context.Context, name string) error
	op      func(ctx context.Context, name string, i int) error
}

func init() {
	// add flags
	key := "skip"
	PerfCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. str-set,str-get)"))
	key = "threads"
	PerfCmd.Flags().Int(key, 10, util.WrapString("Number of threads to use for the benchmark"))
	key = "large-value-size"
	PerfCmd.Flags().Int(key, 100, util.WrapString("How large the value for the str-set-large test should be (in KB)"))
	key = "keys"
	PerfCmd.Flags().Int(key, 100, util.WrapString("How many different keys to use for the tests"))
	key = "csv"
	PerfCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
	key = "metrics"
	PerfCmd.Flags().Bool(key, false, util.WrapString("Print all collected metrics in the Prometheus text format"))
}

func processPerfConfig(cmd *cobra.Command, args []string) error {
	if err := util.SetupClient(cmd, args); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfLargeValueSizeKB = viper.GetInt("large-value-size")
	perfKeySpread = max(1, viper.GetInt("keys"))
	perfNumThreads = max(1, viper.GetInt("threads"))
	perfSkip = strings.Split(viper.GetString("skip"), ",")

	return nil
}

// perfTests returns all benchmarks in the order they run
func perfTests() []perfTest {
	largeValue := strings.Repeat("x", perfLargeValueSizeKB*1024)

	return []perfTest{
		{
			name: "str-set",
			op: func(ctx context.Context, name string, i int) error {
				return collection.NewString(name, util.Client).Set(ctx, i)
			},
		},
		{
			name: "str-set-large",
			op: func(ctx context.Context, name string, _ int) error {
				return collection.NewString(name, util.Client, key.WithCodec(codec.String)).Set(ctx, largeValue)
			},
		},
		{
			name: "str-get",
			prepare: func(ctx context.Context, name string) error {
				return collection.NewString(name, util.Client).Set(ctx, "test")
			},
			op: func(ctx context.Context, name string, _ int) error {
				_, err := collection.NewString(name, util.Client).Get(ctx)
				return err
			},
		},
		{
			name: "counter-incr",
			op: func(ctx context.Context, name string, _ int) error {
				_, err := collection.NewCounter(name, util.Client).Incr(ctx, 1)
				return err
			},
		},
		{
			name: "list-push-pop",
			op: func(ctx context.Context, name string, i int) error {
				l := collection.NewList(name, util.Client, key.WithCodec(codec.Int))
				if _, err := l.RPush(ctx, i); err != nil {
					return err
				}
				_, err := l.LPop(ctx)
				if err != nil && !isEmpty(err) {
					return err
				}
				return nil
			},
		},
		{
			name: "set-add",
			op: func(ctx context.Context, name string, i int) error {
				_, err := collection.NewSet(name, util.Client, key.WithCodec(codec.Int)).Add(ctx, i%1000)
				return err
			},
		},
		{
			name: "zset-incr",
			op: func(ctx context.Context, name string, i int) error {
				_, err := collection.NewSortedSet(name, util.Client).Incr(ctx, "member-"+strconv.Itoa(i%100), 1)
				return err
			},
		},
		{
			name: "hash-set",
			op: func(ctx context.Context, name string, i int) error {
				return collection.NewDict(name, util.Client, key.WithCodec(codec.JSON)).
					Set(ctx, "field-"+strconv.Itoa(i%100), map[string]any{"i": i, "at": time.Now().Unix()})
			},
		},
		{
			name: "mixed",
			prepare: func(ctx context.Context, name string) error {
				return collection.NewString(name, util.Client).Set(ctx, 0)
			},
			op: func(ctx context.Context, name string, i int) error {
				s := collection.NewString(name, util.Client)
				var err error
				switch i % 4 {
				case 0: // set
					err = s.Set(ctx, i)
				case 1: // get
					_, err = s.Get(ctx)
				case 2: // ttl
					_, _, err = s.TTL(ctx)
				case 3: // type
					_, err = s.Representation(ctx)
				}
				return err
			},
		},
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	config := util.GetClientConfig()

	fmt.Println("Performance testing tool for the object mapper")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(config.String())
	fmt.Printf("Threads: %d\n", perfNumThreads)
	fmt.Println()

	fmt.Println("starting tests...")

	// discard the commands of the connection check
	util.Hook.Reset()

	// Create results map
	results := make(map[string]testing.BenchmarkResult)
	for _, test := range perfTests() {
		result := runPerfTest(ctx, test)
		results[test.name] = result
		printResult(test.name, result)
	}

	// Print command latencies
	fmt.Println()
	fmt.Println("Command latencies:")
	printCommandStats(util.Hook.Stats())

	if printMetrics, _ := cmd.Flags().GetBool("metrics"); printMetrics {
		fmt.Println()
		client.WritePrometheus(os.Stdout)
	}

	// Write results to csv is specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, results, config); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	return nil
}

// runPerfTest runs a single benchmark (an empty result if it is skipped)
func runPerfTest(ctx context.Context, test perfTest) testing.BenchmarkResult {
	if shouldSkip(test.name) {
		return testing.BenchmarkResult{}
	}

	return testing.Benchmark(func(b *testing.B) {
		// prepare keys
		getKey, iter := getKeys(test.name)

		// set keys
		if test.prepare != nil {
			iter(func(k string) {
				if err := test.prepare(ctx, k); err != nil {
					log.Printf("(%s) - error preparing key: %v\n", test.name, err)
				}
			})
		}

		// cleanup
		b.Cleanup(func() {
			iter(func(k string) {
				if err := key.New(k, util.Client).Delete(ctx); err != nil {
					log.Printf("(%s) - error deleting key: %v\n", test.name, err)
				}
			})
		})

		b.SetParallelism(perfNumThreads)

		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				if err := test.op(ctx, getKey(counter), counter); err != nil {
					log.Printf("(%s) - error: %v\n", test.name, err)
				}
				counter++
			}
		})
	})
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(test string) bool {
	return slices.Contains(perfSkip, test)
}

func isEmpty(err error) bool {
	return errors.Is(err, om.ErrEmpty)
}

// creates an array of test keys and functions to work with them
func getKeys(prefix string) (func(int) string, func(func(string))) {
	keys := make([]string, perfKeySpread)
	for i := 0; i < perfKeySpread; i++ {
		keys[i] = fmt.Sprintf("%s-%s-%d", perfKeyPrefix, prefix, i)
	}

	// Function to get a key by index (with wraparound)
	getKey := func(i int) string {
		return keys[i%perfKeySpread]
	}

	// Function to iterate over all keys and apply a function to each
	iterateKeys := func(fn func(string)) {
		for _, key := range keys {
			fn(key)
		}
	}

	return getKey, iterateKeys
}

// printResult prints the result of a benchmark test in a formatted way
func printResult(test string, result testing.BenchmarkResult) {
	if result.NsPerOp() == 0 {
		fmt.Printf("%-20sskipped\n", test)
		return
	}

	nsPerOp := math.Max(float64(result.NsPerOp()), 1) // prevent division by zero
	opsPerSec := 1.0 / (nsPerOp / 1e9)

	// Print the formatted result
	fmt.Printf("%-20s%.0fns/op (%s/op)\t%.0f ops/sec\n", test, nsPerOp, time.Duration(nsPerOp), opsPerSec)
}

// printCommandStats prints the latency statistics recorded by the client hook
func printCommandStats(stats []client.CommandStats) {
	fmt.Printf("%-12s%10s%12s%12s%12s%12s\n", "command", "calls", "mean", "p50", "p99", "max")
	for _, s := range stats {
		fmt.Printf("%-12s%10d%12s%12s%12s%12s\n", s.Command, s.Count,
			s.Mean.Round(time.Microsecond), s.P50.Round(time.Microsecond),
			s.P99.Round(time.Microsecond), s.Max.Round(time.Microsecond))
	}
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results map[string]testing.BenchmarkResult, config common.ClientConfig) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"Test", "NsPerOp", "DurationPerOp", "OpsPerSec", "Skipped",
		"Endpoint", "DB", "TimeoutSec", "RetryCount", "PoolSize",
		"Threads", "LargeValueSizeKB", "Keys Count",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	// Write test results
	for test, result := range results {
		var nsPerOp float64
		var opsPerSec float64
		var skipped string

		if result.NsPerOp() == 0 {
			skipped = "true"
		} else {
			skipped = "false"
			nsPerOp = math.Max(float64(result.NsPerOp()), 1)
			opsPerSec = 1.0 / (nsPerOp / 1e9)
		}

		row := []string{
			test,
			fmt.Sprintf("%.0f", nsPerOp),
			time.Duration(nsPerOp).String(),
			fmt.Sprintf("%.0f", opsPerSec),
			skipped,
			config.Endpoint,
			strconv.Itoa(config.DB),
			strconv.Itoa(config.TimeoutSecond),
			strconv.Itoa(config.RetryCount),
			strconv.Itoa(config.PoolSize),
			strconv.Itoa(perfNumThreads),
			strconv.Itoa(perfLargeValueSizeKB),
			strconv.Itoa(perfKeySpread),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for test %s: %v", test, err)
		}
	}

	return nil
}
