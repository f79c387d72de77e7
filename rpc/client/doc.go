// Package client creates the go-redis clients used by the object mapper and
// instruments them.
//
// The package focuses on:
//   - Building a client from a common.ClientConfig and checking the connection
//   - Recording every command sent to the store (counts, errors, latencies)
//   - Wrapping connection failures with the endpoint they refer to
//
// Key Components:
//
//   - NewRedisClient: Factory function that validates the configuration, creates
//     a *redis.Client, installs an optional MetricsHook and sends a PING. The
//     returned client is meant to be shared by all keys of an application.
//
//   - MetricsHook: A redis.Hook that exports per command counters and latency
//     histograms through VictoriaMetrics (ookv_commands_total,
//     ookv_command_errors_total, ookv_command_duration_seconds) and keeps
//     per command timers with percentiles for the perf command of the CLI.
//     redis.Nil replies are not counted as errors.
//
// Usage Example:
//
//	hook := client.NewMetricsHook()
//	c, err := client.NewRedisClient(ctx, common.DefaultClientConfig(), hook)
//	if err != nil {
//	  return err
//	}
//	defer c.Close()
//
//	counter := collection.NewCounter("visits", c)
//	counter.Incr(ctx, 1)
//
//	for _, s := range hook.Stats() {
//	  fmt.Printf("%s: %d calls, p99 %s\n", s.Command, s.Count, s.P99)
//	}
//
// Thread Safety:
//
//	The client and the hook are safe for concurrent use from multiple goroutines.
package client
