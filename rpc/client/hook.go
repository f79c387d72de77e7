package client

import (
	"context"
	"errors"
	"fmt"
	"github.com/VictoriaMetrics/metrics"
	"github.com/puzpuzpuz/xsync/v3"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/redis/go-redis/v9"
	"io"
	"net"
	"sort"
	"strings"
	"time"
)

// MetricsHook is a go-redis hook that records every command sent to the store.
//
// Counters and histograms are exported through VictoriaMetrics (see
// WritePrometheus), per command latency timers with percentiles are kept in
// rcrowley/go-metrics timers (see Stats).
type MetricsHook struct {
	timers *xsync.MapOf[string, gometrics.Timer]
}

// NewMetricsHook creates a new hook without any recorded commands
func NewMetricsHook() *MetricsHook {
	return &MetricsHook{
		timers: xsync.NewMapOf[string, gometrics.Timer](),
	}
}

// CommandStats holds the latency statistics of a single command
type CommandStats struct {
	Command string
	Count   int64
	Mean    time.Duration
	P50     time.Duration
	P99     time.Duration
	Max     time.Duration
}

// --------------------------------------------------------------------------
// redis.Hook implementation
// --------------------------------------------------------------------------

func (h *MetricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			metrics.GetOrCreateCounter(`ookv_dial_errors_total`).Inc()
			Logger.Warningf("cannot dial %s: %v", addr, err)
			return nil, err
		}
		Logger.Debugf("opened connection to %s", addr)
		return conn, nil
	}
}

func (h *MetricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.observe(cmd.Name(), time.Since(start), err)
		return err
	}
}

func (h *MetricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		if len(cmds) > 0 {
			// the pipeline is one round trip, every command gets its share
			d := time.Since(start) / time.Duration(len(cmds))
			for _, cmd := range cmds {
				h.observe(cmd.Name(), d, cmd.Err())
			}
		}
		return err
	}
}

// observe records a single command
func (h *MetricsHook) observe(name string, d time.Duration, err error) {
	name = strings.ToLower(name)

	metrics.GetOrCreateCounter(fmt.Sprintf(`ookv_commands_total{command=%q}`, name)).Inc()
	metrics.GetOrCreateHistogram(fmt.Sprintf(`ookv_command_duration_seconds{command=%q}`, name)).Update(d.Seconds())

	if err != nil && !errors.Is(err, redis.Nil) {
		metrics.GetOrCreateCounter(fmt.Sprintf(`ookv_command_errors_total{command=%q}`, name)).Inc()
		Logger.Debugf("%s failed after %s: %v", name, d, err)
	}

	timer, _ := h.timers.LoadOrCompute(name, func() gometrics.Timer {
		return gometrics.NewTimer()
	})
	timer.Update(d)
}

// --------------------------------------------------------------------------
// Reporting
// --------------------------------------------------------------------------

// Stats returns the latency statistics of every recorded command, sorted by name.
func (h *MetricsHook) Stats() []CommandStats {
	var stats []CommandStats
	h.timers.Range(func(name string, timer gometrics.Timer) bool {
		s := timer.Snapshot()
		ps := s.Percentiles([]float64{0.5, 0.99})
		stats = append(stats, CommandStats{
			Command: name,
			Count:   s.Count(),
			Mean:    time.Duration(s.Mean()),
			P50:     time.Duration(ps[0]),
			P99:     time.Duration(ps[1]),
			Max:     time.Duration(s.Max()),
		})
		return true
	})
	sort.Slice(stats, func(i, j int) bool { return stats[i].Command < stats[j].Command })
	return stats
}

// Reset discards all recorded latency statistics
func (h *MetricsHook) Reset() {
	h.timers.Range(func(name string, timer gometrics.Timer) bool {
		timer.Stop()
		return true
	})
	h.timers.Clear()
}

// WritePrometheus writes all ooKV metrics in the Prometheus text format to w
func WritePrometheus(w io.Writer) {
	metrics.WritePrometheus(w, false)
}
