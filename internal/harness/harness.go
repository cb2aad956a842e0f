// Package harness measures enqueue-to-dequeue latency through a queue.
//
// A run uses exactly two goroutines. The producer pushes tick.Now stamps,
// retrying in a tight loop while the queue is full, and waits on its Pacer
// between messages. The consumer spins on Pop and records
// tick.Now() minus the stamp. Neither loop backs off or times out: a stalled
// peer stalls the run. The latency slice belongs to the consumer until both
// goroutines have been joined.
package harness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/queue-latency-profiler/internal/logging"
	"github.com/randomizedcoder/queue-latency-profiler/internal/queue"
	"github.com/randomizedcoder/queue-latency-profiler/internal/stats"
	"github.com/randomizedcoder/queue-latency-profiler/internal/tick"
)

// ErrInvalidOptions is wrapped by Run when its options are unusable.
var ErrInvalidOptions = errors.New("harness: invalid options")

// Options configures a run.
type Options struct {
	// Messages is the number of messages sent and received.
	Messages int

	// Pacer spaces out sends. Required.
	Pacer tick.Pacer

	// Logger receives run start and finish events. Nil disables logging.
	Logger *zap.Logger
}

// Result is the outcome of a completed run.
type Result struct {
	Name    string
	Samples []int64 // nanoseconds, ascending
	Summary stats.Summary
	Elapsed time.Duration
}

// Run drives q with one producer and one consumer for opts.Messages
// messages and returns the sorted latency samples and their summary.
//
// The queue must be empty and must not be used by anyone else during the
// run. ctx is only checked before the run starts; once started, a run
// always completes all messages.
func Run(ctx context.Context, name string, q queue.Queue[int64], opts Options) (*Result, error) {
	if opts.Messages < 0 {
		return nil, fmt.Errorf("%w: messages must be >= 0, got %d", ErrInvalidOptions, opts.Messages)
	}
	if opts.Pacer == nil {
		return nil, fmt.Errorf("%w: nil pacer", ErrInvalidOptions)
	}
	if q == nil {
		return nil, fmt.Errorf("%w: nil queue", ErrInvalidOptions)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run %s: %w", name, err)
	}

	log := logging.OrNop(opts.Logger).With(zap.String("queue", name))
	log.Info("run starting",
		zap.Int("messages", opts.Messages),
		zap.Duration("send_delay", opts.Pacer.Interval()),
	)

	// Pre-sized so the consumer never allocates while timing
	latencies := make([]int64, 0, opts.Messages)

	var g errgroup.Group
	start := time.Now()

	g.Go(func() error {
		produce(q, opts.Messages, opts.Pacer)
		return nil
	})
	g.Go(func() error {
		latencies = consume(q, opts.Messages, latencies)
		return nil
	})

	// Ownership of latencies passes back to this goroutine here
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run %s: %w", name, err)
	}
	elapsed := time.Since(start)

	stats.Sort(latencies)
	summary := stats.Summarize(latencies)

	log.Info("run finished",
		zap.Duration("elapsed", elapsed),
		zap.Int("count", summary.Count),
		zap.Float64("mean_ns", summary.Mean),
		zap.Int64("p50_ns", summary.P50),
		zap.Int64("p99_ns", summary.P99),
	)

	return &Result{
		Name:    name,
		Samples: latencies,
		Summary: summary,
		Elapsed: elapsed,
	}, nil
}

func produce(q queue.Queue[int64], n int, pacer tick.Pacer) {
	for i := 0; i < n; i++ {
		// Re-stamp on every attempt: time spent blocked on a full
		// queue is back-pressure, not queueing latency
		for !q.Push(tick.Now()) {
		}
		pacer.Wait()
	}
}

func consume(q queue.Queue[int64], n int, out []int64) []int64 {
	for i := 0; i < n; i++ {
		for {
			if ts, ok := q.Pop(); ok {
				out = append(out, tick.Since(ts))
				break
			}
		}
	}
	return out
}
