package combined_test

import (
	"sync/atomic"
	"testing"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/randomizedcoder/queue-latency-profiler/internal/queue"
	"github.com/randomizedcoder/queue-latency-profiler/internal/tick"
)

// ============================================================================
// Comparison: our SPSC RingBuffer vs GuardedQueue vs go-lock-free-ring (MPSC)
// ============================================================================
//
// KEY DIFFERENCE:
// - RingBuffer: SPSC, modulo indices, one slot kept free
// - GuardedQueue: any number of goroutines, one mutex
// - go-lock-free-ring: MPSC with sharding, optimized for many producers
//
// Each benchmark pushes b.N timestamps from one producer while one consumer
// drains, so the numbers line up with a single profiler run.

// BenchmarkLFR_SPSC_RingBuffer - our lock-free SPSC ring
func BenchmarkLFR_SPSC_RingBuffer(b *testing.B) {
	benchPipeline(b, queue.MustRingBuffer[int64](1024))
}

// BenchmarkLFR_SPSC_Guarded - mutex baseline
func BenchmarkLFR_SPSC_Guarded(b *testing.B) {
	benchPipeline(b, queue.NewGuarded[int64](1024))
}

// BenchmarkLFR_SPSC_ShardedRing1 - go-lock-free-ring with 1 shard (SPSC-like)
func BenchmarkLFR_SPSC_ShardedRing1(b *testing.B) {
	r, err := ring.NewShardedRing(1024, 1)
	if err != nil {
		b.Fatal(err)
	}
	done := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				r.TryRead()
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !r.Write(0, tick.Now()) {
		}
	}
	b.StopTimer()
	close(done)
	<-consumerDone
}

// ============================================================================
// MPSC: N Producers → 1 Consumer (outside RingBuffer's contract)
// ============================================================================

// BenchmarkLFR_MPSC_Guarded_4P - 4 producers sharing the mutex queue
func BenchmarkLFR_MPSC_Guarded_4P(b *testing.B) {
	q := queue.NewGuarded[int64](1024)
	done := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				q.Pop()
			}
		}
	}()

	b.SetParallelism(4)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			q.Push(tick.Now())
		}
	})

	b.StopTimer()
	close(done)
	<-consumerDone
}

// BenchmarkLFR_MPSC_ShardedRing_4P_4S - 4 producers, 4 shards
func BenchmarkLFR_MPSC_ShardedRing_4P_4S(b *testing.B) {
	r, err := ring.NewShardedRing(1024, 4)
	if err != nil {
		b.Fatal(err)
	}
	done := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				r.TryRead()
			}
		}
	}()

	var producerID atomic.Uint64
	b.SetParallelism(4)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		pid := producerID.Add(1) - 1
		for pb.Next() {
			for !r.Write(pid, tick.Now()) {
			}
		}
	})

	b.StopTimer()
	close(done)
	<-consumerDone
}
