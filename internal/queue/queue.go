// Package queue provides the FIFO queues driven by the latency profiler.
//
// This package offers two implementations of the Queue interface:
//   - RingBuffer: bounded lock-free SPSC ring buffer
//   - GuardedQueue: unbounded slice guarded by a sync.Mutex
//
// # RingBuffer Safety (IMPORTANT)
//
// RingBuffer is a Single-Producer Single-Consumer (SPSC) queue.
// It is NOT safe for multiple goroutines to call Push() or Pop() concurrently.
//
// Building with -tags spscguard enables runtime guards that panic on misuse.
// Default builds compile the guards away so the measured path stays clean.
//
// Correct usage:
//   - Exactly ONE goroutine calls Push()
//   - Exactly ONE goroutine calls Pop()
//   - These may be the same goroutine or different goroutines
package queue

import "errors"

// ErrCapacityTooSmall is returned when a RingBuffer is created with fewer
// than two slots. One slot is always kept free, so such a ring could never
// hold an element.
var ErrCapacityTooSmall = errors.New("queue: ring buffer capacity must be at least 2")

// Queue is a non-blocking FIFO queue.
//
// Push returns false if the queue is full. Unbounded implementations
// always return true, so callers use a single retry loop for every queue.
// Pop returns false if the queue is empty.
type Queue[T any] interface {
	// Push adds an item to the queue.
	// Returns false if the queue is full.
	Push(T) bool

	// Pop removes and returns an item from the queue.
	// Returns false if the queue is empty.
	Pop() (T, bool)
}

// Compile-time interface checks.
var (
	_ Queue[int64] = (*RingBuffer[int64])(nil)
	_ Queue[int64] = (*GuardedQueue[int64])(nil)
)
