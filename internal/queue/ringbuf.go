package queue

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// RingBuffer is a bounded lock-free SPSC (Single-Producer Single-Consumer) queue.
//
// WARNING: This queue is NOT safe for multiple producers or multiple consumers.
// Using it incorrectly will cause data races and undefined behavior.
//
// Indices advance modulo the capacity. The ring is empty when head == tail and
// full when advancing head by one would reach tail, so one slot is always
// left unused and only Cap()-1 elements fit at once.
//
// Go atomics are sequentially consistent, which is at least as strong as the
// acquire/release pairing the algorithm needs:
//   - Push: load head (own index), load tail (acquire), write slot, store head (release)
//   - Pop:  load tail (own index), load head (acquire), read slot, store tail (release)
type RingBuffer[T any] struct {
	buf  []T
	size uint64

	// Cache line padding to prevent false sharing
	_ cpu.CacheLinePad

	head atomic.Uint64 // Written by producer, read by consumer

	_ cpu.CacheLinePad

	tail atomic.Uint64 // Written by consumer, read by producer

	_ cpu.CacheLinePad

	// SPSC guards: no-ops unless built with -tags spscguard
	pushGuard spscGuard
	popGuard  spscGuard
}

// NewRingBuffer creates a RingBuffer with exactly size slots.
// At most size-1 elements can be queued at the same time.
// It returns ErrCapacityTooSmall when size < 2.
func NewRingBuffer[T any](size int) (*RingBuffer[T], error) {
	if size < 2 {
		return nil, fmt.Errorf("new ring buffer of size %d: %w", size, ErrCapacityTooSmall)
	}

	return &RingBuffer[T]{
		buf:  make([]T, size),
		size: uint64(size),
	}, nil
}

// MustRingBuffer is like NewRingBuffer but panics on error.
// Intended for tests and benchmarks with constant sizes.
func MustRingBuffer[T any](size int) *RingBuffer[T] {
	r, err := NewRingBuffer[T](size)
	if err != nil {
		panic(err)
	}
	return r
}

// Push adds an item to the queue.
// Returns false, leaving the queue untouched, if the queue is full.
//
// SPSC CONTRACT: Only ONE goroutine may call Push().
func (r *RingBuffer[T]) Push(v T) bool {
	r.pushGuard.enter("Push")

	head := r.head.Load()
	next := r.advance(head)

	// Full: one more write would make head catch tail
	if next == r.tail.Load() {
		r.pushGuard.exit()
		return false
	}

	r.buf[head] = v

	// Publish: the consumer sees the slot once it observes the new head
	r.head.Store(next)

	r.pushGuard.exit()
	return true
}

// Pop removes and returns an item from the queue.
// Returns false, leaving the queue untouched, if the queue is empty.
//
// SPSC CONTRACT: Only ONE goroutine may call Pop().
func (r *RingBuffer[T]) Pop() (T, bool) {
	r.popGuard.enter("Pop")

	tail := r.tail.Load()

	if tail == r.head.Load() {
		r.popGuard.exit()
		var zero T
		return zero, false
	}

	v := r.buf[tail]

	// Drop the reference so the ring doesn't pin popped values
	var zero T
	r.buf[tail] = zero

	// Release the slot back to the producer
	r.tail.Store(r.advance(tail))

	r.popGuard.exit()
	return v, true
}

// advance returns the index after i, wrapping at the capacity.
func (r *RingBuffer[T]) advance(i uint64) uint64 {
	i++
	if i == r.size {
		return 0
	}
	return i
}

// Len returns the current number of items in the queue.
// This is an approximation and may be slightly stale.
func (r *RingBuffer[T]) Len() int {
	tail := r.tail.Load()
	head := r.head.Load()
	if head >= tail {
		return int(head - tail)
	}
	return int(head + r.size - tail)
}

// Cap returns the number of slots in the ring, including the reserved one.
func (r *RingBuffer[T]) Cap() int {
	return int(r.size)
}

// Free returns how many more items can be pushed before the queue is full.
// Like Len, the result may be stale under concurrent use.
func (r *RingBuffer[T]) Free() int {
	return int(r.size) - 1 - r.Len()
}
