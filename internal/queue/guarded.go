package queue

import "sync"

// compactMin is the consumed-prefix length below which GuardedQueue never
// bothers to compact its backing slice.
const compactMin = 64

// GuardedQueue is an unbounded FIFO queue protected by a single sync.Mutex.
//
// It is the baseline the lock-free RingBuffer is measured against. Any number
// of goroutines may call Push and Pop concurrently.
type GuardedQueue[T any] struct {
	mu    sync.Mutex
	items []T
	head  int // index of the front element in items
}

// NewGuarded creates an empty GuardedQueue.
// The hint pre-sizes the backing slice; the queue still grows past it.
func NewGuarded[T any](hint int) *GuardedQueue[T] {
	if hint < 0 {
		hint = 0
	}
	return &GuardedQueue[T]{
		items: make([]T, 0, hint),
	}
}

// Push appends an item to the back of the queue.
// Always returns true: the queue is bounded only by available memory.
func (q *GuardedQueue[T]) Push(v T) bool {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()
	return true
}

// Pop removes and returns the front item.
// Returns false if the queue is empty.
func (q *GuardedQueue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if q.head == len(q.items) {
		return zero, false
	}

	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.items):
		// Drained: reuse the whole backing array
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactMin && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return v, true
}

// Len returns the current number of items in the queue.
func (q *GuardedQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}
