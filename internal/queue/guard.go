//go:build spscguard

package queue

import "sync/atomic"

// spscGuard detects two goroutines inside the same side of a RingBuffer.
type spscGuard struct {
	active atomic.Uint32
}

func (g *spscGuard) enter(op string) {
	if !g.active.CompareAndSwap(0, 1) {
		panic("queue: concurrent " + op + " on SPSC RingBuffer - only one goroutine per side allowed")
	}
}

func (g *spscGuard) exit() {
	g.active.Store(0)
}
