// Package tick provides the clock and pacing used on the profiler's hot path.
//
// Now returns the runtime's monotonic clock as a bare int64, which is what
// the producer stamps into each message. Pacer implementations space out
// consecutive sends:
//   - SleepPacer: time.Sleep, the scheduler decides the real gap
//   - SpinPacer: busy-waits on Now until the interval has elapsed
package tick

import (
	"errors"
	"fmt"
	"time"
	_ "unsafe" // Required for go:linkname
)

// nanotime returns the current monotonic time in nanoseconds.
// This is faster than time.Now() because it returns a single int64
// and avoids constructing a time.Time struct.
//
// Note: This uses go:linkname to access an internal runtime function.
// It may break in future Go versions, though it has been stable.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// Now returns the current monotonic time in nanoseconds.
// Values are only meaningful relative to each other within one process.
func Now() int64 {
	return nanotime()
}

// Since returns the nanoseconds elapsed since ts, a value returned by Now.
func Since(ts int64) int64 {
	return nanotime() - ts
}

// DefaultInterval is the producer's inter-send delay.
const DefaultInterval = time.Microsecond

// Pacer kinds accepted by NewPacer.
const (
	KindSleep = "sleep"
	KindSpin  = "spin"
)

// ErrUnknownPacer is returned by NewPacer for an unrecognised kind.
var ErrUnknownPacer = errors.New("tick: unknown pacer")

// Pacer delays the caller between consecutive sends.
//
// Implementations are used by a single goroutine and are not required
// to be safe for concurrent use.
type Pacer interface {
	// Wait blocks for roughly the pacer's interval.
	Wait()

	// Interval returns the configured delay.
	Interval() time.Duration
}

// NewPacer returns the pacer named by kind.
func NewPacer(kind string, interval time.Duration) (Pacer, error) {
	switch kind {
	case KindSleep, "":
		return NewSleepPacer(interval), nil
	case KindSpin:
		return NewSpinPacer(interval), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPacer, kind)
	}
}
