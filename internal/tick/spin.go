package tick

import "time"

// SpinPacer busy-waits on the monotonic clock.
//
// It holds the interval far more precisely than SleepPacer at the price of
// keeping the producer's CPU busy. It never yields to the scheduler.
type SpinPacer struct {
	interval int64 // nanoseconds
}

// NewSpinPacer creates a SpinPacer. A non-positive interval makes Wait a no-op.
func NewSpinPacer(interval time.Duration) *SpinPacer {
	return &SpinPacer{interval: int64(interval)}
}

// Wait spins until the interval has elapsed.
func (p *SpinPacer) Wait() {
	if p.interval <= 0 {
		return
	}
	deadline := nanotime() + p.interval
	for nanotime() < deadline {
	}
}

// Interval returns the pacer's interval.
func (p *SpinPacer) Interval() time.Duration {
	return time.Duration(p.interval)
}
