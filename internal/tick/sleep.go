package tick

import "time"

// SleepPacer waits with time.Sleep.
//
// This mirrors a plain "sleep 1µs" between sends. The actual gap is bounded
// below by the OS timer resolution and is usually tens of microseconds.
type SleepPacer struct {
	interval time.Duration
}

// NewSleepPacer creates a SleepPacer. A non-positive interval makes Wait a no-op.
func NewSleepPacer(interval time.Duration) *SleepPacer {
	return &SleepPacer{interval: interval}
}

// Wait sleeps for the interval.
func (p *SleepPacer) Wait() {
	if p.interval <= 0 {
		return
	}
	time.Sleep(p.interval)
}

// Interval returns the pacer's interval.
func (p *SleepPacer) Interval() time.Duration {
	return p.interval
}
