package harness

import (
	"errors"
	"fmt"

	"github.com/randomizedcoder/queue-latency-profiler/internal/queue"
)

// ErrUnknownMode is returned by ParseMode for anything but the known modes.
var ErrUnknownMode = errors.New("harness: unknown mode")

// Mode selects the queue under test.
type Mode string

const (
	ModeMutex    Mode = "mutex"
	ModeLockFree Mode = "lockfree"
)

// ParseMode validates a mode name as given on the command line.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeMutex, ModeLockFree:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// QueueName is the display name of the mode's queue. It also prefixes
// the output files.
func (m Mode) QueueName() string {
	switch m {
	case ModeMutex:
		return "Mutex Queue"
	case ModeLockFree:
		return "Lock-Free Queue"
	default:
		return string(m)
	}
}

// NewQueue builds the queue for m. capacity sizes the ring buffer;
// for the mutex queue it only pre-sizes the backing slice.
func NewQueue(m Mode, capacity int) (queue.Queue[int64], error) {
	switch m {
	case ModeMutex:
		return queue.NewGuarded[int64](capacity), nil
	case ModeLockFree:
		r, err := queue.NewRingBuffer[int64](capacity)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(m))
	}
}
