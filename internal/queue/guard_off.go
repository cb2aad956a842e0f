//go:build !spscguard

package queue

// spscGuard is empty in default builds. Build with -tags spscguard to
// panic on concurrent Push or Pop calls.
type spscGuard struct{}

func (spscGuard) enter(string) {}

func (spscGuard) exit() {}
