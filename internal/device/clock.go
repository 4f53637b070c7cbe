package device

import "time"

// SystemClock implements Clock with the wall clock.
type SystemClock struct{}

// SleepMs blocks the calling goroutine for n milliseconds.
func (SystemClock) SleepMs(n int) {
	if n <= 0 {
		return
	}
	time.Sleep(time.Duration(n) * time.Millisecond)
}
