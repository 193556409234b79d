package input

import (
	"sync"
	"time"
)

// throttle drops auto-repeat events arriving faster than interval.
type throttle struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: interval, now: time.Now}
}

// allow reports whether an event may pass now and, if so, arms the next
// window.
func (t *throttle) allow() bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}

// reset lets the next event through immediately.
func (t *throttle) reset() {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.next = time.Time{}
	t.mu.Unlock()
}
