package assessment

import (
	"sync"
	"time"
)

type fakeTimer struct {
	mu      *sync.Mutex
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

// manualScheduler records timers and fires them only when a test asks.
type manualScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (m *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &fakeTimer{mu: &m.mu, d: d, f: f}
	m.timers = append(m.timers, t)
	return t
}

// fire runs every live timer of duration d that existed when it was called.
func (m *manualScheduler) fire(d time.Duration) {
	m.mu.Lock()
	var due []*fakeTimer
	for _, t := range m.timers {
		if t.d == d && !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	m.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

// fireStopped runs callbacks of timers that were already stopped, as a late
// time.AfterFunc could.
func (m *manualScheduler) fireStopped(d time.Duration) {
	m.mu.Lock()
	var due []*fakeTimer
	for _, t := range m.timers {
		if t.d == d && t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	m.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

func (m *manualScheduler) active(d time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if t.d == d && !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (m *manualScheduler) tick(n int) {
	for i := 0; i < n; i++ {
		m.fire(time.Second)
	}
}
