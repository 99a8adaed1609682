package rest

import (
	"sync"
	"time"
)

// TickFunc is called on every tick. quit is closed once Stop is requested, so a
// callback blocked on a shared lock can bail out. Returning false ends the loop.
type TickFunc func(quit <-chan struct{}) bool

// Loop runs at most one ticking goroutine at a time.
type Loop struct {
	interval time.Duration

	mu   sync.Mutex
	quit chan struct{}
	done chan struct{}
}

func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = time.Second
	}
	return &Loop{interval: interval}
}

// Start spawns the ticking goroutine unless one is already alive.
func (l *Loop) Start(tick TickFunc) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.aliveLocked() {
		return false
	}

	quit, done := make(chan struct{}), make(chan struct{})
	l.quit, l.done = quit, done
	go l.run(tick, quit, done)
	return true
}

// Stop terminates the goroutine and waits for it to exit. It must not be
// called from inside a TickFunc.
func (l *Loop) Stop() {
	l.mu.Lock()
	quit, done := l.quit, l.done
	l.quit, l.done = nil, nil
	l.mu.Unlock()

	if quit == nil {
		return
	}
	close(quit)
	<-done
}

// Running reports whether a goroutine is currently ticking.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.aliveLocked()
}

// Done returns a channel closed when the current goroutine exits, or nil
// when no loop was started.
func (l *Loop) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

func (l *Loop) aliveLocked() bool {
	if l.done == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
		return true
	}
}

func (l *Loop) run(tick TickFunc, quit, done chan struct{}) {
	defer close(done)

	t := time.NewTicker(l.interval)
	defer t.Stop()

	for {
		select {
		case <-quit:
			return
		case <-t.C:
			if !tick(quit) {
				return
			}
		}
	}
}
