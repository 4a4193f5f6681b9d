package timers

import (
	"errors"
	"sync"
	"time"
)

// ErrNegativeInterval rejects timers that would have to fire in the past.
var ErrNegativeInterval = errors.New("timers: negative interval")

type entry struct {
	seconds int
	stop    chan struct{}
}

// Registry maps a chat key to at most one active recurring timer. A mutex
// guards the map: timer callbacks run on their own goroutines, concurrently
// with command handling.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Set installs a recurring action for key, cancelling and removing any
// existing timer for that key first. It reports whether a previous timer was
// replaced. A negative interval installs nothing and returns
// ErrNegativeInterval.
func (r *Registry) Set(key string, seconds int, action func()) (bool, error) {
	if seconds < 0 {
		return false, ErrNegativeInterval
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := r.removeLocked(key)

	e := &entry{seconds: seconds, stop: make(chan struct{})}
	r.entries[key] = e

	tick := time.Duration(seconds) * time.Second
	if tick == 0 {
		// time.NewTicker rejects non-positive durations; a zero interval
		// still installs an entry, firing once a second.
		tick = time.Second
	}

	go func() {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-e.stop:
				return
			case <-ticker.C:
				action()
			}
		}
	}()

	return replaced, nil
}

// Unset cancels the timer for key if one exists and reports whether anything
// was removed. Cancellation only prevents future ticks; an in-flight action
// runs to completion.
func (r *Registry) Unset(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeLocked(key)
}

// Interval reports the configured interval in seconds for key.
func (r *Registry) Interval(key string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[key]
	if !ok {
		return 0, false
	}
	return e.seconds, true
}

// Len reports the number of active timers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// StopAll cancels every timer. Used at shutdown.
func (r *Registry) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.entries {
		r.removeLocked(key)
	}
}

func (r *Registry) removeLocked(key string) bool {
	e, ok := r.entries[key]
	if !ok {
		return false
	}
	close(e.stop)
	delete(r.entries, key)
	return true
}
