// Package ratelimit implements an in-process sliding-window rate limiter.
// It is best effort: state lives in memory, resets on restart and is not
// shared between server instances.
package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Limiter tracks recent action timestamps per key behind a single mutex.
type Limiter struct {
	mu     sync.Mutex
	visits map[string][]time.Time
	now    func() time.Time
}

func New() *Limiter {
	return NewWithClock(time.Now)
}

// NewWithClock builds a Limiter with an injectable clock for tests.
func NewWithClock(now func() time.Time) *Limiter {
	return &Limiter{
		visits: make(map[string][]time.Time),
		now:    now,
	}
}

// Key builds the limiter key for an action performed by a client address.
func Key(action, clientAddr string) string {
	return fmt.Sprintf("%s:%s", action, clientAddr)
}

// Allow purges timestamps older than the window, then either rejects the
// action without recording it (count already at the limit) or records the
// current timestamp and admits it.
func (l *Limiter) Allow(key string, limit int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	recent := l.visits[key][:0]
	for _, t := range l.visits[key] {
		if now.Sub(t) < window {
			recent = append(recent, t)
		}
	}

	if len(recent) >= limit {
		l.visits[key] = recent
		return false
	}

	l.visits[key] = append(recent, now)
	return true
}
