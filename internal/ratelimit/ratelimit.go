// Package ratelimit bounds the rate of mutating operations per caller.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	start    time.Time
	count    int
	lastSeen time.Time
}

// Limiter counts actions per caller within fixed windows. The first action
// after a window elapses starts a new window anchored at that moment.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	idleTTL time.Duration
	callers map[string]*window

	allowed uint64
	denied  uint64
}

type Option func(*Limiter)

// WithIdleTTL sets how long an inactive caller's window is retained.
func WithIdleTTL(d time.Duration) Option {
	return func(l *Limiter) { l.idleTTL = d }
}

// New creates a Limiter admitting at most limit actions per period per caller.
func New(limit int, period time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		limit:   limit,
		period:  period,
		idleTTL: 15 * time.Minute,
		callers: make(map[string]*window),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow reports whether the caller may act now, incrementing its count when
// admitted. On denial it returns how long until the window rolls over.
func (l *Limiter) Allow(caller string) (bool, time.Duration) {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	w, ok := l.callers[caller]
	if !ok {
		w = &window{start: now}
		l.callers[caller] = w
	}
	w.lastSeen = now
	if now.Sub(w.start) >= l.period {
		w.start = now
		w.count = 0
	}
	if w.count < l.limit {
		w.count++
		l.allowed++
		return true, 0
	}
	l.denied++
	return false, w.start.Add(l.period).Sub(now)
}

// Cleanup drops callers that have been idle longer than the idle TTL.
func (l *Limiter) Cleanup() {
	cutoff := time.Now().Add(-l.idleTTL)
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, w := range l.callers {
		if w.lastSeen.Before(cutoff) {
			delete(l.callers, k)
		}
	}
}

// StartJanitor cleans up idle callers periodically until ctx is done.
func (l *Limiter) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				l.Cleanup()
			}
		}
	}()
}

// Stats returns the allowed and denied counters and the tracked caller count.
func (l *Limiter) Stats() (allowed, denied uint64, callers int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allowed, l.denied, len(l.callers)
}
