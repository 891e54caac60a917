package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks attempts per key over a sliding window. Used to throttle
// login attempts per client address.
type Limiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	limit    int
	window   time.Duration
}

func NewLimiter(limit int, window time.Duration) *Limiter {
	l := &Limiter{
		attempts: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}

	go l.cleanupLoop()

	return l
}

func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	recent := l.prune(key, now)

	if len(recent) >= l.limit {
		l.attempts[key] = recent
		return false
	}

	l.attempts[key] = append(recent, now)
	return true
}

// Remaining reports how many attempts are left for key inside the window.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	remaining := l.limit - len(l.prune(key, time.Now()))
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (l *Limiter) prune(key string, now time.Time) []time.Time {
	windowStart := now.Add(-l.window)
	var recent []time.Time
	for _, t := range l.attempts[key] {
		if t.After(windowStart) {
			recent = append(recent, t)
		}
	}
	return recent
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for key := range l.attempts {
			recent := l.prune(key, now)
			if len(recent) == 0 {
				delete(l.attempts, key)
			} else {
				l.attempts[key] = recent
			}
		}
		l.mu.Unlock()
	}
}
