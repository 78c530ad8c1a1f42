// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Lockout counts failed sign-in attempts per key and locks the key once the
// count reaches the limit. It is safe for concurrent use.
//
// The count survives the lock expiring: only Succeed resets it, so the first
// failure after a lock locks again.
type Lockout struct {
	mu       sync.Mutex
	entries  map[string]*attempts
	limit    int           // failures before locking
	duration time.Duration // lock length
	now      func() time.Time
}

type attempts struct {
	count       int
	lockedUntil time.Time
}

// NewLockout creates a lockout that locks for duration after limit failures.
func NewLockout(limit int, duration time.Duration) *Lockout {
	return &Lockout{
		entries:  make(map[string]*attempts),
		limit:    limit,
		duration: duration,
		now:      time.Now,
	}
}

// WithClock replaces the clock. Used by tests.
func (l *Lockout) WithClock(now func() time.Time) *Lockout {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
	return l
}

// Limit returns the number of failures that triggers a lock.
func (l *Lockout) Limit() int { return l.limit }

// Duration returns the lock length.
func (l *Lockout) Duration() time.Duration { return l.duration }

// Check reports whether key is locked and for how much longer.
func (l *Lockout) Check(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.entries[key]
	if !ok {
		return false, 0
	}
	remaining := a.lockedUntil.Sub(l.now())
	if remaining <= 0 {
		return false, 0
	}
	return true, remaining
}

// Fail records a failed attempt and returns the running count. locked is
// true when this failure triggered a lock.
func (l *Lockout) Fail(key string) (count int, locked bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.entries[key]
	if !ok {
		a = &attempts{}
		l.entries[key] = a
	}
	a.count++
	if a.count >= l.limit {
		a.lockedUntil = l.now().Add(l.duration)
		return a.count, true
	}
	return a.count, false
}

// Attempts returns the running failure count for key.
func (l *Lockout) Attempts(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if a, ok := l.entries[key]; ok {
		return a.count
	}
	return 0
}

// Succeed clears the failures recorded for key.
func (l *Lockout) Succeed(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
}

// RemainingSeconds rounds a remaining lock time up to whole seconds.
func RemainingSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}

// ClientIP extracts the client IP from an HTTP request.
// It checks X-Forwarded-For and X-Real-IP headers first (for proxied requests),
// then falls back to RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr might not have a port
		return r.RemoteAddr
	}
	return ip
}

// RemoteIP returns the host of r.RemoteAddr and ignores forwarding headers.
// Behind a trusted proxy, chi's RealIP middleware sets RemoteAddr first.
func RemoteIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
