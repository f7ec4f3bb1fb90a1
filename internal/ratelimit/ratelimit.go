// File: internal/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Config holds sliding-window rate limit settings.
type Config struct {
	WindowSize    time.Duration
	MaxRequests   int
	CleanupPeriod time.Duration
}

// DefaultChatConfig limits a single client to maxPerMinute generation
// requests per minute. Generation is the expensive endpoint; reads are
// left unthrottled.
func DefaultChatConfig(maxPerMinute int) *Config {
	return &Config{
		WindowSize:    time.Minute,
		MaxRequests:   maxPerMinute,
		CleanupPeriod: 5 * time.Minute,
	}
}

type window struct {
	count int
	start time.Time
}

// Limiter is an in-memory per-identifier sliding-window rate limiter.
type Limiter struct {
	config  *Config
	windows map[string]*window
	mu      sync.Mutex
	now     func() time.Time
	stopCh  chan struct{}
}

// New creates a Limiter and starts its cleanup loop.
func New(config *Config) *Limiter {
	l := &Limiter{
		config:  config,
		windows: make(map[string]*window),
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether the identifier may proceed, plus the remaining
// quota and the moment the window resets.
func (l *Limiter) Allow(identifier string) (allowed bool, remaining int, resetAt time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	win, exists := l.windows[identifier]
	if !exists || now.Sub(win.start) > l.config.WindowSize {
		l.windows[identifier] = &window{count: 1, start: now}
		return true, l.config.MaxRequests - 1, now.Add(l.config.WindowSize)
	}

	resetAt = win.start.Add(l.config.WindowSize)
	if win.count >= l.config.MaxRequests {
		return false, 0, resetAt
	}

	win.count++
	return true, l.config.MaxRequests - win.count, resetAt
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stopCh:
			return
		}
	}
}

func (l *Limiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for identifier, win := range l.windows {
		if now.Sub(win.start) > l.config.WindowSize {
			delete(l.windows, identifier)
		}
	}
}

// Close stops the cleanup goroutine.
func (l *Limiter) Close() {
	close(l.stopCh)
}

// ClientIP extracts the real client IP, honoring proxy headers.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first := strings.TrimSpace(strings.Split(forwarded, ",")[0]); first != "" {
			return first
		}
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
