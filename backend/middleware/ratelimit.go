// ABOUTME: Rate limiting middleware with fixed-window counters
// ABOUTME: Provides per-client limits for lead-capture and read endpoints

package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// sweepEvery is how many new windows are opened between full sweeps.
const sweepEvery = 100

// counter tracks requests within a fixed time window.
type counter struct {
	count     int
	expiresAt time.Time
}

// RateLimiter enforces a maximum number of requests per time window.
// Each client key gets an independent counter.
type RateLimiter struct {
	mu           sync.Mutex
	windows      map[string]*counter
	limit        int
	window       time.Duration
	sweepCounter int
	now          func() time.Time
}

// NewRateLimiter creates a rate limiter that allows limit requests per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*counter),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Limit reports the number of requests allowed per window.
func (rl *RateLimiter) Limit() int {
	return rl.limit
}

// Allow checks whether a request for the given key should be permitted.
// Returns true if within limits, or false with the duration until the window resets.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	c, exists := rl.windows[key]

	// The boundary instant opens a new window so retryAfter is never zero on denial.
	if !exists || !now.Before(c.expiresAt) {
		rl.windows[key] = &counter{count: 1, expiresAt: now.Add(rl.window)}

		rl.sweepCounter++
		if rl.sweepCounter >= sweepEvery {
			rl.sweep(now)
			rl.sweepCounter = 0
		}
		return true, 0
	}

	if c.count < rl.limit {
		c.count++
		return true, 0
	}

	return false, c.expiresAt.Sub(now)
}

// sweep removes all expired entries. Must be called while holding rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for k, c := range rl.windows {
		if !now.Before(c.expiresAt) {
			delete(rl.windows, k)
		}
	}
}

// ClientIP extracts the client IP from X-Forwarded-For (leftmost) or RemoteAddr.
// The header is trusted, which assumes a reverse proxy in front of the service.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.SplitN(xff, ",", 2)
		ip := strings.TrimSpace(parts[0])
		if ip != "" && net.ParseIP(ip) != nil {
			return "ip:" + ip
		}
	}

	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return "ip:" + host
}

// RateLimit returns middleware that enforces rate limits using the given limiter and key function.
// A nil limiter disables limiting. An empty key lets the request through.
func RateLimit(limiter *RateLimiter, keyFunc func(*http.Request) string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || keyFunc == nil {
				next(w, r)
				return
			}

			key := keyFunc(r)
			if key == "" {
				next(w, r)
				return
			}

			allowed, retryAfter := limiter.Allow(key)
			if allowed {
				next(w, r)
				return
			}

			retrySeconds := int(math.Ceil(retryAfter.Seconds()))
			slog.Warn("Rate limit exceeded", "key", key, "path", sanitizePath(r.URL.Path), "retry_after", retrySeconds)

			w.Header().Set("Retry-After", strconv.Itoa(retrySeconds))
			writeErrorBody(w, errorBody{
				Error:      "Rate limit exceeded",
				Message:    "Too many requests. Please wait a moment and try again.",
				Code:       http.StatusTooManyRequests,
				RetryAfter: retrySeconds,
			})
		}
	}
}
