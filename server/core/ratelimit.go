package core

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig sets the per-IP token bucket for /ws upgrades.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	CleanupInterval   time.Duration // 0 keeps idle buckets forever
}

var DefaultRateLimitConfig = RateLimitConfig{
	RequestsPerSecond: 2,
	Burst:             5,
	CleanupInterval:   5 * time.Minute,
}

type bucket struct {
	*rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	cfg     RateLimitConfig
	buckets sync.Map // ip -> *bucket

	stop     chan struct{}
	stopOnce sync.Once
}

// NewIPRateLimiter starts the idle-bucket sweeper when cfg asks for one.
// Call Stop to end it.
func NewIPRateLimiter(cfg RateLimitConfig) *IPRateLimiter {
	rl := &IPRateLimiter{cfg: cfg, stop: make(chan struct{})}
	if cfg.CleanupInterval > 0 {
		go rl.sweep()
	}
	return rl
}

func (rl *IPRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *IPRateLimiter) bucketFor(ip string, now time.Time) *bucket {
	v, ok := rl.buckets.Load(ip)
	if !ok {
		fresh := &bucket{Limiter: rate.NewLimiter(rate.Limit(rl.cfg.RequestsPerSecond), rl.cfg.Burst)}
		v, _ = rl.buckets.LoadOrStore(ip, fresh)
	}
	b := v.(*bucket)
	b.lastSeen.Store(now.UnixNano())
	return b
}

func (rl *IPRateLimiter) sweep() {
	ticker := time.NewTicker(rl.cfg.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.cleanup(now)
		}
	}
}

// cleanup forgets buckets idle for two cleanup intervals.
func (rl *IPRateLimiter) cleanup(now time.Time) {
	cutoff := now.Add(-2 * rl.cfg.CleanupInterval).UnixNano()
	rl.buckets.Range(func(ip, v any) bool {
		if v.(*bucket).lastSeen.Load() < cutoff {
			rl.buckets.Delete(ip)
		}
		return true
	})
}

// Allow spends one token from ip's bucket.
func (rl *IPRateLimiter) Allow(ip string) bool {
	return rl.bucketFor(ip, time.Now()).Allow()
}

// Middleware answers 429 to clients over their rate.
func (rl *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(GetClientIP(r)) {
			RecordConnectionRejected("rate_limit")
			w.Header().Set("Retry-After", "1")
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetClientIP returns the first X-Forwarded-For hop, then X-Real-IP, then
// the connection's host.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
