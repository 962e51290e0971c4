package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps a token bucket per client IP.
type RateLimiter struct {
	ips   map[string]*limiterEntry
	mu    sync.Mutex
	rate  rate.Limit
	burst int
	ttl   time.Duration
}

// NewRateLimiter creates a per-IP limiter and starts a cleanup loop that
// drops entries idle longer than ttl.
func NewRateLimiter(r rate.Limit, b int, ttl time.Duration) *RateLimiter {
	rl := &RateLimiter{
		ips:   make(map[string]*limiterEntry),
		rate:  r,
		burst: b,
		ttl:   ttl,
	}

	go func() {
		ticker := time.NewTicker(ttl)
		defer ticker.Stop()
		for range ticker.C {
			rl.mu.Lock()
			now := time.Now()
			for ip, e := range rl.ips {
				if now.Sub(e.lastSeen) > rl.ttl {
					delete(rl.ips, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()

	return rl
}

// Allow reports whether a request from the given IP may proceed.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	entry, exists := rl.ips[ip]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.ips[ip] = entry
	}
	entry.lastSeen = time.Now()
	rl.mu.Unlock()

	return entry.limiter.Allow()
}

// RateLimit throttles clients to roughly 100 requests per minute with a
// burst of 50.
func RateLimit() gin.HandlerFunc {
	rl := NewRateLimiter(rate.Every(time.Minute/100), 50, 5*time.Minute)

	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
