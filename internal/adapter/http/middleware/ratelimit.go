package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/marsnewbie/kiwipure-cleaning/pkg"
)

const (
	limiterIdleTTL         = 30 * time.Minute
	limiterCleanupInterval = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles the public form endpoints per client IP.
// Idle entries are dropped during later calls rather than by a background goroutine.
type RateLimiter struct {
	mu          sync.Mutex
	clients     map[string]*clientLimiter
	limit       rate.Limit
	burst       int
	lastCleanup time.Time
	now         func() time.Time
	log         zerolog.Logger
}

func NewRateLimiter(rps float64, burst int, log zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
		log:     log.With().Str("component", "http.ratelimit").Logger(),
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastCleanup) > limiterCleanupInterval {
		for id, c := range rl.clients {
			if now.Sub(c.lastSeen) > limiterIdleTTL {
				delete(rl.clients, id)
			}
		}
		rl.lastCleanup = now
	}

	c, ok := rl.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Limit returns the gin handler. A zero rate disables limiting.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if !rl.allow(ip) {
			rl.log.Warn().Str("client_ip", ip).Str("path", c.FullPath()).Msg("rate limit exceeded")
			appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "too many requests, please try again shortly", http.StatusTooManyRequests)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
