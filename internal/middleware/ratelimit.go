package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the number of per-client limiters kept in
// memory. Evicted clients simply start over with a full burst.
const maxTrackedClients = 4096

// RateLimiter applies a token-bucket limit per client IP.
type RateLimiter struct {
	limiters *lru.Cache[string, *rate.Limiter]
	rps      rate.Limit
	burst    int
}

// NewRateLimiter allows requestsPerSecond sustained with the given burst.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	cache, err := lru.New[string, *rate.Limiter](maxTrackedClients)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &RateLimiter{
		limiters: cache,
		rps:      rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (rl *RateLimiter) limiterFor(clientIP string) *rate.Limiter {
	if limiter, ok := rl.limiters.Get(clientIP); ok {
		return limiter
	}
	limiter := rate.NewLimiter(rl.rps, rl.burst)
	rl.limiters.Add(clientIP, limiter)
	return limiter
}

// Middleware rejects requests exceeding the client's budget with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":          "Rate limit exceeded",
				"correlation_id": c.GetString(CorrelationIDKey),
				"timestamp":      time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
		c.Next()
	}
}
