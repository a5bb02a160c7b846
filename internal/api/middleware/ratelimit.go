package middleware

import (
	"net/http"
	"sync"

	"bookmore/internal/api/dto"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipLimiter keeps one token bucket per client IP.
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

// RateLimit enforces `limit` requests per second with the given burst,
// keyed by client IP. Used on the unauthenticated auth endpoints.
func RateLimit(limit float64, burst int) gin.HandlerFunc {
	limiters := &ipLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(limit),
		burst:    burst,
	}

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.Error("TOO_MANY_REQUESTS", "too many requests"))
			return
		}
		c.Next()
	}
}
