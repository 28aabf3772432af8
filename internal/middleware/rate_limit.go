package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"digaxy-assistant/pkg/response"
)

// RateLimit throttles each client IP to the configured budget per minute.
// A zero or negative budget disables throttling entirely.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		limiter := m.limiterFor(c.ClientIP())
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m Middleware) limiterFor(clientIP string) *rate.Limiter {
	if limiter, ok := m.limiters.Get(clientIP); ok {
		return limiter
	}
	limiter := rate.NewLimiter(rate.Limit(float64(m.perMin)/60.0), m.perMin)
	m.limiters.Add(clientIP, limiter)
	return limiter
}
