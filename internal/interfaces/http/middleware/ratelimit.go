package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/infrastructure/ratelimit"
	"github.com/hireloop/hireloop/internal/shared/logger"
	"github.com/hireloop/hireloop/internal/shared/utils"
)

// RateLimitObserver is satisfied by metrics.Metrics.
type RateLimitObserver interface {
	RecordRateLimited(path string)
}

// RateLimiter limits public endpoints per client IP and route.
type RateLimiter struct {
	limiter  ratelimit.RateLimiter
	limits   ratelimit.Limits
	observer RateLimitObserver
	logger   logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, limits ratelimit.Limits, observer RateLimitObserver, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter:  limiter,
		limits:   limits,
		observer: observer,
		logger:   logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limiter == nil {
			c.Next()
			return
		}

		route := c.FullPath()
		key := "ip:" + c.ClientIP() + ":" + route

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.limits)
		if err != nil {
			// Redis being down must not take the public endpoints with it.
			rl.logger.Warnw("rate limiter unavailable", "error", err, "path", route)
			c.Next()
			return
		}

		if !allowed {
			if rl.observer != nil {
				rl.observer.RecordRateLimited(route)
			}
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
