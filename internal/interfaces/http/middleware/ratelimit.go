package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/accesskit/accesskit/internal/infrastructure/ratelimit"
	"github.com/accesskit/accesskit/internal/shared/config"
	"github.com/accesskit/accesskit/internal/shared/utils"
)

// RateLimit enforces a per-IP sliding window on mutation endpoints.
// A limiter failure fails open so a Redis outage does not take writes down.
func RateLimit(limiter ratelimit.RateLimiter, cfg *config.RateLimitConfig) gin.HandlerFunc {
	limit := ratelimit.Limit{
		Requests: cfg.Requests,
		Window:   time.Duration(cfg.WindowSeconds) * time.Second,
	}

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		key := fmt.Sprintf("ip:%s", c.ClientIP())

		allowed, err := limiter.Allow(key, limit)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
