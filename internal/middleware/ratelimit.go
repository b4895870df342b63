package middleware

import (
	"net/http"
	"time"

	"restaurant-finder-api/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit applies a token bucket shared by every caller of the routes it is attached to.
// A zero request count disables limiting.
func RateLimit(cfg config.RateLimit) gin.HandlerFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Nanosecond
	}

	limiter := rate.NewLimiter(rate.Every(perRequest), cfg.Requests)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "search rate limit exceeded"})
			return
		}
		c.Next()
	}
}
