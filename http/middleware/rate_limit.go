package middlewares

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-watchlist-service/infra"
	"github.com/tnqbao/gau-watchlist-service/utils"
)

const rateLimitWindow = time.Minute

// RequestCounter is the subset of the Redis client the limiter needs.
type RequestCounter interface {
	Increment(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) error
}

// RateLimitMiddleware applies a fixed one-minute window per client IP. It is a
// no-op when counter is nil or perMinute is not positive, and lets requests
// through when the counter errors.
func RateLimitMiddleware(counter RequestCounter, perMinute int, logger *infra.LoggerClient) gin.HandlerFunc {
	return newRateLimiter(counter, perMinute, logger, time.Now)
}

func newRateLimiter(counter RequestCounter, perMinute int, logger *infra.LoggerClient, now func() time.Time) gin.HandlerFunc {
	if counter == nil || perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limit := int64(perMinute)

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		window := now().Truncate(rateLimitWindow)
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), window.Unix())

		count, err := counter.Increment(ctx, key)
		if err != nil {
			logger.ErrorWithContextf(ctx, err, "[RateLimit] Failed to count request for %s: %v", c.ClientIP(), err)
			c.Next()
			return
		}
		if count == 1 {
			if err := counter.Expire(ctx, key, rateLimitWindow); err != nil {
				logger.ErrorWithContextf(ctx, err, "[RateLimit] Failed to set expiry on %s: %v", key, err)
			}
		}

		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > limit {
			retryAfter := int(window.Add(rateLimitWindow).Sub(now()).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			logger.WarningWithContextf(ctx, "[RateLimit] Throttled %s (%d requests in window)", c.ClientIP(), count)
			utils.JSON429(c, "Request was throttled.")
			return
		}

		c.Next()
	}
}
