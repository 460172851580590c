package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-watchlist-service/infra"
)

func LoggingMiddleware(logger *infra.LoggerClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		elapsed := time.Since(start)

		var err error
		if last := c.Errors.Last(); last != nil {
			err = last
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.ErrorWithContextf(ctx, err, "[HTTP] %s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, elapsed)
		case status >= http.StatusBadRequest:
			logger.WarningWithContextf(ctx, "[HTTP] %s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, elapsed)
		default:
			logger.InfoWithContextf(ctx, "[HTTP] %s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, elapsed)
		}
	}
}
