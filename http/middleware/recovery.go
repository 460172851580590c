package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-watchlist-service/infra"
)

func RecoveryMiddleware(logger *infra.LoggerClient) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		err := fmt.Errorf("panic: %v", recovered)
		logger.ErrorWithContextf(c.Request.Context(), err, "[HTTP] Recovered from panic on %s %s", c.Request.Method, c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
