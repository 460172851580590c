package controller

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-watchlist-service/utils"
)

const healthCheckTimeout = 2 * time.Second

func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if ctrl.Infra.Postgres != nil {
		if err := ctrl.Infra.Postgres.Ping(ctx); err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Health] Postgres ping failed: %v", err)
			utils.JSON503(c, gin.H{"status": "unavailable", "error": "postgres"})
			return
		}
	}

	if ctrl.Infra.Redis != nil {
		if err := ctrl.Infra.Redis.Ping(ctx); err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Health] Redis ping failed: %v", err)
			utils.JSON503(c, gin.H{"status": "unavailable", "error": "redis"})
			return
		}
	}

	utils.JSON200(c, gin.H{"status": "ok"})
}
