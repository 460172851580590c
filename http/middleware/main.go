package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-watchlist-service/http/controller"
)

type Middlewares struct {
	RecoveryMiddleware  gin.HandlerFunc
	RequestIDMiddleware gin.HandlerFunc
	TelemetryMiddleware gin.HandlerFunc
	LoggingMiddleware   gin.HandlerFunc
	CORSMiddleware      gin.HandlerFunc
	RateLimitMiddleware gin.HandlerFunc
}

func NewMiddlewares(ctrl *controller.Controller) (*Middlewares, error) {
	cfg := ctrl.Config.EnvConfig
	logger := ctrl.Infra.Logger

	telemetry, err := TelemetryMiddleware(ctrl.Infra.Telemetry)
	if err != nil {
		return nil, err
	}

	// A typed nil *RedisClient must not reach the limiter as a non-nil interface.
	var counter RequestCounter
	if ctrl.Infra.Redis != nil {
		counter = ctrl.Infra.Redis
	}

	return &Middlewares{
		RecoveryMiddleware:  RecoveryMiddleware(logger),
		RequestIDMiddleware: RequestIDMiddleware(),
		TelemetryMiddleware: telemetry,
		LoggingMiddleware:   LoggingMiddleware(logger),
		CORSMiddleware:      CORSMiddleware(cfg),
		RateLimitMiddleware: RateLimitMiddleware(counter, cfg.RateLimit.PerMinute, logger),
	}, nil
}
