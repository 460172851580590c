package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-watchlist-service/http/controller"
	middlewares "github.com/tnqbao/gau-watchlist-service/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(ctrl.Config.EnvConfig.Server.TrustedProxies); err != nil {
		panic(err)
	}
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(
		middles.RecoveryMiddleware,
		middles.RequestIDMiddleware,
		middles.TelemetryMiddleware,
		middles.LoggingMiddleware,
		middles.CORSMiddleware,
	)

	r.GET("/healthz", ctrl.HealthCheck)

	watchRoutes := r.Group(ctrl.Config.EnvConfig.Server.RoutePrefix)
	{
		watchRoutes.Use(middles.RateLimitMiddleware)

		watchRoutes.GET("/", ctrl.ListWatchList)
		watchRoutes.POST("/", ctrl.CreateWatchList)
		watchRoutes.GET("/:id/", ctrl.GetWatchListByID)
		watchRoutes.PUT("/:id/", ctrl.UpdateWatchListByID)
		watchRoutes.DELETE("/:id/", ctrl.DeleteWatchListByID)

		platformRoutes := watchRoutes.Group("/platform")
		{
			platformRoutes.GET("/", ctrl.ListStreamPlatforms)
			platformRoutes.POST("/", ctrl.CreateStreamPlatform)
			platformRoutes.GET("/:id/", ctrl.GetStreamPlatformByID)
			platformRoutes.PUT("/:id/", ctrl.UpdateStreamPlatformByID)
			platformRoutes.DELETE("/:id/", ctrl.DeleteStreamPlatformByID)
		}

		reviewRoutes := watchRoutes.Group("/review")
		{
			reviewRoutes.GET("/", ctrl.ListReviews)
			reviewRoutes.POST("/", ctrl.CreateReview)
			reviewRoutes.GET("/:id", ctrl.GetReviewByID)
			reviewRoutes.PUT("/:id", ctrl.UpdateReviewByID)
			reviewRoutes.DELETE("/:id", ctrl.DeleteReviewByID)
		}
	}
	return r
}
