package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"compass-backend/internal/shared/middleware"
	"compass-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.LoadHTMLGlob("templates/*.html")

	router.GET("/", c.PostHandler.Index)
	router.GET("/resources/og", c.OGHandler.Render)

	// The webhook endpoint is internet-facing; the rate limit keeps a
	// misconfigured CMS from hammering the purge pipeline.
	router.POST("/action/webhook",
		middleware.RateLimit(30, time.Minute),
		c.WebhookHandler.Handle,
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
	}

	// Post detail pages live at the top level (/:slug). Registering them as
	// the fallback keeps them out of gin's route tree, where a top-level
	// wildcard would collide with the static routes above.
	router.NoRoute(c.PostHandler.Show)

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		redisStatus := "disabled"
		if appCtx.Redis != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Redis.HealthCheck(ctx); err != nil {
				redisStatus = "error: " + err.Error()
				health["status"] = "degraded"
			} else {
				redisStatus = "ok"
			}
		}

		health["services"] = gin.H{"redis": redisStatus}

		c.JSON(http.StatusOK, health)
	}
}
