package handler

import (
	"przypadek/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with middleware, metrics and drill routes
func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.RequestIDHeader)

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.RequestLogger(logger),
		middleware.Metrics(),
		cors.New(corsConfig),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	h.RegisterRoutes(router)

	return router
}
