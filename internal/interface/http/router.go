package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/outfitcast/internal/infra/config"
	"github.com/yanqian/outfitcast/pkg/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, m *metrics.Metrics) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger, m),
		corsMiddleware(cfg.HTTP.CORSOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/healthz", handler.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	api := router.Group("/api/v1", rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger))
	{
		api.POST("/forecasts", handler.Forecast)
		api.GET("/locations", handler.ListLocations)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
