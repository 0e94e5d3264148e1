package api

import (
	"CheckoutSDK/pkg/logger"
	"CheckoutSDK/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// NewGinEngine skips the metrics endpoint and health probes from request metrics.
func NewGinEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(
		logger.CorrelationMiddleware(),
		metrics.GinMiddleware("/metrics", "/health/live", "/health/ready"),
		logger.RequestLogger(),
		gin.Recovery(),
	)
	return engine
}
