package metrics

import (
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware returns Gin middleware that records HTTP metrics. Requests to
// skipPaths (matched on the route pattern) are not recorded.
func GinMiddleware(skipPaths ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		handler := c.FullPath()
		if handler == "" {
			handler = "unknown"
		}
		if slices.Contains(skipPaths, handler) {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		HTTPRequestDuration.WithLabelValues(handler, c.Request.Method, status).Observe(duration)
		HTTPRequestsTotal.WithLabelValues(handler, c.Request.Method, status).Inc()
	}
}
