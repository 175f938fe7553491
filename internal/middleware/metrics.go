package middleware

import (
	"time"

	"github.com/SscSPs/erp_backend/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request latency by route template.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
