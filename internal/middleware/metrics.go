package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ridepoolhq/carpool-backend/internal/observability"
)

// RequestMetrics counts every handled request by method, route template and
// status.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		observability.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
