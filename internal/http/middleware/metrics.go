package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"rental-backend/internal/metrics"
)

// Metrics records request counts and latency by route template, so /api/properties/1
// and /api/properties/2 share a series.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		m.RequestsInFlight.Inc()
		start := time.Now()
		defer func() {
			m.RequestsInFlight.Dec()
			m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
		}()
		c.Next()
	}
}
