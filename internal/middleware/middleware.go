package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/stajtakip/internal/pkg/logger"
)

// RequestLogger logs each request with method, path, status and duration
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := logger.Info()
		if c.Writer.Status() >= 500 {
			event = logger.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("Request handled")
	}
}
