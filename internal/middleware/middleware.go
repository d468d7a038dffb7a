// Package middleware holds the gin middleware shared by all routes.
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
)

// RequestLogger logs one line per request once the handler chain finishes
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		evt := logger.Info()
		switch {
		case status >= 500:
			evt = logger.Error()
		case status >= 400:
			evt = logger.Warn()
		}

		evt = evt.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("clientIP", c.ClientIP())
		if uid, ok := c.Get(ContextUserID); ok {
			evt = evt.Interface("userID", uid)
		}
		if len(c.Errors) > 0 {
			evt = evt.Str("error", c.Errors.Last().Error())
		}
		evt.Msg("Request handled")
	}
}

// Recovery turns panics into logged 500 responses
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(500, gin.H{"message": "Internal server error"})
	})
}

// CORS allows credentialed requests from the configured browser origins
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = allowedOrigins
	cfg.AllowCredentials = true
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}
