package middlewares

import (
	"time"

	"foodorder/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequestLogger logs one line per request and recovers panics.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Interface("panic", rec).Str("path", c.Request.URL.Path).Msg("recovered panic")
				c.AbortWithStatusJSON(500, gin.H{"ok": false, "error": "internal error"})
			}
			log.Info().
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Str("username", utils.CurrentUsername(c)).
				Dur("latency", time.Since(start)).
				Msg("request")
		}()
		c.Next()
	}
}
