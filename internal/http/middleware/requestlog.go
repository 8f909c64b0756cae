package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tanaoroshi/masterdata-backend/internal/platform/ctxutil"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
)

// RequestLogger emits one structured line per finished request, carrying the
// correlation ids assigned by AttachRequestContext. Severity follows the
// response status class.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if td := ctxutil.GetTraceData(c.Request.Context()); td != nil {
			if td.TraceID != "" {
				fields = append(fields, "trace_id", td.TraceID)
			}
			if td.RequestID != "" {
				fields = append(fields, "request_id", td.RequestID)
			}
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}
