package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tanaoroshi/masterdata-backend/internal/platform/ctxutil"
)

const (
	RequestIDHeader = "X-Request-ID"
	TraceIDHeader   = "X-Trace-ID"
)

// AttachRequestContext assigns every request an id, honoring ids supplied by
// an upstream proxy, and exposes them to downstream code via the context.
func AttachRequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = requestID
		}

		td := &ctxutil.TraceData{TraceID: traceID, RequestID: requestID}
		c.Request = c.Request.WithContext(ctxutil.WithTraceData(c.Request.Context(), td))
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}
