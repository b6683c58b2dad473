package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studypulse/backend/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID ensures every request carries a correlation ID. An incoming
// X-Request-ID header is trusted as-is; otherwise a UUID is generated.
// The ID is stored in the gin context, the request context, and echoed
// back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
