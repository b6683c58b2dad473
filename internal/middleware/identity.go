package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/studypulse/backend/internal/logger"
)

const userIDHeader = "X-User-ID"

// Identity reads the X-User-ID header set by the upstream proxy and makes
// it available as the data scoping key. The header is treated as an opaque
// string; an empty value selects the single-user scope.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)

		c.Set("user_id", userID)
		if userID != "" {
			ctx := logger.WithUserID(c.Request.Context(), userID)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}
