package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"news-portal/internal/logger"
)

const (
	// RequestIDHeader is the header name for request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the context key for request ID
	RequestIDKey = "request_id"
)

// RequestID middleware adds a unique request ID to each request.
// If the client provides an X-Request-ID header, it is used; otherwise, a new UUID is generated.
// The request context carries a logger tagged with the ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// Set the request ID in the context
		c.Set(RequestIDKey, requestID)

		// Set the request ID in the response header
		c.Header(RequestIDHeader, requestID)

		ctx := logger.IntoContext(c.Request.Context(), logger.WithRequestID(requestID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
