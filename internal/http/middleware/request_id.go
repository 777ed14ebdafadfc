package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID reuses the caller's X-Request-ID or generates a new one and
// echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header(RequestIDHeader, requestID)
		c.Set(requestIDKey, requestID)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	if requestID, ok := c.Get(requestIDKey); ok {
		if s, ok := requestID.(string); ok {
			return s
		}
	}
	return ""
}
