package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CorrelationIDHeader carries the caller's trace identifier. Escalations
	// raised while handling the request echo the same identifier, so a
	// reviewer can walk from a review queue entry back to the scan that
	// produced it.
	CorrelationIDHeader = "X-Correlation-ID"

	// CorrelationIDKey is the gin context key the identifier is stored under
	CorrelationIDKey = "correlation_id"
)

// CorrelationID attaches a correlation identifier to every request, minting
// one when the caller did not send one. The identifier is echoed in the
// response header either way.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Header(CorrelationIDHeader, id)
		c.Set(CorrelationIDKey, id)

		c.Next()
	}
}

// GetCorrelationID returns the request's correlation identifier, or the empty
// string outside a correlated request
func GetCorrelationID(c *gin.Context) string {
	v, exists := c.Get(CorrelationIDKey)
	if !exists {
		return ""
	}
	id, ok := v.(string)
	if !ok {
		return ""
	}
	return id
}
