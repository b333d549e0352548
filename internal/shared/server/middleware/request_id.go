package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/gin-gonic/gin"
)

const requestIDKey = "requestId"

// RequestID propagates the caller's X-Request-Id, minting one when the
// header is absent. The id lands in the context, the response header
// and every log line for the request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = newRequestID()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// RequestIDFromContext returns the request id set by RequestID, or "".
func RequestIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if id, ok := c.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// newRequestID returns 16 random bytes hex-encoded; a timestamp stands
// in if the randomness source fails.
func newRequestID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UTC().Format("20060102150405.000000000")
	}
	return hex.EncodeToString(b[:])
}
