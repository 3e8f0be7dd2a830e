package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tgmsites/site-engine/internal/utils"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a request identifier to the context and echoes it in
// the response. An inbound X-Request-ID from the fronting proxy is kept so
// log lines correlate across hops.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(requestIDHeader, id)

		ctx := context.WithValue(c.Request.Context(), utils.RequestIDKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
