package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/navya24shree/Campus-Event-Management-System/logger"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with a uuid unless the client sent one, and
// emits a completion log line carrying the id so responses can be correlated
// with log entries.
func RequestID(c *gin.Context) {
	id := c.GetHeader(HeaderRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("requestId", id)
	c.Header(HeaderRequestID, id)
	c.Next()

	logger.Log.Infow("request handled",
		"requestId", id,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
	)
}
