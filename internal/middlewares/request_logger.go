package middlewares

import (
	"time"

	"alumni-connect-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an id and logs its completion.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		entry := log.WithFields(logrus.Fields{
			"http.req.path":   c.Request.URL.Path,
			"http.req.method": c.Request.Method,
			"http.req.id":     requestID,
		})
		apperr.SetLogger(c, entry)

		start := time.Now()
		c.Next()

		entry.WithFields(logrus.Fields{
			"http.resp.took_ms": time.Since(start).Milliseconds(),
			"http.resp.status":  c.Writer.Status(),
			"http.resp.bytes":   c.Writer.Size(),
		}).Info("request complete")
	}
}
