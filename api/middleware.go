package api

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestIDMiddleware reuses an incoming X-Request-ID or generates one, and
// echoes it on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// LoggingMiddleware logs one line per request once the handler chain is done.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Printf(
			"method=%s path=%s status=%d bytes=%d dur=%dms request_id=%s",
			c.Request.Method, c.Request.URL.RequestURI(), c.Writer.Status(), c.Writer.Size(),
			time.Since(start).Milliseconds(), RequestID(c),
		)
	}
}

func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

type errorResponse struct {
	Error string `json:"error"`
}
