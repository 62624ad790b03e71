package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader is the header carrying the request identifier on both
// requests and responses.
const RequestIDHeader = "X-Request-ID"

// ContextRequestID is the gin context key under which the request
// identifier is stored.
const ContextRequestID = "request_id"

// RequestID attaches a unique identifier to each request. An identifier
// supplied by the caller is kept so requests can be correlated across
// services.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestID, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// RequestLogger logs one line per request with its identifier, method,
// path, status and duration.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("request.id", c.GetString(ContextRequestID)),
			zap.String("request.method", c.Request.Method),
			zap.String("request.path", c.Request.URL.Path),
			zap.Int("request.status", c.Writer.Status()),
			zap.Duration("request.duration", time.Since(start)),
		)
	}
}

// Recovery converts handler panics into a 500 response after logging the
// panic value.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic occurred",
					zap.String("request.id", c.GetString(ContextRequestID)),
					zap.Any("error", err),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, DetailResponse{Detail: "internal server error"})
			}
		}()
		c.Next()
	}
}
