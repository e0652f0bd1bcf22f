package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// StructuredLogging provides structured JSON logging for all requests
func StructuredLogging() gin.HandlerFunc {
	logger := slog.Default()
	return LoggingMiddleware(logger, "weather-ingest")
}

// LoggingMiddleware logs one line per request with status, duration and
// outcome. Client errors log at warn, server errors at error.
func LoggingMiddleware(logger *slog.Logger, serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		correlationID, _ := c.Get("correlation_id")

		c.Next()

		duration := time.Since(startTime)

		statusCode := c.Writer.Status()
		var outcome string
		var level slog.Level

		switch {
		case statusCode >= 200 && statusCode < 300:
			outcome = "success"
			level = slog.LevelInfo
		case statusCode >= 400 && statusCode < 500:
			outcome = "client_error"
			level = slog.LevelWarn
		case statusCode >= 500:
			outcome = "server_error"
			level = slog.LevelError
		default:
			outcome = "unknown"
			level = slog.LevelInfo
		}

		attrs := []slog.Attr{
			slog.String("service", serviceName),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status_code", statusCode),
			slog.Int64("duration_ms", duration.Milliseconds()),
			slog.String("outcome", outcome),
		}
		if correlationID != nil {
			attrs = append(attrs, slog.Any("correlation_id", correlationID))
		}
		attrs = append(attrs, slog.Int64("timestamp", startTime.UnixMilli()))

		logger.LogAttrs(c.Request.Context(), level, "request processed", attrs...)
	}
}
