package middleware

import (
	"time"

	"shift-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger logs each request through the structured logger
func Logger() gin.HandlerFunc {
	log := logger.NewWithComponent("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(map[string]interface{}{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request handled")
	}
}

// Recovery converts panics into 500 responses without killing the server
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
