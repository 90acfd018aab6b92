package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger records every request with method, path, status and latency.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}
