package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"docx-export-api/internal/shared/telemetry"
)

// Context keys handlers may set to enrich the request log line.
const (
	DocTypeKey      = "docType"
	SectionCountKey = "sectionCount"
	FileNameKey     = "fileName"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		docType, _ := c.Get(DocTypeKey)
		sectionCount, _ := c.Get(SectionCountKey)
		fileName, _ := c.Get(FileNameKey)

		telemetry.Info("request.complete", map[string]any{
			"request_id":    RequestIDFromContext(c),
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"status":        c.Writer.Status(),
			"duration_ms":   float64(latency.Microseconds()) / 1000.0,
			"bytes_out":     c.Writer.Size(),
			"doc_type":      docType,
			"section_count": sectionCount,
			"file_name":     fileName,
			"client_ip":     c.ClientIP(),
			"user_agent":    c.Request.UserAgent(),
		})
	}
}
