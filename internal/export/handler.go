package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"docx-export-api/internal/shared/metrics"
	"docx-export-api/internal/shared/server/middleware"
	"docx-export-api/internal/shared/server/respond"
	"docx-export-api/internal/shared/telemetry"
	"docx-export-api/resume/contract"
)

const defaultMaxBodyBytes = 1 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc          *Service
	MaxBodyBytes int64
}

// NewHandler constructs a Handler. A non-positive maxBodyBytes uses 1 MiB.
func NewHandler(svc *Service, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &Handler{Svc: svc, MaxBodyBytes: maxBodyBytes}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/export/docx", h.exportDocx)
}

func (h *Handler) exportDocx(c *gin.Context) {
	start := time.Now()
	metrics.IncExportRequested()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBodyBytes)

	var req contract.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncExportValidationFailed()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large",
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), nil)
			return
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			reason := fmt.Sprintf("%s has invalid type %s", typeErr.Field, typeErr.Value)
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request: "+reason,
				[]contract.FieldError{{Field: typeErr.Field, Reason: reason}})
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.ApplyDefaults()
	c.Set(middleware.DocTypeKey, req.DocType)
	c.Set(middleware.SectionCountKey, len(req.Sections))

	doc, err := h.Svc.Generate(req)
	if err != nil {
		var verr *contract.ValidationError
		switch {
		case errors.As(err, &verr):
			metrics.IncExportValidationFailed()
			respond.Error(c, http.StatusBadRequest, "validation_error", verr.Error(), verr.Fields)
		default:
			metrics.IncExportFailed()
			telemetry.Error("export.failed", map[string]any{
				"request_id": middleware.RequestIDFromContext(c),
				"doc_type":   req.DocType,
				"error":      err,
			})
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate document", nil)
		}
		return
	}

	resp := doc.Response()
	c.Set(middleware.FileNameKey, doc.FileName)

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.IncExportSucceeded()
	metrics.ObserveExportDurationMs(elapsed)
	metrics.ObserveDocumentBytes(len(doc.Content))
	telemetry.Info("export.generated", map[string]any{
		"request_id": middleware.RequestIDFromContext(c),
		"doc_type":   string(doc.DocType),
		"file_name":  doc.FileName,
		"bytes":      len(doc.Content),
		"sha256":     doc.Digest(),
	})

	respond.OK(c, resp)
}
