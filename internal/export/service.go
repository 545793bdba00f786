// Package export turns export requests into encoded .docx documents.
package export

import (
	"encoding/base64"
	"errors"
	"fmt"

	"docx-export-api/internal/shared/util"
	"docx-export-api/resume/contract"
	"docx-export-api/resume/model"
	"docx-export-api/resume/service"
)

// ErrSerialization marks failures while building or encoding a document.
var ErrSerialization = errors.New("document serialization failed")

// Renderer serializes an assembled document to a .docx package.
type Renderer interface {
	Render(doc model.Document) ([]byte, error)
}

// Service assembles and renders documents.
type Service struct {
	Renderer Renderer
}

// NewService constructs a Service.
func NewService(renderer Renderer) *Service {
	return &Service{Renderer: renderer}
}

// Document is a rendered package plus the metadata callers report on.
type Document struct {
	FileName     string
	DocType      model.DocType
	SectionCount int
	Content      []byte
}

// Digest returns the SHA-256 of the rendered package.
func (d Document) Digest() string {
	return util.ContentDigest(d.Content)
}

// Generate validates req and renders it. Validation failures are returned as
// *contract.ValidationError; everything else wraps ErrSerialization.
func (s *Service) Generate(req contract.ExportRequest) (Document, error) {
	req.ApplyDefaults()
	doc, err := service.Assemble(req)
	if err != nil {
		var verr *contract.ValidationError
		if errors.As(err, &verr) {
			return Document{}, err
		}
		return Document{}, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	if s.Renderer == nil {
		return Document{}, fmt.Errorf("%w: renderer not configured", ErrSerialization)
	}
	content, err := s.Renderer.Render(doc)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return Document{
		FileName:     util.SanitizeFileName(req.FileName, req.DocType),
		DocType:      doc.DocType,
		SectionCount: len(req.Sections),
		Content:      content,
	}, nil
}

// Export generates the document and encodes it for the JSON response.
func (s *Service) Export(req contract.ExportRequest) (ExportResponse, error) {
	doc, err := s.Generate(req)
	if err != nil {
		return ExportResponse{}, err
	}
	return doc.Response(), nil
}

// Response encodes the document with standard base64, without line wrapping.
func (d Document) Response() ExportResponse {
	return ExportResponse{
		FileName:   d.FileName,
		FileBase64: base64.StdEncoding.EncodeToString(d.Content),
		MimeType:   contract.DocxMimeType,
		Message:    SuccessMessage,
	}
}
