// Package site serves the informational routes: service info, privacy page
// and the OpenAPI document.
package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"docx-export-api/internal/shared/server/respond"
)

//go:embed assets/privacy.md
var privacyMarkdown []byte

//go:embed assets/openapi.json
var openAPIDocument []byte

const privacyTitle = "Privacy Policy - Document Export API"

// Info is the body of GET /.
type Info struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// Handler serves the static site routes.
type Handler struct {
	privacyHTML []byte
}

// NewHandler renders the privacy page once up front.
func NewHandler() (*Handler, error) {
	page, err := renderPrivacy(privacyMarkdown)
	if err != nil {
		return nil, err
	}
	return &Handler{privacyHTML: page}, nil
}

// RegisterRoutes attaches site routes to the router.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/", h.info)
	rg.GET("/privacy", h.privacy)
	rg.GET("/openapi.json", h.openAPI)
	rg.GET("/healthz", h.health)
}

func (h *Handler) info(c *gin.Context) {
	respond.OK(c, Info{
		Status:  "ok",
		Message: "Document Export API is running",
		Endpoints: map[string]string{
			"POST /export/docx": "Generate DOCX document",
			"GET /openapi.json": "OpenAPI schema for GPT Actions",
			"GET /privacy":      "Privacy policy",
		},
	})
}

func (h *Handler) privacy(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.privacyHTML)
}

func (h *Handler) openAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", openAPIDocument)
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, gin.H{"ok": true})
}

func renderPrivacy(source []byte) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithXHTML()),
	)
	var body bytes.Buffer
	if err := md.Convert(source, &body); err != nil {
		return nil, fmt.Errorf("render privacy page: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>")
	page.WriteString(privacyTitle)
	page.WriteString("</title></head>\n")
	page.WriteString(`<body style="font-family: sans-serif; max-width: 800px; margin: 40px auto; padding: 20px;">`)
	page.WriteString("\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
