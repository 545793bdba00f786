package export

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docx-export-api/resume/contract"
	"docx-export-api/resume/model"
	"docx-export-api/resume/render"
)

type failingRenderer struct{}

func (failingRenderer) Render(model.Document) ([]byte, error) {
	return nil, errors.New("zip writer closed")
}

func janeRoe() contract.ExportRequest {
	return contract.ExportRequest{
		DocType:  "resume",
		Title:    "Jane Roe",
		Subtitle: "jane@x.com",
		Sections: []contract.Section{{Heading: "Skills", Content: "Python, Go, **Rust**"}},
	}
}

func TestExportEndToEnd(t *testing.T) {
	svc := NewService(render.NewRenderer(nil))

	resp, err := svc.Export(janeRoe())
	require.NoError(t, err)
	assert.Equal(t, "resume.docx", resp.FileName)
	assert.Equal(t, contract.DocxMimeType, resp.MimeType)
	assert.Equal(t, SuccessMessage, resp.Message)
	assert.NotContains(t, resp.FileBase64, "\n")

	raw, err := base64.StdEncoding.DecodeString(resp.FileBase64)
	require.NoError(t, err)
	inspection, err := render.Inspect(raw)
	require.NoError(t, err)

	found := false
	for _, p := range inspection.Paragraphs {
		for _, run := range p.Runs {
			if run.Bold && run.Text == "Rust" {
				found = true
			}
		}
	}
	assert.True(t, found, "expected a bold run covering exactly Rust")
}

func TestExportIsIdempotent(t *testing.T) {
	svc := NewService(render.NewRenderer(nil))

	first, err := svc.Export(janeRoe())
	require.NoError(t, err)
	second, err := svc.Export(janeRoe())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateUsesSanitizedFileName(t *testing.T) {
	svc := NewService(render.NewRenderer(nil))

	req := janeRoe()
	req.FileName = "Jane Roe.docx"
	doc, err := svc.Generate(req)
	require.NoError(t, err)
	assert.Equal(t, "Jane_Roe.docx", doc.FileName)
	assert.Equal(t, model.DocTypeResume, doc.DocType)
	assert.Equal(t, 1, doc.SectionCount)
	assert.Len(t, doc.Digest(), 64)

	req = janeRoe()
	req.DocType = "cover_letter"
	doc, err = svc.Generate(req)
	require.NoError(t, err)
	assert.Equal(t, "cover_letter.docx", doc.FileName)
}

func TestGenerateReturnsValidationError(t *testing.T) {
	svc := NewService(render.NewRenderer(nil))

	req := janeRoe()
	req.DocType = "invoice"
	_, err := svc.Generate(req)

	var verr *contract.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.False(t, errors.Is(err, ErrSerialization))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "doc_type", verr.Fields[0].Field)
}

func TestGenerateWrapsRenderFailures(t *testing.T) {
	svc := NewService(failingRenderer{})

	_, err := svc.Export(janeRoe())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerialization)
	assert.Contains(t, err.Error(), "zip writer closed")

	_, err = NewService(nil).Export(janeRoe())
	assert.ErrorIs(t, err, ErrSerialization)
}
