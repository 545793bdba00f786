// Package render serializes a document model into an OOXML word-processing
// package (.docx).
package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"docx-export-api/resume/model"
)

// Renderer writes documents using one fixed style profile.
type Renderer struct {
	profile *Profile
}

// NewRenderer returns a renderer bound to profile. A nil profile selects
// DefaultProfile.
func NewRenderer(profile *Profile) *Renderer {
	if profile == nil {
		profile = DefaultProfile()
	}
	return &Renderer{profile: profile}
}

// Profile returns the style profile the renderer was built with.
func (r *Renderer) Profile() *Profile {
	return r.profile
}

// Render builds the complete .docx package for doc.
func (r *Renderer) Render(doc model.Document) ([]byte, error) {
	if strings.TrimSpace(doc.Title) == "" {
		return nil, errors.New("render docx: title is required")
	}
	if !doc.DocType.Valid() {
		return nil, fmt.Errorf("render docx: unknown doc type %q", doc.DocType)
	}

	documentXML := r.documentXML(doc)
	if err := validateDocumentXMLStrict(documentXML); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	if err := validateDocumentXMLStructure(documentXML); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}

	parts := []packagePart{
		{Name: partContentTypes, Content: contentTypesXML},
		{Name: partRootRels, Content: rootRelsXML},
		{Name: partCore, Content: coreXML(doc.Title)},
		{Name: partApp, Content: appXML},
		{Name: partDocument, Content: documentXML},
		{Name: partDocumentRels, Content: documentRelsXML},
		{Name: partStyles, Content: stylesXML(r.profile, r.profile.Title(doc.DocType))},
		{Name: partNumbering, Content: numberingXML(r.profile)},
		{Name: partSettings, Content: settingsXML},
	}

	out, err := writePackage(parts)
	if err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	return out, nil
}

func (r *Renderer) documentXML(doc model.Document) string {
	var buf bytes.Buffer
	buf.Grow(1024 + 256*len(doc.Paragraphs))
	buf.WriteString(xmlHeader)
	buf.WriteString(`<w:document xmlns:w="` + wmlNamespace + `" xmlns:r="` + relNamespace + `">`)
	buf.WriteString("<w:body>")
	for _, p := range doc.Paragraphs {
		r.writeParagraph(&buf, doc.DocType, p)
	}
	r.writeSection(&buf)
	buf.WriteString("</w:body></w:document>")
	return buf.String()
}

func (r *Renderer) writeParagraph(buf *bytes.Buffer, docType model.DocType, p model.Paragraph) {
	style := r.profile.StyleFor(p.Kind, docType)
	buf.WriteString("<w:p>")
	writeParagraphProps(buf, r.profile, style, style.StyleID, false)
	for _, run := range p.Runs {
		if run.Text == "" {
			continue
		}
		rs := style.Run
		rs.Bold = rs.Bold || run.Bold
		rs.Italic = rs.Italic || run.Italic

		buf.WriteString("<w:r>")
		writeRunProps(buf, rs)
		if needsPreserve(run.Text) {
			buf.WriteString(`<w:t xml:space="preserve">`)
		} else {
			buf.WriteString("<w:t>")
		}
		escapeText(buf, run.Text)
		buf.WriteString("</w:t></w:r>")
	}
	buf.WriteString("</w:p>")
}

func (r *Renderer) writeSection(buf *bytes.Buffer) {
	p := r.profile
	fmt.Fprintf(buf, `<w:sectPr><w:pgSz w:w="%d" w:h="%d"/>`, p.PageWidth, p.PageHeight)
	fmt.Fprintf(buf, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`,
		p.MarginTop, p.MarginRight, p.MarginBottom, p.MarginLeft)
	buf.WriteString("</w:sectPr>")
}

func needsPreserve(text string) bool {
	return strings.TrimSpace(text) != text || strings.Contains(text, "  ")
}
