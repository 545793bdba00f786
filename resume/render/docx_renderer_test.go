package render

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"

	"docx-export-api/resume/model"
)

func sampleDocument() model.Document {
	doc := model.Document{DocType: model.DocTypeResume, Title: "Jane Roe", Subtitle: "jane@x.com"}
	doc.Append(model.KindTitle, model.Run{Text: "Jane Roe"})
	doc.Append(model.KindSubtitle, model.Run{Text: "jane@x.com"})
	doc.Append(model.KindSectionHeading, model.Run{Text: "Skills"})
	doc.Append(model.KindBody, model.Run{Text: "Python, Go, "}, model.Run{Text: "Rust", Bold: true})
	doc.Append(model.KindSubHeading, model.Run{Text: "Notable Projects"})
	doc.Append(model.KindBullet, model.Run{Text: "Led "}, model.Run{Text: "five", Italic: true}, model.Run{Text: " teams"})
	doc.Append(model.KindBody)
	return doc
}

func TestRenderProducesValidDocx(t *testing.T) {
	docxBytes, err := NewRenderer(nil).Render(sampleDocument())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	if err != nil {
		t.Fatalf("zip reader failed: %v", err)
	}

	required := map[string]bool{
		"[Content_Types].xml":          false,
		"_rels/.rels":                  false,
		"word/document.xml":            false,
		"word/styles.xml":              false,
		"word/numbering.xml":           false,
		"word/_rels/document.xml.rels": false,
	}
	for _, file := range reader.File {
		name := normalizeZipName(file.Name)
		if _, ok := required[name]; ok {
			required[name] = true
		}
	}
	for name, found := range required {
		if !found {
			t.Fatalf("expected docx to contain %s", name)
		}
	}
	if reader.File[0].Name != "[Content_Types].xml" {
		t.Fatalf("expected [Content_Types].xml first, got %s", reader.File[0].Name)
	}

	for _, file := range reader.File {
		content, err := readZipFile(file)
		if err != nil {
			t.Fatalf("read %s: %v", file.Name, err)
		}
		if err := checkWellFormed(content); err != nil {
			t.Fatalf("%s is not well formed: %v", file.Name, err)
		}
	}

	documentXML, err := readDocumentXML(docxBytes)
	if err != nil {
		t.Fatalf("read document.xml failed: %v", err)
	}

	var doc struct {
		XMLName xml.Name `xml:"document"`
	}
	if err := xml.Unmarshal([]byte(documentXML), &doc); err != nil {
		t.Fatalf("document.xml parse failed: %v", err)
	}
	if doc.XMLName.Local != "document" {
		t.Fatalf("expected document.xml root <document>, got %q", doc.XMLName.Local)
	}
}

func TestRenderRoundTripsRuns(t *testing.T) {
	docxBytes, err := NewRenderer(nil).Render(sampleDocument())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	inspection, err := Inspect(docxBytes)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if len(inspection.Paragraphs) != 7 {
		t.Fatalf("expected 7 paragraphs, got %d", len(inspection.Paragraphs))
	}

	wantStyles := []string{"Title", "Subtitle", "Heading1", "", "Heading2", "ListBullet", ""}
	for i, want := range wantStyles {
		if got := inspection.Paragraphs[i].Style; got != want {
			t.Fatalf("paragraph %d: expected style %q, got %q", i, want, got)
		}
	}

	skills := inspection.Paragraphs[3]
	if len(skills.Runs) != 2 {
		t.Fatalf("expected 2 runs, got %+v", skills.Runs)
	}
	if skills.Runs[0].Bold || skills.Runs[0].Text != "Python, Go, " {
		t.Fatalf("unexpected first run %+v", skills.Runs[0])
	}
	if !skills.Runs[1].Bold || skills.Runs[1].Text != "Rust" {
		t.Fatalf("expected bold run covering Rust, got %+v", skills.Runs[1])
	}

	bullet := inspection.Paragraphs[5]
	if bullet.Text() != "Led five teams" {
		t.Fatalf("unexpected bullet text %q", bullet.Text())
	}
	if !bullet.Runs[1].Italic || bullet.Runs[0].Italic {
		t.Fatalf("expected only middle run italic, got %+v", bullet.Runs)
	}

	if len(inspection.Paragraphs[6].Runs) != 0 {
		t.Fatalf("expected blank paragraph, got %+v", inspection.Paragraphs[6].Runs)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	renderer := NewRenderer(DefaultProfile())
	first, err := renderer.Render(sampleDocument())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	second, err := renderer.Render(sampleDocument())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("expected identical packages for identical input")
	}
}

func TestRenderStyleSmoke(t *testing.T) {
	docxBytes, err := NewRenderer(nil).Render(sampleDocument())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	documentXML, err := readDocumentXML(docxBytes)
	if err != nil {
		t.Fatalf("read document.xml failed: %v", err)
	}

	assertContains(t, documentXML, `<w:pStyle w:val="Title"/>`)
	assertContains(t, documentXML, `<w:jc w:val="center"/>`)
	assertContains(t, documentXML, `<w:sz w:val="36"/>`)
	assertContains(t, documentXML, `<w:pStyle w:val="Heading1"/>`)
	assertContains(t, documentXML, `<w:caps/>`)
	assertContains(t, documentXML, `<w:pStyle w:val="ListBullet"/>`)
	assertContains(t, documentXML, `<w:numId w:val="1"/>`)
	assertContains(t, documentXML, `<w:pgMar w:top="720" w:right="1080" w:bottom="720" w:left="1080"`)
	assertContains(t, documentXML, `<w:t xml:space="preserve">Python, Go, </w:t>`)
	assertContains(t, documentXML, `<w:t>Rust</w:t>`)

	assertNotContains(t, documentXML, "<w:tbl")
	assertNotContains(t, documentXML, "<w:drawing")
	assertNotContains(t, documentXML, "<w:txbxContent")
	assertNotContains(t, documentXML, "**")
}

func TestRenderCoverLetterTitlePreset(t *testing.T) {
	doc := model.Document{DocType: model.DocTypeCoverLetter, Title: "Jane Roe"}
	doc.Append(model.KindTitle, model.Run{Text: "Jane Roe"})

	docxBytes, err := NewRenderer(nil).Render(doc)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	documentXML, err := readDocumentXML(docxBytes)
	if err != nil {
		t.Fatalf("read document.xml failed: %v", err)
	}
	assertContains(t, documentXML, `<w:sz w:val="28"/>`)
	assertNotContains(t, documentXML, `<w:sz w:val="36"/>`)
}

func TestRenderEscapesText(t *testing.T) {
	doc := model.Document{DocType: model.DocTypeResume, Title: "R&D <Lead>"}
	doc.Append(model.KindTitle, model.Run{Text: "R&D <Lead>"})
	doc.Append(model.KindBody, model.Run{Text: `"quoted" & 'single'`})

	docxBytes, err := NewRenderer(nil).Render(doc)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	documentXML, err := readDocumentXML(docxBytes)
	if err != nil {
		t.Fatalf("read document.xml failed: %v", err)
	}
	assertContains(t, documentXML, "R&amp;D &lt;Lead&gt;")

	inspection, err := Inspect(docxBytes)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if got := inspection.Paragraphs[0].Text(); got != "R&D <Lead>" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := inspection.Paragraphs[1].Text(); got != `"quoted" & 'single'` {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestRenderRejectsEmptyTitle(t *testing.T) {
	if _, err := NewRenderer(nil).Render(model.Document{}); err == nil {
		t.Fatalf("expected error for empty title")
	}
	if _, err := NewRenderer(nil).Render(model.Document{DocType: "invoice", Title: "Jane"}); err == nil {
		t.Fatalf("expected error for unknown doc type")
	}
}

func TestInspectRejectsNonPackage(t *testing.T) {
	if _, err := Inspect([]byte("not a zip")); err == nil {
		t.Fatalf("expected error for non-zip input")
	}

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	if _, err := writer.Create("word/document.xml"); err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	if _, err := Inspect(buf.Bytes()); err == nil || !strings.Contains(err.Error(), "[Content_Types].xml") {
		t.Fatalf("expected missing content types error, got %v", err)
	}
}

func TestValidateDocumentXMLStructure(t *testing.T) {
	nested := `<w:document xmlns:w="` + wmlNamespace + `"><w:body><w:p><w:p></w:p></w:p></w:body></w:document>`
	if err := validateDocumentXMLStructure(nested); err == nil {
		t.Fatalf("expected nested paragraph error")
	}

	late := `<w:document xmlns:w="` + wmlNamespace + `"><w:body><w:p><w:r><w:t>x</w:t><w:rPr/></w:r></w:p></w:body></w:document>`
	if err := validateDocumentXMLStructure(late); err == nil {
		t.Fatalf("expected rPr after text error")
	}

	stray := `<w:document xmlns:w="` + wmlNamespace + `"><w:body><w:p><w:t>x</w:t></w:p></w:body></w:document>`
	if err := validateDocumentXMLStructure(stray); err == nil {
		t.Fatalf("expected text outside run error")
	}
}

func TestValidateDocumentXMLStrict(t *testing.T) {
	if err := validateDocumentXMLStrict(`<document><body/></document>`); err == nil {
		t.Fatalf("expected namespace error")
	}
	if err := validateDocumentXMLStrict(`<w:document xmlns:w="` + wmlNamespace + `"><w:body>`); err == nil {
		t.Fatalf("expected parse error for truncated xml")
	}
}

func checkWellFormed(content []byte) error {
	decoder := xml.NewDecoder(bytes.NewReader(content))
	for {
		_, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func readDocumentXML(docxBytes []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	if err != nil {
		return "", err
	}
	for _, file := range reader.File {
		if normalizeZipName(file.Name) == "word/document.xml" {
			content, err := readZipFile(file)
			if err != nil {
				return "", err
			}
			return string(content), nil
		}
	}
	return "", io.EOF
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected to contain %q", needle)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Fatalf("expected to not contain %q", needle)
	}
}
