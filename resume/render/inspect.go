package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/klauspost/compress/zip"

	"docx-export-api/resume/model"
)

var requiredParts = []string{partContentTypes, partRootRels, partDocument}

// InspectedParagraph is one paragraph read back from word/document.xml.
type InspectedParagraph struct {
	Style string      `json:"style,omitempty"`
	Runs  []model.Run `json:"runs"`
}

// Text returns the paragraph text.
func (p InspectedParagraph) Text() string {
	return model.Paragraph{Runs: p.Runs}.Text()
}

// Inspection is the readable content of a .docx package.
type Inspection struct {
	Parts      []string             `json:"parts"`
	Paragraphs []InspectedParagraph `json:"paragraphs"`
}

// Inspect opens a .docx package, checks its required parts and reads back
// the body paragraphs with their run formatting.
func Inspect(data []byte) (Inspection, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Inspection{}, fmt.Errorf("open package: %w", err)
	}

	var out Inspection
	var documentXML []byte
	for _, file := range reader.File {
		name := normalizeZipName(file.Name)
		out.Parts = append(out.Parts, name)
		if name != partDocument {
			continue
		}
		documentXML, err = readZipFile(file)
		if err != nil {
			return Inspection{}, fmt.Errorf("read %s: %w", partDocument, err)
		}
	}

	for _, required := range requiredParts {
		if !slices.Contains(out.Parts, required) {
			return Inspection{}, fmt.Errorf("package is missing %s", required)
		}
	}

	if err := validateDocumentXMLStructure(string(documentXML)); err != nil {
		return Inspection{}, err
	}
	out.Paragraphs, err = readParagraphs(documentXML)
	if err != nil {
		return Inspection{}, err
	}
	return out, nil
}

func readParagraphs(documentXML []byte) ([]InspectedParagraph, error) {
	decoder := xml.NewDecoder(bytes.NewReader(documentXML))

	var (
		paragraphs []InspectedParagraph
		current    *InspectedParagraph
		run        model.Run
		inRun      bool
		inRunProps bool
		inText     bool
		text       strings.Builder
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", partDocument, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Space != wmlNamespace {
				continue
			}
			switch t.Name.Local {
			case "p":
				current = &InspectedParagraph{}
			case "pStyle":
				if current != nil && !inRun {
					current.Style = attrValue(t, "val")
				}
			case "r":
				inRun = true
				run = model.Run{}
				text.Reset()
			case "rPr":
				inRunProps = inRun
			case "b":
				if inRunProps {
					run.Bold = toggleOn(t)
				}
			case "i":
				if inRunProps {
					run.Italic = toggleOn(t)
				}
			case "t":
				inText = inRun
			}
		case xml.CharData:
			if inText {
				text.Write(t)
			}
		case xml.EndElement:
			if t.Name.Space != wmlNamespace {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "rPr":
				inRunProps = false
			case "r":
				inRun = false
				if current != nil && text.Len() > 0 {
					run.Text = text.String()
					current.Runs = append(current.Runs, run)
				}
			case "p":
				if current != nil {
					paragraphs = append(paragraphs, *current)
					current = nil
				}
			}
		}
	}
	return paragraphs, nil
}

func attrValue(el xml.StartElement, local string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

func toggleOn(el xml.StartElement) bool {
	switch strings.ToLower(attrValue(el, "val")) {
	case "0", "false", "off":
		return false
	default:
		return true
	}
}
