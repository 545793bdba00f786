package service

import (
	"strings"

	"docx-export-api/resume/contract"
	"docx-export-api/resume/markdown"
	"docx-export-api/resume/model"
)

const rawHeadingPrefix = "# "

// Assemble validates the request and builds the document model in output
// order: title, subtitle, then each section's heading and content lines.
// Validation failures are returned as *contract.ValidationError before any
// document is built.
func Assemble(req contract.ExportRequest) (model.Document, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return model.Document{}, err
	}

	doc := model.Document{
		DocType:  model.DocType(req.DocType),
		Title:    strings.TrimSpace(req.Title),
		Subtitle: strings.TrimSpace(req.Subtitle),
	}
	doc.Append(model.KindTitle, model.Run{Text: doc.Title})
	if doc.Subtitle != "" {
		doc.Append(model.KindSubtitle, model.Run{Text: doc.Subtitle})
	}

	switch {
	case len(req.Sections) > 0:
		for _, section := range req.Sections {
			if heading := strings.TrimSpace(section.Heading); heading != "" {
				doc.Append(model.KindSectionHeading, model.Run{Text: heading})
			}
			appendLines(&doc, markdown.SplitLines(section.Content), false)
		}
	case strings.TrimSpace(req.Content) != "":
		appendLines(&doc, markdown.SplitLines(req.Content), true)
	}

	return doc, nil
}

// appendLines adds one paragraph per line. In raw content mode a "# " line
// starts a new section heading.
func appendLines(doc *model.Document, lines []string, raw bool) {
	for _, line := range lines {
		if raw {
			if rest, ok := strings.CutPrefix(strings.TrimSpace(line), rawHeadingPrefix); ok {
				if heading := strings.TrimSpace(rest); heading != "" {
					doc.Append(model.KindSectionHeading, model.Run{Text: heading})
					continue
				}
			}
		}

		classified := markdown.Classify(line)
		switch classified.Kind {
		case markdown.SubHeading:
			doc.Append(model.KindSubHeading, classified.Runs...)
		case markdown.Bullet:
			doc.Append(model.KindBullet, classified.Runs...)
		default:
			doc.Append(model.KindBody, classified.Runs...)
		}
	}
}
