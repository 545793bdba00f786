package model

// DocType selects the cosmetic title preset of a document.
type DocType string

const (
	DocTypeResume      DocType = "resume"
	DocTypeCoverLetter DocType = "cover_letter"
)

// Valid reports whether the doc type is one of the recognised presets.
func (d DocType) Valid() bool {
	switch d {
	case DocTypeResume, DocTypeCoverLetter:
		return true
	default:
		return false
	}
}

// ParagraphKind identifies how a paragraph is styled in the output package.
type ParagraphKind int

const (
	KindBody ParagraphKind = iota
	KindTitle
	KindSubtitle
	KindSectionHeading
	KindSubHeading
	KindBullet
)

func (k ParagraphKind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindSubtitle:
		return "subtitle"
	case KindSectionHeading:
		return "section_heading"
	case KindSubHeading:
		return "sub_heading"
	case KindBullet:
		return "bullet"
	default:
		return "body"
	}
}

// Run is a contiguous span of text sharing one set of formatting attributes.
type Run struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

// Paragraph is a single block in the document body.
type Paragraph struct {
	Kind ParagraphKind `json:"kind"`
	Runs []Run         `json:"runs"`
}

// Text returns the concatenated run text of the paragraph.
func (p Paragraph) Text() string {
	switch len(p.Runs) {
	case 0:
		return ""
	case 1:
		return p.Runs[0].Text
	}
	n := 0
	for _, r := range p.Runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range p.Runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}

// Document is the in-memory representation handed to the renderer.
// Paragraphs are in output order, title first.
type Document struct {
	DocType    DocType     `json:"docType"`
	Title      string      `json:"title"`
	Subtitle   string      `json:"subtitle,omitempty"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Append adds a paragraph of the given kind.
func (d *Document) Append(kind ParagraphKind, runs ...Run) {
	d.Paragraphs = append(d.Paragraphs, Paragraph{Kind: kind, Runs: runs})
}
