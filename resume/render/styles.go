package render

import "docx-export-api/resume/model"

// RunStyle captures run formatting applied to every run of a paragraph kind.
// Size is in half-points.
type RunStyle struct {
	Bold   bool
	Italic bool
	Caps   bool
	Size   int
	Color  string
}

// ParagraphStyle is the paragraph-level formatting for one paragraph kind.
// Spacing values are in twentieths of a point.
type ParagraphStyle struct {
	StyleID      string
	Name         string
	Centered     bool
	KeepNext     bool
	Bulleted     bool
	SpaceBefore  int
	SpaceAfter   int
	Run          RunStyle
	OutlineLevel int
}

const (
	HeadingColor = "1F2937"
	NameColor    = "111111"

	bulletNumID = 1
)

// Profile is the single ATS-safe layout: one plain font, standard margins,
// no tables, text boxes or images. Margins and page size are in twips.
type Profile struct {
	FontFamily   string
	BodySize     int
	SpaceAfter   int
	PageWidth    int
	PageHeight   int
	MarginTop    int
	MarginBottom int
	MarginLeft   int
	MarginRight  int
	BulletIndent int

	TitleSizes map[model.DocType]int
	Subtitle   ParagraphStyle
	Section    ParagraphStyle
	SubHeading ParagraphStyle
	Bullet     ParagraphStyle
	Body       ParagraphStyle
}

// DefaultProfile returns the layout used for every export: Calibri 11pt on
// US Letter with 0.5in top/bottom and 0.75in side margins.
func DefaultProfile() *Profile {
	return &Profile{
		FontFamily:   "Calibri",
		BodySize:     22,
		SpaceAfter:   60,
		PageWidth:    12240,
		PageHeight:   15840,
		MarginTop:    720,
		MarginBottom: 720,
		MarginLeft:   1080,
		MarginRight:  1080,
		BulletIndent: 360,
		TitleSizes: map[model.DocType]int{
			model.DocTypeResume:      36,
			model.DocTypeCoverLetter: 28,
		},
		Subtitle: ParagraphStyle{
			StyleID:    "Subtitle",
			Name:       "Subtitle",
			Centered:   true,
			SpaceAfter: 120,
			Run:        RunStyle{Size: 20},
		},
		Section: ParagraphStyle{
			StyleID:      "Heading1",
			Name:         "heading 1",
			KeepNext:     true,
			SpaceBefore:  160,
			SpaceAfter:   60,
			OutlineLevel: 0,
			Run:          RunStyle{Bold: true, Caps: true, Size: 24, Color: HeadingColor},
		},
		SubHeading: ParagraphStyle{
			StyleID:      "Heading2",
			Name:         "heading 2",
			KeepNext:     true,
			SpaceBefore:  80,
			SpaceAfter:   40,
			OutlineLevel: 1,
			Run:          RunStyle{Bold: true, Size: 22},
		},
		Bullet: ParagraphStyle{
			StyleID:    "ListBullet",
			Name:       "List Bullet",
			Bulleted:   true,
			SpaceAfter: 60,
		},
		Body: ParagraphStyle{
			SpaceAfter: 60,
		},
	}
}

// Title returns the title style for a doc type. Only the size differs
// between presets.
func (p *Profile) Title(docType model.DocType) ParagraphStyle {
	size, ok := p.TitleSizes[docType]
	if !ok {
		size = p.TitleSizes[model.DocTypeResume]
	}
	return ParagraphStyle{
		StyleID:    "Title",
		Name:       "Title",
		Centered:   true,
		SpaceAfter: 60,
		Run:        RunStyle{Bold: true, Size: size, Color: NameColor},
	}
}

// StyleFor maps a paragraph kind onto its style.
func (p *Profile) StyleFor(kind model.ParagraphKind, docType model.DocType) ParagraphStyle {
	switch kind {
	case model.KindTitle:
		return p.Title(docType)
	case model.KindSubtitle:
		return p.Subtitle
	case model.KindSectionHeading:
		return p.Section
	case model.KindSubHeading:
		return p.SubHeading
	case model.KindBullet:
		return p.Bullet
	default:
		return p.Body
	}
}
