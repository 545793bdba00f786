package markdown

import (
	"strings"

	"docx-export-api/resume/model"
)

// LineKind is the block-level classification of a content line.
type LineKind int

const (
	Paragraph LineKind = iota
	Bullet
	SubHeading
)

func (k LineKind) String() string {
	switch k {
	case Bullet:
		return "bullet"
	case SubHeading:
		return "sub_heading"
	default:
		return "paragraph"
	}
}

const subHeadingPrefix = "## "

var bulletPrefixes = []string{"- ", "* ", "• "}

// Line is a classified content line. Sub-headings carry a single plain run;
// their text is never styled.
type Line struct {
	Kind LineKind
	Runs []model.Run
}

// Text returns the line text without markers.
func (l Line) Text() string {
	return model.Paragraph{Runs: l.Runs}.Text()
}

// Classify inspects the leading markers of a line and tokenizes the rest.
// A blank line is an empty Paragraph.
func Classify(line string) Line {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Line{Kind: Paragraph}
	}

	if rest, ok := strings.CutPrefix(trimmed, subHeadingPrefix); ok {
		return Line{Kind: SubHeading, Runs: plain(strings.TrimSpace(rest))}
	}

	for _, prefix := range bulletPrefixes {
		if rest, ok := strings.CutPrefix(trimmed, prefix); ok {
			return Line{Kind: Bullet, Runs: Tokenize(strings.TrimSpace(rest))}
		}
	}

	return Line{Kind: Paragraph, Runs: Tokenize(trimmed)}
}

// SplitLines splits section content into lines. Surrounding blank space is
// dropped, interior blank lines are kept.
func SplitLines(content string) []string {
	content = strings.TrimSpace(strings.ReplaceAll(content, "\r\n", "\n"))
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func plain(text string) []model.Run {
	if text == "" {
		return nil
	}
	return []model.Run{{Text: text}}
}
