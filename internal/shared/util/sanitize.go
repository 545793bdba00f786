package util

import (
	"regexp"
	"strings"
)

const docxExtension = ".docx"

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}_\-]`)

// SanitizeFileName turns a caller supplied name into a safe .docx file name.
// A trailing .docx is stripped before cleaning and re-appended after. Names
// that clean down to nothing but underscores use fallback instead.
func SanitizeFileName(name, fallback string) string {
	base := strings.TrimSpace(name)
	if len(base) >= len(docxExtension) && strings.EqualFold(base[len(base)-len(docxExtension):], docxExtension) {
		base = base[:len(base)-len(docxExtension)]
	}
	base = unsafeFileChars.ReplaceAllString(base, "_")
	if strings.Trim(base, "_") == "" {
		base = unsafeFileChars.ReplaceAllString(strings.TrimSpace(fallback), "_")
	}
	if base == "" {
		base = "document"
	}
	return base + docxExtension
}
