package render

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
)

// packageModTime is stamped on every entry so identical documents produce
// identical bytes.
var packageModTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

type packagePart struct {
	Name    string
	Content string
}

func writePackage(parts []packagePart) ([]byte, error) {
	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	for _, part := range parts {
		header := &zip.FileHeader{
			Name:     normalizeZipName(part.Name),
			Method:   zip.Deflate,
			Modified: packageModTime,
		}
		dst, err := writer.CreateHeader(header)
		if err != nil {
			_ = writer.Close()
			return nil, err
		}
		if _, err := io.WriteString(dst, part.Content); err != nil {
			_ = writer.Close()
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

func normalizeZipName(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}
