// Package extract reads plain text out of resume files.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

type reader func(path string) (string, error)

var readers = map[string]reader{
	".txt":  plainText,
	".pdf":  pdfText,
	".docx": docxText,
}

// UnsupportedFormatError is returned for files that cannot be turned into text.
type UnsupportedFormatError struct {
	Path   string
	Format string
	// Reason is set when the extension is known but the content is not.
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s file %q: %s", e.Format, e.Path, e.Reason)
	}
	return fmt.Sprintf("unsupported file format %q for %q (supported: %s)", e.Format, e.Path, strings.Join(Supported(), ", "))
}

// Supported returns the accepted file extensions.
func Supported() []string {
	return []string{".pdf", ".docx", ".txt"}
}

// Text extracts the text of the file at path, choosing the reader by the
// file extension. The text is returned as is; invalid input is an error and
// never repaired.
func Text(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	read, ok := readers[ext]
	if !ok {
		return "", &UnsupportedFormatError{Path: path, Format: ext}
	}

	return read(path)
}

func plainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", &UnsupportedFormatError{Path: path, Format: ".txt", Reason: "content is not valid UTF-8"}
	}

	return string(data), nil
}
