package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText concatenates the plain text of every page.
func pdfText(path string) (text string, err error) {
	// the pdf reader panics on some malformed content streams
	defer func() {
		if p := recover(); p != nil {
			text = ""
			err = &UnsupportedFormatError{Path: path, Format: ".pdf", Reason: fmt.Sprintf("malformed content: %v", p)}
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", &UnsupportedFormatError{Path: path, Format: ".pdf", Reason: fmt.Sprintf("failed to open PDF: %v", err)}
	}
	defer f.Close()

	var builder strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("reading page %d of %q: %w", pageIndex, path, err)
		}

		builder.WriteString(content)
	}

	return builder.String(), nil
}
