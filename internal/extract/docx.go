package extract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const docxBody = "word/document.xml"

// docxText joins the top level body paragraphs with single spaces. Paragraphs
// nested in tables are not included.
func docxText(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", &UnsupportedFormatError{Path: path, Format: ".docx", Reason: fmt.Sprintf("not a zip archive: %v", err)}
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != docxBody {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("opening %s in %q: %w", docxBody, path, err)
		}
		defer rc.Close()

		paragraphs, err := bodyParagraphs(rc)
		if err != nil {
			return "", &UnsupportedFormatError{Path: path, Format: ".docx", Reason: err.Error()}
		}

		return strings.Join(paragraphs, " "), nil
	}

	return "", &UnsupportedFormatError{Path: path, Format: ".docx", Reason: docxBody + " not found"}
}

func bodyParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var (
		stack      []string
		paragraphs []string
		current    strings.Builder
		inText     bool
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return paragraphs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parsing document xml: %w", err)
		}

		switch el := token.(type) {
		case xml.StartElement:
			parent := ""
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			stack = append(stack, el.Name.Local)

			if !inParagraph(stack) {
				continue
			}

			switch el.Name.Local {
			case "p":
				if parent == "body" {
					current.Reset()
				}
			case "t":
				inText = parent == "r"
			case "tab":
				if parent == "r" {
					current.WriteString("\t")
				}
			case "br", "cr":
				if parent == "r" {
					current.WriteString("\n")
				}
			}
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}

			name := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			switch {
			case name == "t":
				inText = false
			case name == "p" && len(stack) > 0 && stack[len(stack)-1] == "body":
				paragraphs = append(paragraphs, current.String())
			}
		case xml.CharData:
			if inText && inParagraph(stack) {
				current.Write(el)
			}
		}
	}
}

// inParagraph reports whether the element stack is inside a paragraph that
// is a direct child of the document body.
func inParagraph(stack []string) bool {
	for i := 1; i < len(stack); i++ {
		if stack[i-1] == "body" {
			return stack[i] == "p"
		}
	}
	return false
}
