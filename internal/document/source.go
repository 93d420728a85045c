package document

import (
	"fmt"
	"strings"
)

// Reader extracts plain text from a file.
type Reader func(path string) (string, error)

// Source describes where the text of a document comes from.
type Source struct {
	// Name is used in error messages and as the document id for inline text.
	Name string
	// Value is inline text provided via configuration or flags.
	Value string
	// File points to a file with the document. When set it takes precedence
	// over Value.
	File string
}

// Load resolves the source into a Document. When File is set it is read with
// read and the file path becomes the document id. A blank result is reported
// as a MissingInputError.
func Load(src Source, read Reader) (Document, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "document"
	}

	id := name
	text := src.Value

	file := strings.TrimSpace(src.File)
	if file != "" {
		if read == nil {
			return Document{}, fmt.Errorf("no reader configured for %s file %q", name, file)
		}

		data, err := read(file)
		if err != nil {
			return Document{}, fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}

		id = file
		text = data
	}

	doc := New(id, text)
	if doc.IsBlank() {
		if file != "" {
			return Document{}, fmt.Errorf("%s file %q is empty: %w", name, file, Missing(name))
		}
		return Document{}, Missing(name)
	}

	return doc, nil
}

// LoadFiles reads every path with read and returns the documents in order.
func LoadFiles(paths []string, read Reader) ([]Document, error) {
	docs := make([]Document, 0, len(paths))
	for _, path := range paths {
		text, err := read(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		docs = append(docs, New(path, text))
	}
	return docs, nil
}
