// Package document holds the text documents the scorer works on.
package document

import (
	"strings"

	"github.com/spigell/resume-scorer/internal/textnorm"
)

// DefaultBenchmark is the generic resume competency corpus used when no job
// description is supplied.
const DefaultBenchmark = "skills experience education projects certifications achievements " +
	"python sql machine learning data analysis communication leadership " +
	"problem solving teamwork impact results"

// Document is a piece of raw text with an identifier, usually the file name.
type Document struct {
	ID  string
	Raw string
}

// New creates a document.
func New(id, raw string) Document {
	return Document{ID: id, Raw: raw}
}

// Normalized returns the canonical form of the raw text. It is recomputed on
// every call.
func (d Document) Normalized() string {
	return textnorm.Normalize(d.Raw)
}

// IsBlank reports whether the raw text has nothing but whitespace.
func (d Document) IsBlank() bool {
	return strings.TrimSpace(d.Raw) == ""
}

// IDs returns identifiers of the provided documents in order.
func IDs(docs []Document) []string {
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids
}
