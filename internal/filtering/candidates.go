// Package filtering drops candidates that should not be screened before the
// ranking runs.
package filtering

import (
	"github.com/spigell/resume-scorer/internal/document"
)

// Candidates is the ordered list of resumes entering a screening run.
type Candidates struct {
	Items []document.Document
}

// NewCandidates wraps documents into a Candidates list.
func NewCandidates(docs []document.Document) *Candidates {
	return &Candidates{Items: docs}
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) IDs() []string {
	return document.IDs(c.Items)
}

// Exclude removes every candidate whose id is in targets and returns the
// removed ids. The order of the remaining candidates is preserved since it
// breaks ties in the ranking.
func (c *Candidates) Exclude(targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	drop := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		drop[target] = struct{}{}
	}

	var excluded []string
	kept := make([]document.Document, 0, len(c.Items))
	for _, doc := range c.Items {
		if _, ok := drop[doc.ID]; ok {
			excluded = append(excluded, doc.ID)
			continue
		}
		kept = append(kept, doc)
	}
	c.Items = kept

	return excluded
}
