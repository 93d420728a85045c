package ranking

import (
	"encoding/json"
	"os"
)

// Ranking is an ordered set of rows, best match first.
type Ranking struct {
	Items []*Row
}

// Len returns the number of rows.
func (r *Ranking) Len() int {
	return len(r.Items)
}

// Shortlisted returns candidate ids with the Shortlisted decision in rank order.
func (r *Ranking) Shortlisted() []string {
	return r.byDecision(Shortlisted)
}

// Rejected returns candidate ids with the Rejected decision in rank order.
func (r *Ranking) Rejected() []string {
	return r.byDecision(Rejected)
}

// FindByCandidate returns the row of a candidate or nil.
func (r *Ranking) FindByCandidate(id string) *Row {
	for _, row := range r.Items {
		if row.Candidate == id {
			return row
		}
	}
	return nil
}

// DumpToTmpFile writes the ranking as indented JSON to a temporary file and
// returns its name.
func (r *Ranking) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "ranking_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func (r *Ranking) byDecision(decision Decision) []string {
	ids := make([]string, 0, len(r.Items))
	for _, row := range r.Items {
		if row.Decision == decision {
			ids = append(ids, row.Candidate)
		}
	}
	return ids
}
