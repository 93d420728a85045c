package filtering

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
)

// ExcludedCandidates is the content of an exclude file.
type ExcludedCandidates struct {
	Items []*ExcludedCandidate
}

// ExcludedCandidate records a candidate that later screening runs skip.
type ExcludedCandidate struct {
	ID         string
	Reason     string `json:",omitempty"`
	ExcludedAt time.Time
}

// ToExcluded builds exclude entries for the given candidate ids.
func ToExcluded(ids []string, reason string) *ExcludedCandidates {
	now := time.Now().UTC()

	excluded := &ExcludedCandidates{}
	for _, id := range ids {
		excluded.Items = append(excluded.Items, &ExcludedCandidate{
			ID:         id,
			Reason:     reason,
			ExcludedAt: now,
		})
	}
	return excluded
}

// LoadExcluded reads an exclude file. A missing or empty file yields an
// empty list. Besides the format written by ToFile, a plain JSON array of
// candidate ids is accepted so the file can be maintained by hand.
func LoadExcluded(path string) (*ExcludedCandidates, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ExcludedCandidates{}, nil
	}
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return &ExcludedCandidates{}, nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if ids, ok := raw.([]any); ok {
		excluded := &ExcludedCandidates{}
		for _, id := range ids {
			s, ok := id.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected exclude entry %v: candidate id must be a string", id)
			}
			excluded.Items = append(excluded.Items, &ExcludedCandidate{ID: s})
		}
		return excluded, nil
	}

	var excluded ExcludedCandidates
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
		Result:     &excluded,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding exclude file: %w", err)
	}

	return &excluded, nil
}

// Append adds entries whose ids are not yet present.
func (e *ExcludedCandidates) Append(s *ExcludedCandidates) {
	known := make(map[string]struct{}, len(e.Items))
	for _, item := range e.Items {
		known[item.ID] = struct{}{}
	}

	for _, item := range s.Items {
		if _, ok := known[item.ID]; ok {
			continue
		}
		known[item.ID] = struct{}{}
		e.Items = append(e.Items, item)
	}
}

func (e *ExcludedCandidates) IDs() []string {
	ids := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// ToFile overwrites path with the entries as indented JSON.
func (e *ExcludedCandidates) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
