package filtering

import (
	"context"

	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/document"
)

type duplicatesFilter struct {
	logger *zap.Logger
}

// NewDuplicates creates a filter that keeps only the first candidate for each id.
func NewDuplicates(logger *zap.Logger) Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &duplicatesFilter{logger: logger}
}

func (f *duplicatesFilter) Name() string { return "duplicates" }

func (f *duplicatesFilter) Disable(string) {}

func (f *duplicatesFilter) IsEnabled() bool { return true }

func (f *duplicatesFilter) Validate() error { return nil }

func (f *duplicatesFilter) Apply(_ context.Context, c *Candidates) (*Candidates, Step, error) {
	initial := c.Len()

	seen := make(map[string]struct{}, initial)
	var dropped []string
	kept := make([]document.Document, 0, len(c.Items))
	for _, doc := range c.Items {
		if _, ok := seen[doc.ID]; ok {
			dropped = append(dropped, doc.ID)
			continue
		}
		seen[doc.ID] = struct{}{}
		kept = append(kept, doc)
	}
	c.Items = kept

	if len(dropped) > 0 {
		f.logger.Info("excluding duplicated candidates",
			zap.Strings("excluded_candidates", dropped),
			zap.Int("candidates_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(dropped), Left: c.Len()}, nil
}
