package filtering

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/resume-scorer/internal/document"
)

func candidates(ids ...string) *Candidates {
	docs := make([]document.Document, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, document.New(id, "text of "+id))
	}
	return NewCandidates(docs)
}

func equalIDs(t *testing.T, got, expect []string) {
	t.Helper()
	if len(got) != len(expect) {
		t.Fatalf("expected %v, got %v", expect, got)
	}
	for i := range got {
		if got[i] != expect[i] {
			t.Fatalf("expected %v, got %v", expect, got)
		}
	}
}

func TestCandidatesExcludePreservesOrder(t *testing.T) {
	c := candidates("a", "b", "c", "d")

	removed := c.Exclude([]string{"c", "a", "zzz"})

	equalIDs(t, removed, []string{"a", "c"})
	equalIDs(t, c.IDs(), []string{"b", "d"})
}

func TestDuplicatesFilter(t *testing.T) {
	c := candidates("a.txt", "b.txt", "a.txt", "c.txt", "b.txt")

	next, step, err := NewDuplicates(nil).Apply(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	equalIDs(t, next.IDs(), []string{"a.txt", "b.txt", "c.txt"})
	if step != (Step{Initial: 5, Dropped: 2, Left: 3}) {
		t.Fatalf("unexpected step: %+v", step)
	}
}

func TestExcludeFileFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.json")
	if err := ToExcluded([]string{"b.txt"}, "rejected").ToFile(path); err != nil {
		t.Fatalf("writing exclude file: %v", err)
	}

	f := NewExcludeFile(path, nil)
	if !f.IsEnabled() {
		t.Fatalf("expected filter to be enabled when path is set")
	}

	next, step, err := f.Apply(context.Background(), candidates("a.txt", "b.txt", "c.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	equalIDs(t, next.IDs(), []string{"a.txt", "c.txt"})
	if step != (Step{Initial: 3, Dropped: 1, Left: 2}) {
		t.Fatalf("unexpected step: %+v", step)
	}
}

func TestExcludeFileFilterDisabledWithoutPath(t *testing.T) {
	f := NewExcludeFile("  ", nil)
	if f.IsEnabled() {
		t.Fatalf("expected filter to be disabled without path")
	}

	if err := f.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	left, err := New([]Filter{f}, nil).RunFilters(context.Background(), candidates("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalIDs(t, left.IDs(), []string{"a"})
}

func TestExcludeFileFilterBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	_, _, err := NewExcludeFile(path, nil).Apply(context.Background(), candidates("a"))
	if err == nil {
		t.Fatalf("expected error for malformed exclude file")
	}
}

func TestExcludedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.json")

	missing, err := LoadExcluded(path)
	if err != nil {
		t.Fatalf("unexpected error for missing file: %v", err)
	}
	if len(missing.Items) != 0 {
		t.Fatalf("expected empty list for missing file")
	}

	excluded := ToExcluded([]string{"a", "b"}, "rejected")
	excluded.Append(ToExcluded([]string{"b", "c"}, "rejected"))
	equalIDs(t, excluded.IDs(), []string{"a", "b", "c"})

	if err := excluded.ToFile(path); err != nil {
		t.Fatalf("writing: %v", err)
	}

	// a shorter list must not leave trailing bytes of the previous content
	if err := ToExcluded([]string{"z"}, "").ToFile(path); err != nil {
		t.Fatalf("rewriting: %v", err)
	}

	loaded, err := LoadExcluded(path)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	equalIDs(t, loaded.IDs(), []string{"z"})
}

func TestLoadExcludedPlainList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.json")
	if err := os.WriteFile(path, []byte(`["a.pdf", "b.docx"]`), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	excluded, err := LoadExcluded(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalIDs(t, excluded.IDs(), []string{"a.pdf", "b.docx"})

	if err := os.WriteFile(path, []byte(`["a.pdf", 7]`), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	if _, err := LoadExcluded(path); err == nil {
		t.Fatalf("expected error for non string id")
	}
}

func TestLoadExcludedKeepsTimestamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.json")
	content := `{"Items": [{"ID": "a.pdf", "Reason": "rejected", "ExcludedAt": "2026-10-19T08:30:00.5Z"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	excluded, err := LoadExcluded(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(excluded.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(excluded.Items))
	}

	item := excluded.Items[0]
	expected := time.Date(2026, 10, 19, 8, 30, 0, 500000000, time.UTC)
	if item.ID != "a.pdf" || item.Reason != "rejected" || !item.ExcludedAt.Equal(expected) {
		t.Fatalf("unexpected item: %+v", item)
	}
}

type failingFilter struct{ validateErr, applyErr error }

func (f *failingFilter) Name() string    { return "failing" }
func (f *failingFilter) Disable(string)  {}
func (f *failingFilter) IsEnabled() bool { return true }
func (f *failingFilter) Validate() error { return f.validateErr }
func (f *failingFilter) Apply(_ context.Context, c *Candidates) (*Candidates, Step, error) {
	return c, Step{}, f.applyErr
}

func TestRunFilters(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	path := filepath.Join(t.TempDir(), "exclude.json")
	if err := ToExcluded([]string{"c"}, "").ToFile(path); err != nil {
		t.Fatalf("writing exclude file: %v", err)
	}

	filters := New([]Filter{NewDuplicates(logger), NewExcludeFile(path, logger)}, logger)

	left, err := filters.RunFilters(context.Background(), candidates("a", "a", "b", "c"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalIDs(t, left.IDs(), []string{"a", "b"})

	steps := observed.FilterMessage("filter step").All()
	if len(steps) != 2 {
		t.Fatalf("expected 2 step entries, got %d", len(steps))
	}
	if steps[1].ContextMap()["name"] != "exclude_file" {
		t.Fatalf("unexpected step order: %v", steps[1].ContextMap())
	}
}

func TestRunFiltersSkipsDisabled(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	filters := New([]Filter{NewExcludeFile("/does/not/matter", nil)}, zap.New(core))
	filters.DisableByName("exclude_file", "requested")

	left, err := filters.RunFilters(context.Background(), candidates("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalIDs(t, left.IDs(), []string{"a"})

	if observed.FilterMessage("filter disabled").Len() != 1 {
		t.Fatalf("expected disabled filter to be logged")
	}
}

func TestRunFiltersErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := New([]Filter{&failingFilter{validateErr: boom}}, nil).RunFilters(context.Background(), candidates("a"))
	if !errors.Is(err, boom) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = New([]Filter{&failingFilter{applyErr: boom}}, nil).RunFilters(context.Background(), candidates("a"))
	if !errors.Is(err, boom) {
		t.Fatalf("expected apply error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New([]Filter{NewDuplicates(nil)}, nil).RunFilters(ctx, candidates("a"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}
