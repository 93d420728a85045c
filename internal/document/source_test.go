package document

import (
	"errors"
	"strings"
	"testing"
)

func fakeReader(files map[string]string) Reader {
	return func(path string) (string, error) {
		text, ok := files[path]
		if !ok {
			return "", errors.New("no such file")
		}
		return text, nil
	}
}

func TestLoadInline(t *testing.T) {
	doc, err := Load(Source{Name: "job description", Value: "Go developer"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.ID != "job description" || doc.Raw != "Go developer" {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestLoadFileTakesPrecedence(t *testing.T) {
	read := fakeReader(map[string]string{"jd.txt": "Senior Go engineer"})

	doc, err := Load(Source{Name: "job description", Value: "ignored", File: " jd.txt "}, read)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.ID != "jd.txt" || doc.Raw != "Senior Go engineer" {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestLoadMissing(t *testing.T) {
	tests := []struct {
		name string
		src  Source
		read Reader
	}{
		{name: "nothing configured", src: Source{Name: "resume"}},
		{name: "whitespace only", src: Source{Name: "resume", Value: " \n\t "}},
		{name: "empty file", src: Source{Name: "resume", File: "empty.txt"}, read: fakeReader(map[string]string{"empty.txt": "  "})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.src, tt.read)
			var missing *MissingInputError
			if !errors.As(err, &missing) {
				t.Fatalf("expected MissingInputError, got %v", err)
			}
			if missing.Input != "resume" {
				t.Fatalf("unexpected missing input: %q", missing.Input)
			}
		})
	}
}

func TestLoadReadError(t *testing.T) {
	_, err := Load(Source{Name: "resume", File: "absent.pdf"}, fakeReader(nil))
	if err == nil || !strings.Contains(err.Error(), `reading resume from file "absent.pdf"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFiles(t *testing.T) {
	read := fakeReader(map[string]string{"a.txt": "alpha", "b.txt": "beta"})

	docs, err := LoadFiles([]string{"b.txt", "a.txt"}, read)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Join(IDs(docs), ",") != "b.txt,a.txt" {
		t.Fatalf("unexpected order: %v", IDs(docs))
	}

	if _, err := LoadFiles([]string{"c.txt"}, read); err == nil {
		t.Fatalf("expected error for unknown file")
	}
}

func TestNormalizedIsDerived(t *testing.T) {
	doc := New("r", "Skills: Go, SQL")
	if doc.Normalized() != "skills  go  sql" {
		t.Fatalf("unexpected normalized text: %q", doc.Normalized())
	}
}
