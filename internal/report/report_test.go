package report

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"newsbrief/internal/domain"
)

func TestBuildDocumentProjectsMetadata(t *testing.T) {
	articles := []domain.Article{
		{
			ID:          "1",
			Title:       "T",
			SourceTitle: "S",
			Content:     "some body",
			Topics:      []string{"technology"},
			URL:         "https://example.com/t",
			PublishedAt: "2025-03-14T08:30:00Z",
		},
	}

	doc := BuildDocument(articles, []string{"Stub summary."})

	if len(doc) != 1 {
		t.Fatalf("expected 1 record, got %d", len(doc))
	}

	record := doc[0]
	if record.Title != "T" || record.Source != "S" || record.AISummary != "Stub summary." {
		t.Fatalf("unexpected record: %+v", record)
	}
	if !reflect.DeepEqual(record.Topics, []string{"technology"}) {
		t.Fatalf("unexpected topics: %v", record.Topics)
	}
	if record.URL != "https://example.com/t" {
		t.Fatalf("unexpected URL: %q", record.URL)
	}
	if record.OriginalContentLength != len("some body") {
		t.Fatalf("unexpected content length: %d", record.OriginalContentLength)
	}
}

func TestBuildDocumentCountsContentCharacters(t *testing.T) {
	articles := []domain.Article{
		// 200 characters, 600 bytes.
		{Title: "multibyte", SourceTitle: "Wire", Content: strings.Repeat("—", 200)},
	}

	doc := BuildDocument(articles, []string{"summary"})

	if len(doc) != 1 {
		t.Fatalf("expected 1 record, got %d", len(doc))
	}

	if doc[0].OriginalContentLength != 200 {
		t.Fatalf("expected content length in characters (200), got %d", doc[0].OriginalContentLength)
	}
}

func TestBuildDocumentLengthMatchesSummaries(t *testing.T) {
	articles := []domain.Article{
		{Title: "a"},
		{Title: "b"},
		{Title: "c"},
	}

	doc := BuildDocument(articles, []string{"one", "two"})

	if len(doc) != 2 {
		t.Fatalf("expected document bounded by summary count, got %d records", len(doc))
	}

	if doc[0].AISummary != "one" || doc[1].AISummary != "two" {
		t.Fatalf("unexpected summary order: %+v", doc)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	doc := []domain.SummarizedArticle{
		{
			ID:                    "1",
			Title:                 "First",
			Source:                "Wire",
			Topics:                []string{"technology", "business"},
			OriginalContentLength: 421,
			AISummary:             "A short summary.",
		},
		{
			Title:     "Second",
			Source:    "Desk",
			Topics:    []string{},
			AISummary: "Another summary.",
		},
	}

	if err := WriteDocument(path, doc); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}

	loaded, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("failed to load document: %v", err)
	}

	if !reflect.DeepEqual(doc, loaded) {
		t.Fatalf("round trip mismatch:\nwrote %+v\nread  %+v", doc, loaded)
	}
}

func TestEmptyDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := WriteDocument(path, []domain.SummarizedArticle{}); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}

	loaded, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("failed to load document: %v", err)
	}

	if len(loaded) != 0 {
		t.Fatalf("expected empty document, got %d records", len(loaded))
	}
}
