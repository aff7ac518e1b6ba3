package pipeline

import (
	"strings"
	"testing"

	"newsbrief/internal/domain"
)

func TestFilterByContentLengthBoundary(t *testing.T) {
	articles := []domain.Article{
		{Title: "too short", Content: strings.Repeat("a", 299)},
		{Title: "exactly at threshold", Content: strings.Repeat("b", 300)},
		{Title: "above threshold", Content: strings.Repeat("c", 400)},
		{Title: "empty"},
	}

	kept := FilterByContentLength(articles, 300)

	if len(kept) != 2 {
		t.Fatalf("expected 2 kept articles, got %d", len(kept))
	}

	if kept[0].Title != "exactly at threshold" {
		t.Fatalf("unexpected first kept article: %q", kept[0].Title)
	}

	if kept[1].Title != "above threshold" {
		t.Fatalf("unexpected second kept article: %q", kept[1].Title)
	}
}

func TestFilterByContentLengthCountsCharactersNotBytes(t *testing.T) {
	articles := []domain.Article{
		// 150 characters, 450 bytes: must not pass a 300-character threshold.
		{Title: "multibyte short", Content: strings.Repeat("—", 150)},
		// 300 characters, 600 bytes: exactly at the threshold.
		{Title: "multibyte at threshold", Content: strings.Repeat("é", 300)},
		// 299 characters, 897 bytes: one character under.
		{Title: "multibyte under threshold", Content: strings.Repeat("—", 299)},
	}

	kept := FilterByContentLength(articles, 300)

	if len(kept) != 1 {
		t.Fatalf("expected 1 kept article, got %d", len(kept))
	}

	if kept[0].Title != "multibyte at threshold" {
		t.Fatalf("unexpected kept article: %q", kept[0].Title)
	}
}

func TestFilterByContentLengthPreservesOrder(t *testing.T) {
	articles := []domain.Article{
		{Title: "first", Content: strings.Repeat("x", 500)},
		{Title: "skipped", Content: "short"},
		{Title: "second", Content: strings.Repeat("y", 301)},
		{Title: "third", Content: strings.Repeat("z", 300)},
	}

	kept := FilterByContentLength(articles, 300)

	want := []string{"first", "second", "third"}
	if len(kept) != len(want) {
		t.Fatalf("expected %d kept articles, got %d", len(want), len(kept))
	}

	for i := range want {
		if kept[i].Title != want[i] {
			t.Fatalf("unexpected article at index %d: got %q want %q", i, kept[i].Title, want[i])
		}
	}
}

func TestFilterByContentLengthEmptyResultIsNotAnError(t *testing.T) {
	articles := []domain.Article{
		{Title: "short", Content: "tiny"},
	}

	kept := FilterByContentLength(articles, 300)

	if len(kept) != 0 {
		t.Fatalf("expected no kept articles, got %d", len(kept))
	}
}
