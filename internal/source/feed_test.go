package source

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Wire</title>
    <item>
      <title>First item</title>
      <link>https://example.com/first</link>
      <guid>first-guid</guid>
      <category>technology</category>
      <pubDate>Fri, 14 Mar 2025 08:30:00 GMT</pubDate>
      <description>A reasonably long description body for the first item.</description>
    </item>
    <item>
      <title>Second item</title>
      <link>https://example.com/second</link>
      <description>Second body.</description>
    </item>
  </channel>
</rss>`

func TestFeedSourceFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testRSS))
	}))
	defer server.Close()

	src := NewFeedSource([]string{server.URL}, slog.Default())

	articles, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}

	first := articles[0]
	if first.Title != "First item" {
		t.Fatalf("unexpected title: %q", first.Title)
	}
	if first.SourceTitle != "Test Wire" {
		t.Fatalf("unexpected source title: %q", first.SourceTitle)
	}
	if first.ID != "first-guid" {
		t.Fatalf("unexpected ID: %q", first.ID)
	}
	if len(first.Topics) != 1 || first.Topics[0] != "technology" {
		t.Fatalf("unexpected topics: %v", first.Topics)
	}
	if first.PublishedAt != "2025-03-14T08:30:00Z" {
		t.Fatalf("unexpected published time: %q", first.PublishedAt)
	}
}

func TestFeedSourceAllFeedsFailing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	src := NewFeedSource([]string{server.URL}, slog.Default())

	if _, err := src.Fetch(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestFeedSourcePartialFailureStillReturnsArticles(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(testRSS))
	}))
	defer good.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	bad.Close()

	src := NewFeedSource([]string{bad.URL, good.URL}, slog.Default())

	articles, err := src.Fetch(context.Background())
	if err == nil {
		t.Fatalf("expected an error for the failing feed")
	}

	if len(articles) != 2 {
		t.Fatalf("expected articles from the healthy feed, got %d", len(articles))
	}
}
