package main

import (
	"context"
	"log/slog"
	"testing"

	"newsbrief/internal/config"
	"newsbrief/internal/summarizer"
)

func TestInitSummarizerUsesInMemoryCacheWithoutDBPath(t *testing.T) {
	cfg := config.Config{SummaryCache: true}

	s, db, err := initSummarizer(context.Background(), cfg, slog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if db != nil {
		t.Fatal("expected no database when CACHE_DB_PATH is empty")
	}

	if _, ok := s.(*summarizer.CachedSummarizer); !ok {
		t.Fatalf("expected cached summarizer, got %T", s)
	}
}

func TestInitSummarizerWithoutCache(t *testing.T) {
	s, db, err := initSummarizer(context.Background(), config.Config{}, slog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if db != nil {
		t.Fatal("expected no database when caching is disabled")
	}

	if _, ok := s.(*summarizer.OpenAISummarizer); !ok {
		t.Fatalf("expected plain OpenAI summarizer, got %T", s)
	}
}
