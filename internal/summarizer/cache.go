package summarizer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
)

// Store persists generated summaries between summarization calls.
type Store interface {
	GetSummary(ctx context.Context, key string) (string, bool, error)
	PutSummary(ctx context.Context, key string, summary string) error
}

// CachedSummarizer serves repeated requests for the same article body
// from a Store instead of calling the generation API again. It is
// opt-in; the base pipeline always issues a fresh call.
type CachedSummarizer struct {
	inner Summarizer
	store Store
	log   *slog.Logger
}

func NewCachedSummarizer(inner Summarizer, store Store, log *slog.Logger) *CachedSummarizer {
	return &CachedSummarizer{
		inner: inner,
		store: store,
		log:   log,
	}
}

func (s *CachedSummarizer) Summarize(
	ctx context.Context,
	input Input,
) (string, error) {
	key := CacheKey(input)

	if key != "" {
		summary, ok, err := s.store.GetSummary(ctx, key)
		if err != nil {
			s.log.WarnContext(ctx, "Failed to read summary cache",
				"error", err,
				"cacheKey", key)
		} else if ok {
			return summary, nil
		}
	}

	summary, err := s.inner.Summarize(ctx, input)
	if err != nil {
		return "", err
	}

	if key != "" {
		if err = s.store.PutSummary(ctx, key, summary); err != nil {
			s.log.WarnContext(ctx, "Failed to write summary cache",
				"error", err,
				"cacheKey", key)
		}
	}

	return summary, nil
}

// CacheKey identifies an article body: a stable article identity plus a
// hash of the content, so edited content bypasses stale entries.
func CacheKey(input Input) string {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = strings.TrimSpace(input.Title)
	}

	text := strings.TrimSpace(input.Content)
	if id == "" || text == "" {
		return ""
	}

	hash := sha256.Sum256([]byte(text))

	return id + "|" + hex.EncodeToString(hash[:])
}
