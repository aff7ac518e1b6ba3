package summarizer

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const (
	defaultInitialBackoff = time.Second
	backoffGrowthFactor   = 2
)

// RetrySummarizer retries failed summarization calls with doubling
// backoff. It is opt-in; the base pipeline makes exactly one attempt
// per article.
type RetrySummarizer struct {
	inner          Summarizer
	maxRetries     int
	initialBackoff time.Duration
	log            *slog.Logger
}

func NewRetrySummarizer(inner Summarizer, maxRetries int, log *slog.Logger) *RetrySummarizer {
	return &RetrySummarizer{
		inner:          inner,
		maxRetries:     maxRetries,
		initialBackoff: defaultInitialBackoff,
		log:            log,
	}
}

func (s *RetrySummarizer) Summarize(
	ctx context.Context,
	input Input,
) (string, error) {
	backoff := s.initialBackoff
	var errs []error

	for attempt := 0; ; attempt++ {
		summary, err := s.inner.Summarize(ctx, input)
		if err == nil {
			return summary, nil
		}
		errs = append(errs, err)

		if attempt >= s.maxRetries {
			return "", errors.Join(errs...)
		}

		s.log.WarnContext(ctx, "Retrying summarization",
			"error", err,
			"attempt", attempt+1,
			"maxRetries", s.maxRetries,
			"backoff", backoff)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			errs = append(errs, ctx.Err())

			return "", errors.Join(errs...)
		}

		backoff *= backoffGrowthFactor
	}
}
