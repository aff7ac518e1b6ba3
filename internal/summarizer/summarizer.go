package summarizer

import (
	"context"
	"errors"
)

// ErrSummarization reports that a generation API call failed for any
// reason: invalid credential, rate limit, network failure, or a
// malformed response.
var ErrSummarization = errors.New("summarization failed")

// Input describes the payload for a summary request.
type Input struct {
	// ID is an optional stable identity for the article, used by
	// caching decorators.
	ID string
	// Title gives the model context about the article.
	Title string
	// Content contains the article body to summarize.
	Content string
}

// Summarizer produces a single summary for a given article.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}
