package source

import (
	"context"
	"errors"

	"newsbrief/internal/domain"
)

var (
	// ErrUnavailable reports that the content API could not be reached
	// or answered with an error.
	ErrUnavailable = errors.New("article source unavailable")

	// ErrMalformedRecord reports a fetched record missing the fields a
	// downstream stage requires.
	ErrMalformedRecord = errors.New("malformed article record")
)

// Source returns a sequence of raw articles. A Source may return
// a partial result together with a non-nil error; the caller decides
// whether the partial result is usable.
type Source interface {
	Fetch(ctx context.Context) ([]domain.Article, error)
}
