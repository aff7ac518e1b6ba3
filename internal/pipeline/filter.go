package pipeline

import (
	"unicode/utf8"

	"newsbrief/internal/domain"
)

// FilterByContentLength keeps articles whose body meets the minimum
// length in characters, preserving input order. An empty result is not
// an error.
func FilterByContentLength(articles []domain.Article, minContentLength int) []domain.Article {
	kept := make([]domain.Article, 0, len(articles))

	for _, article := range articles {
		if utf8.RuneCountInString(article.Content) >= minContentLength {
			kept = append(kept, article)
		}
	}

	return kept
}
