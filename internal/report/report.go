package report

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"newsbrief/internal/domain"
)

// BuildDocument zips articles with their summaries, in order, projecting
// one output record per article.
func BuildDocument(articles []domain.Article, summaries []string) []domain.SummarizedArticle {
	count := min(len(articles), len(summaries))

	doc := make([]domain.SummarizedArticle, 0, count)
	for i := range count {
		article := articles[i]

		doc = append(doc, domain.SummarizedArticle{
			ID:                    article.ID,
			Title:                 article.Title,
			Source:                article.SourceTitle,
			PublishedAt:           article.PublishedAt,
			URL:                   article.URL,
			Language:              article.Language,
			Topics:                article.Topics,
			OriginalContentLength: utf8.RuneCountInString(article.Content),
			AISummary:             summaries[i],
		})
	}

	return doc
}

// WriteDocument serializes the document as indented JSON. The document
// is the run's sole durable artifact.
func WriteDocument(path string, doc []domain.SummarizedArticle) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// LoadDocument reads a previously written document back.
func LoadDocument(path string) ([]domain.SummarizedArticle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var doc []domain.SummarizedArticle
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}

	return doc, nil
}
