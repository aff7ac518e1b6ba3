package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"newsbrief/internal/content"
	"newsbrief/internal/domain"
	"newsbrief/internal/report"
	"newsbrief/internal/source"
	"newsbrief/internal/summarizer"
)

const titlePreviewMaxChars = 60

// ErrNoQualifyingArticles reports that the content filter left nothing
// to summarize. The run still writes an empty output document.
var ErrNoQualifyingArticles = errors.New("no articles with sufficient content")

// Config bounds a single pipeline run.
type Config struct {
	MinContentLength int
	NumArticles      int
	OutputPath       string
}

// Pipeline runs the fetch-filter-summarize-assemble sequence and writes
// the output document. Articles are processed sequentially, in source
// order.
type Pipeline struct {
	source     source.Source
	summarizer summarizer.Summarizer
	cfg        Config
	log        *slog.Logger
}

func New(
	src source.Source,
	s summarizer.Summarizer,
	cfg Config,
	log *slog.Logger,
) *Pipeline {
	return &Pipeline{
		source:     src,
		summarizer: s,
		cfg:        cfg,
		log:        log,
	}
}

// Run executes one cycle and returns the records it wrote. A failed
// summarization aborts the run; no document is written in that case.
func (p *Pipeline) Run(ctx context.Context) ([]domain.SummarizedArticle, error) {
	articles, err := p.source.Fetch(ctx)
	if err != nil {
		if len(articles) == 0 {
			return nil, fmt.Errorf("fetch articles: %w", err)
		}

		p.log.WarnContext(ctx, "Continuing with partially fetched articles",
			"error", err,
			"articleCount", len(articles))
	}

	kept := FilterByContentLength(articles, p.cfg.MinContentLength)
	p.log.InfoContext(ctx, "Filtered articles",
		"keptCount", len(kept),
		"removedCount", len(articles)-len(kept),
		"minContentLength", p.cfg.MinContentLength)

	if len(kept) == 0 {
		if writeErr := report.WriteDocument(p.cfg.OutputPath, []domain.SummarizedArticle{}); writeErr != nil {
			return nil, fmt.Errorf("write empty output document: %w", writeErr)
		}

		return nil, ErrNoQualifyingArticles
	}

	if p.cfg.NumArticles > 0 && len(kept) > p.cfg.NumArticles {
		kept = kept[:p.cfg.NumArticles]
	}

	summaries := make([]string, 0, len(kept))
	for i, article := range kept {
		p.log.InfoContext(ctx, "Summarizing article",
			"index", i+1,
			"total", len(kept),
			"title", titlePreview(article.Title))

		summary, summarizeErr := p.summarizer.Summarize(ctx, summarizer.Input{
			ID:      articleIdentity(article),
			Title:   article.Title,
			Content: content.Normalize(article.Content),
		})
		if summarizeErr != nil {
			return nil, fmt.Errorf("summarize article %q: %w", titlePreview(article.Title), summarizeErr)
		}

		summaries = append(summaries, summary)
	}

	doc := report.BuildDocument(kept, summaries)
	if err = report.WriteDocument(p.cfg.OutputPath, doc); err != nil {
		return nil, fmt.Errorf("write output document: %w", err)
	}

	p.log.InfoContext(ctx, "Output document is written",
		"outputPath", p.cfg.OutputPath,
		"summaryCount", len(doc))

	return doc, nil
}

func articleIdentity(article domain.Article) string {
	if id := strings.TrimSpace(article.ID); id != "" {
		return id
	}

	return strings.TrimSpace(article.URL)
}

func titlePreview(title string) string {
	runes := []rune(strings.TrimSpace(title))
	if len(runes) <= titlePreviewMaxChars {
		return string(runes)
	}

	return string(runes[:titlePreviewMaxChars]) + "..."
}
