package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"newsbrief/internal/domain"

	"github.com/mmcdole/gofeed"
)

// FeedSource adapts RSS/Atom feeds into the article stream, so the
// pipeline can run against feeds instead of the content API.
type FeedSource struct {
	urls   []string
	parser *gofeed.Parser
	log    *slog.Logger
}

func NewFeedSource(urls []string, log *slog.Logger) *FeedSource {
	return &FeedSource{
		urls:   urls,
		parser: gofeed.NewParser(),
		log:    log,
	}
}

// Fetch parses every configured feed. Feeds that fail to parse are
// collected into the returned error; articles from the remaining feeds
// are still returned.
func (s *FeedSource) Fetch(ctx context.Context) ([]domain.Article, error) {
	var articles []domain.Article
	var errs []error

	for _, feedURL := range s.urls {
		parsed, err := s.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("parse feed %q: %w", feedURL, err))
			continue
		}

		feedTitle := strings.TrimSpace(parsed.Title)
		if feedTitle == "" {
			feedTitle = feedURL
		}

		for _, item := range parsed.Items {
			article, ok := s.feedItemArticle(ctx, feedURL, feedTitle, item)
			if !ok {
				continue
			}

			articles = append(articles, article)
		}
	}

	if len(articles) == 0 && len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(errs...))
	}

	s.log.InfoContext(ctx, "Fetched articles from feeds",
		"articleCount", len(articles),
		"feedCount", len(s.urls),
		"failedFeedCount", len(errs))

	return articles, errors.Join(errs...)
}

func (s *FeedSource) feedItemArticle(
	ctx context.Context,
	feedURL string,
	feedTitle string,
	item *gofeed.Item,
) (domain.Article, bool) {
	content := strings.TrimSpace(item.Content)
	if content == "" {
		content = strings.TrimSpace(item.Description)
	}

	title := strings.TrimSpace(item.Title)
	if title == "" && content == "" {
		s.log.WarnContext(ctx, "Skipping feed item without title and content",
			"feedURL", feedURL,
			"itemLink", item.Link)

		return domain.Article{}, false
	}

	article := domain.Article{
		ID:          strings.TrimSpace(item.GUID),
		Title:       title,
		SourceTitle: feedTitle,
		Content:     content,
		Topics:      item.Categories,
		URL:         strings.TrimSpace(item.Link),
	}

	if item.PublishedParsed != nil {
		article.PublishedAt = item.PublishedParsed.UTC().Format(time.RFC3339)
	}

	return article, true
}
