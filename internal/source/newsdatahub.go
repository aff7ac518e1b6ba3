package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"newsbrief/internal/domain"
)

const defaultRequestTimeout = 30 * time.Second

// NewsDataHubConfig describes how to query the content API.
type NewsDataHubConfig struct {
	APIKey   string
	BaseURL  string
	PerPage  int
	Language string
	Country  string
	Topic    string
	Timeout  time.Duration
}

// NewsDataHubSource fetches one page of articles from a
// NewsDataHub-compatible content API.
type NewsDataHubSource struct {
	cfg    NewsDataHubConfig
	client *http.Client
	log    *slog.Logger
}

func NewNewsDataHubSource(cfg NewsDataHubConfig, log *slog.Logger) *NewsDataHubSource {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &NewsDataHubSource{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

func (s *NewsDataHubSource) Fetch(ctx context.Context) ([]domain.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("per_page", strconv.Itoa(s.cfg.PerPage))
	if s.cfg.Language != "" {
		q.Set("language", s.cfg.Language)
	}
	if s.cfg.Country != "" {
		q.Set("country", s.cfg.Country)
	}
	if s.cfg.Topic != "" {
		q.Set("topic", s.cfg.Topic)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("x-api-key", s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: do request: %w", ErrUnavailable, err)
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			s.log.ErrorContext(ctx, "Failed to close response body",
				"error", err,
				"baseURL", s.cfg.BaseURL,
				"operation", "Fetch")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status: %d", ErrUnavailable, resp.StatusCode)
	}

	var body struct {
		Data []domain.Article `json:"data"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrUnavailable, err)
	}

	articles := body.Data
	if s.cfg.PerPage > 0 && len(articles) > s.cfg.PerPage {
		articles = articles[:s.cfg.PerPage]
	}

	for i, article := range articles {
		if strings.TrimSpace(article.Title) == "" && strings.TrimSpace(article.Content) == "" {
			return nil, fmt.Errorf("%w: record %d has neither title nor content", ErrMalformedRecord, i)
		}
	}

	s.log.InfoContext(ctx, "Fetched articles from content API",
		"articleCount", len(articles),
		"language", s.cfg.Language,
		"perPage", s.cfg.PerPage)

	return articles, nil
}
