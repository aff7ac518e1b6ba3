package source

import (
	"context"
	"log/slog"
	"slices"

	"newsbrief/internal/domain"
)

// SampleSource serves a fixed offline article set. It is selected when no
// content API key is configured, so the pipeline stays runnable for
// demonstrations and tests.
type SampleSource struct {
	log *slog.Logger
}

func NewSampleSource(log *slog.Logger) *SampleSource {
	return &SampleSource{log: log}
}

// Fetch returns a fresh copy of the sample set on every call. Repeated
// invocations return identical sequences.
func (s *SampleSource) Fetch(ctx context.Context) ([]domain.Article, error) {
	articles := make([]domain.Article, len(sampleArticles))
	for i, article := range sampleArticles {
		article.Topics = slices.Clone(article.Topics)
		articles[i] = article
	}

	s.log.InfoContext(ctx, "Loaded sample articles",
		"articleCount", len(articles))

	return articles, nil
}

var sampleArticles = []domain.Article{
	{
		ID:          "sample-0001",
		Title:       "Chipmakers Race to Meet Surging Demand for AI Accelerators",
		SourceTitle: "The Daily Ledger",
		Content: "Semiconductor manufacturers are expanding production capacity at " +
			"an unprecedented pace as demand for specialized AI accelerator chips " +
			"continues to outstrip supply. Industry analysts estimate that orders " +
			"for data-center GPUs have tripled over the past year, driven largely " +
			"by cloud providers building out infrastructure for large language " +
			"model training. Several foundries announced multi-billion dollar " +
			"investments in new fabrication plants, though executives cautioned " +
			"that meaningful capacity increases remain two to three years away. " +
			"Smaller chip designers, meanwhile, are struggling to secure " +
			"production slots at advanced process nodes.",
		Topics:      []string{"technology", "business"},
		URL:         "https://example.com/news/chipmakers-ai-demand",
		Language:    "en",
		PublishedAt: "2025-03-14T08:30:00Z",
	},
	{
		ID:          "sample-0002",
		Title:       "Coastal Cities Expand Flood Defenses Ahead of Storm Season",
		SourceTitle: "Harbor Times",
		Content: "Municipal governments along the eastern seaboard are accelerating " +
			"flood-defense construction projects before the start of the Atlantic " +
			"storm season. Engineers in three major port cities have begun " +
			"installing deployable barriers and upgrading pump stations, work " +
			"funded in part by a federal resilience grant program approved last " +
			"year. Climate researchers note that storm surge heights in the " +
			"region have risen measurably over the past two decades, and city " +
			"planners are revising building codes in low-lying districts to " +
			"require elevated utilities and reinforced foundations for new " +
			"construction.",
		Topics:      []string{"climate", "infrastructure"},
		URL:         "https://example.com/news/coastal-flood-defenses",
		Language:    "en",
		PublishedAt: "2025-03-14T06:15:00Z",
	},
	{
		ID:          "sample-0003",
		Title:       "Markets Steady After Central Bank Holds Rates",
		SourceTitle: "Financial Observer",
		Content:     "Equity markets were little changed on Thursday after the central bank left interest rates unchanged, as widely expected.",
		Topics:      []string{"finance"},
		URL:         "https://example.com/news/markets-rates-hold",
		Language:    "en",
		PublishedAt: "2025-03-13T21:45:00Z",
	},
	{
		ID:          "sample-0004",
		Title:       "Researchers Map Gut Microbiome Links to Immune Response",
		SourceTitle: "Science Wire",
		Content: "A multi-year study published this week maps previously unknown " +
			"connections between gut microbiome composition and the strength of " +
			"immune responses to common vaccines. Researchers followed more than " +
			"two thousand participants across four countries, sequencing " +
			"microbial DNA before and after immunization. Participants with " +
			"higher diversity in specific bacterial families produced antibody " +
			"levels up to forty percent higher than average. The authors caution " +
			"that the findings are correlational, but the work opens the door to " +
			"dietary interventions that could improve vaccine effectiveness in " +
			"populations with historically weak responses, including older " +
			"adults.",
		Topics:      []string{"health", "science"},
		URL:         "https://example.com/news/microbiome-immune-study",
		Language:    "en",
		PublishedAt: "2025-03-13T16:00:00Z",
	},
	{
		ID:          "sample-0005",
		Title:       "Streaming Services Turn to Live Sports to Stem Subscriber Losses",
		SourceTitle: "Media Desk",
		Content: "Major streaming platforms are bidding aggressively for live " +
			"sports rights as subscriber growth stalls across the industry. Two " +
			"of the largest services confirmed multi-year deals for regional " +
			"league coverage this quarter, with combined commitments reported to " +
			"exceed four billion dollars. Executives argue that live events " +
			"reduce churn more effectively than scripted originals, pointing to " +
			"retention data from earlier experiments with exclusive match " +
			"broadcasts. Rights holders, for their part, are fragmenting " +
			"packages across more buyers than ever, a strategy that boosts " +
			"total fees but has drawn complaints from viewers about the growing " +
			"number of subscriptions needed to follow a single season.",
		Topics:      []string{"entertainment", "business"},
		URL:         "https://example.com/news/streaming-live-sports",
		Language:    "en",
		PublishedAt: "2025-03-13T12:20:00Z",
	},
}
