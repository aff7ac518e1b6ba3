package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"newsbrief/internal/config"
	"newsbrief/internal/database"
	"newsbrief/internal/notify"
	"newsbrief/internal/pipeline"
	"newsbrief/internal/scheduler"
	"newsbrief/internal/source"
	"newsbrief/internal/summarizer"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load config",
			"error", err)

		return
	}

	src := initSource(ctx, cfg, log)

	sum, db, err := initSummarizer(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize summarizer",
			"error", err)

		return
	}
	if db != nil {
		defer func() {
			if err = db.Close(); err != nil {
				log.ErrorContext(ctx, "Failed to close db",
					"error", err,
					"dbPath", cfg.CacheDBPath)
			}
		}()
	}

	notifier := initNotifier(ctx, cfg, log)

	p := pipeline.New(src, sum, pipeline.Config{
		MinContentLength: cfg.MinContentLength,
		NumArticles:      cfg.NumArticles,
		OutputPath:       cfg.OutputPath,
	}, log)

	runJob := func(runCtx context.Context) {
		doc, runErr := p.Run(runCtx)
		switch {
		case errors.Is(runErr, pipeline.ErrNoQualifyingArticles):
			log.WarnContext(runCtx, "No qualifying articles so the output document is empty",
				"outputPath", cfg.OutputPath,
				"minContentLength", cfg.MinContentLength)

			return
		case runErr != nil:
			log.ErrorContext(runCtx, "Pipeline run failed",
				"error", runErr)

			return
		}

		log.InfoContext(runCtx, "Run is finished",
			"summaryCount", len(doc),
			"outputPath", cfg.OutputPath)

		if notifier != nil {
			if notifyErr := notifier.PublishDigest(runCtx, doc); notifyErr != nil {
				log.ErrorContext(runCtx, "Failed to publish digest",
					"error", notifyErr,
					"chatID", cfg.TelegramChatID)
			}
		}
	}

	if strings.TrimSpace(cfg.CronSpec) == "" {
		runCtx, runCancel := context.WithTimeout(ctx, cfg.RunTimeout)
		defer runCancel()

		runJob(runCtx)

		return
	}

	sched := scheduler.New(ctx, cfg.CronSpec, cfg.RunTimeout, runJob, log)
	if err = sched.Start(); err != nil {
		log.ErrorContext(ctx, "Failed to start scheduler",
			"error", err,
			"spec", cfg.CronSpec)

		return
	}
	defer sched.Stop()
	log.InfoContext(ctx, "Scheduler is started",
		"spec", cfg.CronSpec)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	sig := <-c
	cancel()

	log.InfoContext(ctx, "Exiting...",
		"signal", sig.String())
}

func initSource(ctx context.Context, cfg config.Config, log *slog.Logger) source.Source {
	if len(cfg.FeedURLs) > 0 {
		log.InfoContext(ctx, "Using feed source",
			"feedCount", len(cfg.FeedURLs))

		return source.NewFeedSource(cfg.FeedURLs, log)
	}

	if strings.TrimSpace(cfg.NewsAPIKey) != "" {
		log.InfoContext(ctx, "Using content API source",
			"baseURL", cfg.NewsAPIURL,
			"perPage", cfg.PerPage,
			"language", cfg.Language)

		return source.NewNewsDataHubSource(source.NewsDataHubConfig{
			APIKey:   cfg.NewsAPIKey,
			BaseURL:  cfg.NewsAPIURL,
			PerPage:  cfg.PerPage,
			Language: cfg.Language,
			Country:  cfg.Country,
			Topic:    cfg.Topic,
			Timeout:  cfg.RequestTimeout,
		}, log)
	}

	log.WarnContext(ctx, "NDH_API_KEY is missing so sample data will be used",
		"envVar", "NDH_API_KEY")

	return source.NewSampleSource(log)
}

func initSummarizer(
	ctx context.Context,
	cfg config.Config,
	log *slog.Logger,
) (summarizer.Summarizer, *database.Database, error) {
	base, err := summarizer.NewOpenAISummarizer(summarizer.OpenAIConfig{
		APIKey:              cfg.OpenAIAPIKey,
		MaxCompletionTokens: cfg.MaxSummaryTokens,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create OpenAI summarizer: %w", err)
	}

	var s summarizer.Summarizer = base

	if cfg.SummaryRetries > 0 {
		s = summarizer.NewRetrySummarizer(s, cfg.SummaryRetries, log)
		log.InfoContext(ctx, "Summary retries are enabled",
			"maxRetries", cfg.SummaryRetries)
	}

	var db *database.Database
	switch {
	case strings.TrimSpace(cfg.CacheDBPath) != "":
		db, err = database.New(ctx, cfg.CacheDBPath, log)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize summary cache DB: %w", err)
		}

		s = summarizer.NewCachedSummarizer(s, db, log)
		log.InfoContext(ctx, "Summary cache is enabled",
			"dbPath", cfg.CacheDBPath)
	case cfg.SummaryCache:
		s = summarizer.NewCachedSummarizer(s, summarizer.NewMemoryStore(0), log)
		log.InfoContext(ctx, "In-memory summary cache is enabled")
	}

	return s, db, nil
}

func initNotifier(ctx context.Context, cfg config.Config, log *slog.Logger) *notify.TelegramNotifier {
	if strings.TrimSpace(cfg.TelegramToken) == "" || cfg.TelegramChatID == 0 {
		return nil
	}

	n, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create Telegram notifier so digests will not be sent",
			"error", err)

		return nil
	}

	log.InfoContext(ctx, "Telegram notifier is initialized",
		"chatID", cfg.TelegramChatID)

	return n
}
