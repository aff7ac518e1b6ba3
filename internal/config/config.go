package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	OpenAIAPIKey string   `env:"OPENAI_API_KEY,required,notEmpty"`
	NewsAPIKey   string   `env:"NDH_API_KEY"`
	NewsAPIURL   string   `env:"NDH_API_URL" envDefault:"https://api.newsdatahub.com/v1/news"`
	FeedURLs     []string `env:"FEED_URLS"`

	PerPage  int    `env:"PER_PAGE" envDefault:"100"`
	Language string `env:"LANGUAGE" envDefault:"en"`
	Country  string `env:"COUNTRY"  envDefault:"US,GB,CA,AU"`
	Topic    string `env:"TOPIC"`

	MinContentLength int   `env:"MIN_CONTENT_LENGTH"      envDefault:"300"`
	NumArticles      int   `env:"NUM_ARTICLES_TO_PROCESS" envDefault:"5"`
	MaxSummaryTokens int64 `env:"MAX_SUMMARY_TOKENS"      envDefault:"150"`

	OutputPath     string        `env:"OUTPUT_PATH"     envDefault:"summarized_articles.json"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	RunTimeout     time.Duration `env:"RUN_TIMEOUT"     envDefault:"10m"`

	SummaryRetries int    `env:"SUMMARY_RETRIES"`
	SummaryCache   bool   `env:"SUMMARY_CACHE"`
	CacheDBPath    string `env:"CACHE_DB_PATH"`
	CronSpec       string `env:"CRON_SPEC"`

	TelegramToken  string `env:"TELEGRAM_TOKEN"`
	TelegramChatID int64  `env:"TELEGRAM_CHAT_ID"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
