package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	temperature = 0.3

	defaultMaxCompletionTokens int64 = 150

	systemPrompt = `You are a professional news summarizer. ` +
		`Create concise, accurate 2-3 sentence summaries that capture ` +
		`the key information and main points of articles.`
)

// OpenAIConfig contains configuration for the OpenAI-backed summarizer.
type OpenAIConfig struct {
	APIKey string
	// MaxCompletionTokens bounds the generated summary length.
	// Zero means the default of 150 tokens.
	MaxCompletionTokens int64
}

// OpenAISummarizer calls OpenAI's Chat Completions API to produce
// abstractive article summaries.
type OpenAISummarizer struct {
	client              openai.Client
	maxCompletionTokens int64
}

// NewOpenAISummarizer builds a new summarizer instance.
func NewOpenAISummarizer(cfg OpenAIConfig) (*OpenAISummarizer, error) {
	maxCompletionTokens := cfg.MaxCompletionTokens
	if maxCompletionTokens <= 0 {
		maxCompletionTokens = defaultMaxCompletionTokens
	}

	return &OpenAISummarizer{
		client:              openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		maxCompletionTokens: maxCompletionTokens,
	}, nil
}

// Summarize produces a 2-3 sentence summary of a single article.
func (s *OpenAISummarizer) Summarize(
	ctx context.Context,
	input Input,
) (string, error) {
	text := strings.TrimSpace(input.Content)
	if text == "" {
		return "", fmt.Errorf("%w: input content is empty", ErrSummarization)
	}

	promptBuilder := strings.Builder{}
	promptBuilder.WriteString("Summarize this news article in 2-3 sentences:\n\n")
	if title := strings.TrimSpace(input.Title); title != "" {
		promptBuilder.WriteString("Title: ")
		promptBuilder.WriteString(title)
		promptBuilder.WriteString("\n\n")
	}
	promptBuilder.WriteString("Content: ")
	promptBuilder.WriteString(text)

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4oMini,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(promptBuilder.String()),
		},
		Temperature:         openai.Float(temperature),
		MaxCompletionTokens: openai.Int(s.maxCompletionTokens),
	})
	if err != nil {
		return "", fmt.Errorf("%w: do request: %w", ErrSummarization, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: chat completion choices are missing", ErrSummarization)
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("%w: chat completion choice message content is missing", ErrSummarization)
	}

	return summary, nil
}
