package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"newsbrief/internal/domain"
	"newsbrief/internal/markdown"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const telegramMessageMaxLength = 4096

// TelegramNotifier posts the generated summaries to a chat as a digest.
// It is opt-in; the output document stays the run's durable artifact.
type TelegramNotifier struct {
	bot    *bot.Bot
	chatID int64
	log    *slog.Logger
}

func NewTelegramNotifier(token string, chatID int64, log *slog.Logger) (*TelegramNotifier, error) {
	b, err := bot.New(strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramNotifier{
		bot:    b,
		chatID: chatID,
		log:    log,
	}, nil
}

// PublishDigest sends the summarized articles as one or more MarkdownV2
// messages, splitting on the Telegram message length limit.
func (n *TelegramNotifier) PublishDigest(
	ctx context.Context,
	doc []domain.SummarizedArticle,
) error {
	if len(doc) == 0 {
		return nil
	}

	for _, message := range formatDigestMessages(doc) {
		if _, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    n.chatID,
			Text:      message,
			ParseMode: models.ParseModeMarkdown,
		}); err != nil {
			return fmt.Errorf("send message: %w", err)
		}
	}

	n.log.InfoContext(ctx, "Digest is sent",
		"chatID", n.chatID,
		"summaryCount", len(doc))

	return nil
}

func formatDigestMessages(doc []domain.SummarizedArticle) []string {
	const header = "📰 *News digest*\n\n"

	var messages []string
	var currentMessage strings.Builder

	currentMessage.WriteString(header)
	headerLength := currentMessage.Len()

	for _, record := range doc {
		block := formatDigestBlock(record, telegramMessageMaxLength-headerLength)

		if currentMessage.Len() > headerLength &&
			currentMessage.Len()+len(block) > telegramMessageMaxLength {
			messages = append(messages, strings.TrimRight(currentMessage.String(), "\n"))
			currentMessage.Reset()
			currentMessage.WriteString(header)
		}

		currentMessage.WriteString(block)
	}

	if currentMessage.Len() > headerLength {
		messages = append(messages, strings.TrimRight(currentMessage.String(), "\n"))
	}

	return messages
}

// formatDigestBlock renders one record, truncating the summary so the
// block fits a single message on its own.
func formatDigestBlock(record domain.SummarizedArticle, maxLength int) string {
	var block strings.Builder

	if record.URL != "" {
		block.WriteString(fmt.Sprintf("*[%s](%s)*\n", markdown.EscapeV2(record.Title), record.URL))
	} else {
		block.WriteString(fmt.Sprintf("*%s*\n", markdown.EscapeV2(record.Title)))
	}
	block.WriteString(fmt.Sprintf("_%s_\n", markdown.EscapeV2(record.Source)))

	summary := markdown.EscapeV2(record.AISummary)
	block.WriteString(truncateEscaped(summary, maxLength-block.Len()-len("\n\n")))
	block.WriteString("\n\n")

	return block.String()
}

const digestEllipsis = "…"

// truncateEscaped shortens already-escaped MarkdownV2 text without
// splitting a rune or leaving a dangling escape backslash.
func truncateEscaped(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}

	cut := maxLength - len(digestEllipsis)
	if cut < 0 {
		cut = 0
	}
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}

	trimmed := text[:cut]
	if trailing := len(trimmed) - len(strings.TrimRight(trimmed, `\`)); trailing%2 == 1 {
		trimmed = trimmed[:len(trimmed)-1]
	}

	return trimmed + digestEllipsis
}
