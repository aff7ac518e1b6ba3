package markdown

import "strings"

// Taken from https://core.telegram.org/bots/api#markdownv2-style.
const mdV2SpecialChars = "_*[]()~`>#+-=|{}.!"

// EscapeV2 backslash-escapes MarkdownV2 special characters.
func EscapeV2(input string) string {
	if !strings.ContainsAny(input, mdV2SpecialChars) {
		return input
	}

	var b strings.Builder
	b.Grow(len(input) * 2)

	for i := range len(input) {
		c := input[i]
		if strings.IndexByte(mdV2SpecialChars, c) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}

	return b.String()
}
