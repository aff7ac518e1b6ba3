package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"mvdan.cc/xurls/v2"
)

var strictURLRe = xurls.Strict()

// Normalize prepares article body text for prompting: HTML markup is
// reduced to its text, bare URLs are dropped, and whitespace is
// collapsed to single spaces. Plain text passes through unchanged apart
// from whitespace.
func Normalize(raw string) string {
	text := raw

	if strings.ContainsAny(raw, "<>") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
		if err == nil {
			doc.Find("script, style").Remove()
			text = doc.Text()
		}
	}

	text = strictURLRe.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}
