package domain

// Article is a raw news record as returned by an article source.
type Article struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	SourceTitle string   `json:"source_title"`
	Content     string   `json:"content"`
	Topics      []string `json:"topics"`
	URL         string   `json:"article_link,omitempty"`
	Language    string   `json:"language,omitempty"`
	PublishedAt string   `json:"pub_date,omitempty"`
}

// SummarizedArticle merges article metadata with its generated summary.
// It is the record shape of the output document.
type SummarizedArticle struct {
	ID                    string   `json:"id,omitempty"`
	Title                 string   `json:"title"`
	Source                string   `json:"source"`
	PublishedAt           string   `json:"published,omitempty"`
	URL                   string   `json:"url,omitempty"`
	Language              string   `json:"language,omitempty"`
	Topics                []string `json:"topics"`
	OriginalContentLength int      `json:"original_content_length,omitempty"`
	AISummary             string   `json:"ai_summary"`
}
