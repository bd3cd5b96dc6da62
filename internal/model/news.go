package model

// NewsItem is a bike-news article from the Notion feed. Not persisted.
type NewsItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Thumbnail   *string `json:"thumbnail"`
	CreatedTime *string `json:"createdTime"`
}
