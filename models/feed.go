package models

import "time"

type FeedRecord struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Subreddit  string    `json:"subreddit"`
	Author     string    `json:"author"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Permalink  string    `json:"permalink"`
	Timestamp  time.Time `json:"timestamp"`
	VaderScore float64   `json:"vaderScore"`
	Sentiment  string    `json:"sentiment"`
}

type GetFeedResponse struct {
	Records   []FeedRecord `json:"records"`
	Total     int          `json:"total"`
	Page      int          `json:"page"`
	PerPage   int          `json:"perPage"`
	LoadedAt  time.Time    `json:"loadedAt"`
	FromCache bool         `json:"fromCache"`
	NoData    bool         `json:"noData"`
}

type RefreshResponse struct {
	Refreshed   bool      `json:"refreshed"`
	RefreshedAt time.Time `json:"refreshedAt"`
	Count       int64     `json:"count"`
}
