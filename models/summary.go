package models

import "time"

type SubredditVolume struct {
	Subreddit string `json:"subreddit"`
	Count     int    `json:"count"`
}

// TrendPoint is one hourly bucket of sentiment counts.
type TrendPoint struct {
	Hour     time.Time `json:"hour"`
	Positive int       `json:"positive"`
	Neutral  int       `json:"neutral"`
	Negative int       `json:"negative"`
}

type GetSummaryResponse struct {
	Total             int                `json:"total"`
	Counts            map[string]int     `json:"counts"`
	Proportions       map[string]float64 `json:"proportions"`
	AvgVaderScore     float64            `json:"avgVaderScore"`
	DominantSentiment string             `json:"dominantSentiment"`
	ActiveSubreddits  int                `json:"activeSubreddits"`
	TopSubreddits     []SubredditVolume  `json:"topSubreddits"`
	Subreddits        []string           `json:"subreddits"`
	Trend             []TrendPoint       `json:"trend"`
	LoadedAt          time.Time          `json:"loadedAt"`
	FromCache         bool               `json:"fromCache"`
	NoData            bool               `json:"noData"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	MongoUp       bool   `json:"mongoUp"`
	MongoError    string `json:"mongoError,omitempty"`
	CacheOccupied bool   `json:"cacheOccupied"`
	Refreshes     int64  `json:"manualRefreshes"`
}
