package data

import (
	"sort"
	"strings"
	"time"
)

const (
	TypePost    = "post"
	TypeComment = "comment"

	// Label applied when the consumer script left no transformer label.
	DefaultLabel = "neutral"

	// Subreddit applied when the source document is missing one.
	UnknownSubreddit = "unknown"

	commentTitleRunes = 100
)

// Record is the normalized, merged view of a post or comment that the rest
// of the dashboard operates on.
type Record struct {
	ID         string
	Type       string
	Subreddit  string
	Author     string
	Title      string
	Body       string
	Link       string
	Timestamp  time.Time
	VaderScore float64
	Sentiment  string
}

// Snapshot is one full load of the merged feed, tagged with when it was
// read from Mongo for the freshness indicator.
type Snapshot struct {
	Records  []Record
	LoadedAt time.Time
}

// timestampLayouts covers the formats the producer scripts have written over
// time. Records whose timestamp matches none of them are dropped.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Combine merges posts and comments into a single record stream, newest
// first. Missing sentiment labels default to neutral, missing subreddits to
// "unknown", and records with unparseable timestamps are discarded.
func Combine(posts []Post, comments []Comment) []Record {
	records := make([]Record, 0, len(posts)+len(comments))

	for _, p := range posts {
		ts, ok := parseTimestamp(p.Timestamp)
		if !ok {
			continue
		}
		records = append(records, Record{
			ID:         p.PostID,
			Type:       TypePost,
			Subreddit:  normalizeSubreddit(p.Subreddit),
			Author:     p.Author,
			Title:      p.Title,
			Body:       p.Selftext,
			Link:       p.URL,
			Timestamp:  ts,
			VaderScore: p.VaderScore,
			Sentiment:  normalizeLabel(p.TransformerLabel),
		})
	}

	for _, c := range comments {
		ts, ok := parseTimestamp(c.Timestamp)
		if !ok {
			continue
		}
		records = append(records, Record{
			ID:         c.CommentID,
			Type:       TypeComment,
			Subreddit:  normalizeSubreddit(c.Subreddit),
			Author:     c.Author,
			Title:      commentTitle(c.Body),
			Body:       c.Body,
			Link:       c.URL,
			Timestamp:  ts,
			VaderScore: c.VaderScore,
			Sentiment:  normalizeLabel(c.TransformerLabel),
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})

	return records
}

// Permalink returns an absolute reddit URL. The producer stores relative
// permalinks for some document kinds.
func (r Record) Permalink() string {
	if r.Link == "" {
		return ""
	}
	if strings.HasPrefix(r.Link, "http") {
		return r.Link
	}
	return "https://www.reddit.com" + r.Link
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

func normalizeLabel(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return DefaultLabel
	}
	return label
}

func normalizeSubreddit(subreddit string) string {
	if strings.TrimSpace(subreddit) == "" {
		return UnknownSubreddit
	}
	return subreddit
}

func commentTitle(body string) string {
	runes := []rune(body)
	if len(runes) <= commentTitleRunes {
		return body
	}
	return string(runes[:commentTitleRunes]) + "..."
}
